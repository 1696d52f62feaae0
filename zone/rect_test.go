// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrlabel/zone"
)

// grid parses a string per row, '#' for true.
func grid(rows ...string) [][]bool {
	g := make([][]bool, len(rows))
	for i, s := range rows {
		g[i] = make([]bool, len(s))
		for j := range s {
			g[i][j] = s[j] == '#'
		}
	}
	return g
}

func TestMaxRect(t *testing.T) {
	for _, tc := range []struct {
		name       string
		grid       [][]bool
		minW, minH int
		want       zone.Rect
		ok         bool
	}{
		{
			name: "Full",
			grid: grid("#####", "#####", "#####"),
			minW: 2, minH: 2,
			want: zone.Rect{0, 0, 5, 3}, ok: true,
		},
		{
			name: "Column",
			grid: grid("##.", "##.", "###"),
			minW: 1, minH: 1,
			want: zone.Rect{0, 0, 2, 3}, ok: true,
		},
		{
			name: "TooNarrow",
			grid: grid("##", "##"),
			minW: 3, minH: 1,
			ok:   false,
		},
		{
			name: "TooShort",
			grid: grid("##", "##"),
			minW: 1, minH: 3,
			ok:   false,
		},
		{
			name: "Empty",
			grid: nil,
			minW: 1, minH: 1,
			ok:   false,
		},
		{
			name: "AllFalse",
			grid: grid("...", "..."),
			minW: 1, minH: 1,
			ok:   false,
		},
		{
			// Two 2x2 squares; the first in scan order wins.
			name: "Tie",
			grid: grid("##.##", "##.##"),
			minW: 2, minH: 2,
			want: zone.Rect{0, 0, 2, 2}, ok: true,
		},
		{
			// The largest rectangle is too small; a smaller
			// area meeting the floor wins.
			name: "Floor",
			grid: grid("####.", "####.", "....#", "....#", "....#"),
			minW: 1, minH: 3,
			want: zone.Rect{2, 4, 1, 3}, ok: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, ok := zone.MaxRect(tc.grid, tc.minW, tc.minH)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.Equal(t, tc.want, r)
			}
		})
	}
}

// TestMaxRectSafe runs the solver over real safe grids and checks the
// returned rectangle is all true and meets the floor.
func TestMaxRectSafe(t *testing.T) {
	for _, ver := range []int{2, 5, 9, 25} {
		g := zone.Safe(ver)
		r, ok := zone.MaxRect(g, 15, 5)
		require.True(t, ok, "version %d", ver)
		require.GreaterOrEqual(t, r.W, 15)
		require.GreaterOrEqual(t, r.H, 5)
		for row := r.Row; row < r.Row+r.H; row++ {
			for col := r.Col; col < r.Col+r.W; col++ {
				require.True(t, g[row][col],
					"version %d (%d,%d)", ver, row, col)
			}
		}
	}
}

func TestAnchor(t *testing.T) {
	r := zone.Rect{Row: 10, Col: 20, W: 11, H: 7}
	require.Equal(t, zone.Pos{11, 21}, r.Anchor(9, 5))
	// Floor division when the leftover space is odd.
	require.Equal(t, zone.Pos{10, 21}, r.Anchor(8, 6))
	// Exact fit.
	require.Equal(t, zone.Pos{10, 20}, r.Anchor(11, 7))
}
