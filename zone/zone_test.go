// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrlabel/zone"
)

func TestSize(t *testing.T) {
	require.Equal(t, 21, zone.Size(1))
	require.Equal(t, 37, zone.Size(5))
	require.Equal(t, 177, zone.Size(40))
}

func TestAlignCenters(t *testing.T) {
	for _, tc := range []struct {
		ver  int
		want []int
	}{
		{1, nil},
		{2, []int{6, 18}},
		{6, []int{6, 34}},
		{7, []int{6, 22, 38}},
		{14, []int{6, 26, 46, 66}},
		{32, []int{6, 34, 60, 86, 112, 138}},
		{40, []int{6, 30, 58, 86, 114, 142, 170}},
	} {
		require.Equal(t, tc.want, zone.AlignCenters(tc.ver),
			"version %d", tc.ver)
	}
}

// TestAlignCentersSpan checks that for every version the centre list
// starts at 6 and ends at size-7, the alignment grid the QR standard
// prescribes.
func TestAlignCentersSpan(t *testing.T) {
	for ver := 2; ver <= zone.MaxVersion; ver++ {
		c := zone.AlignCenters(ver)
		require.NotEmpty(t, c, "version %d", ver)
		require.Equal(t, 6, c[0], "version %d", ver)
		require.Equal(t, zone.Size(ver)-7, c[len(c)-1],
			"version %d", ver)
	}
}

func TestForbiddenBounds(t *testing.T) {
	for ver := zone.MinVersion; ver <= zone.MaxVersion; ver++ {
		siz := zone.Size(ver)
		for p := range zone.Forbidden(ver) {
			require.True(t, 0 <= p.Row && p.Row < siz &&
				0 <= p.Col && p.Col < siz,
				"version %d: %v out of bounds", ver, p)
		}
	}
}

func TestForbiddenDeterministic(t *testing.T) {
	for _, ver := range []int{1, 5, 23, 40} {
		require.Equal(t, zone.Forbidden(ver), zone.Forbidden(ver))
	}
}

func TestForbiddenZones(t *testing.T) {
	s := zone.Forbidden(5) // 37x37
	// Locator corners with separators.
	require.True(t, s.Contains(0, 0))
	require.True(t, s.Contains(8, 8))
	require.True(t, s.Contains(0, 29))
	require.True(t, s.Contains(8, 36))
	require.True(t, s.Contains(29, 0))
	require.True(t, s.Contains(36, 8))
	require.False(t, s.Contains(29, 36)) // no fourth corner
	// Timing row and column.
	require.True(t, s.Contains(6, 15))
	require.True(t, s.Contains(15, 6))
	require.False(t, s.Contains(7, 15))
	// Alignment box around (30, 30).
	require.True(t, s.Contains(28, 28))
	require.True(t, s.Contains(32, 32))
	require.False(t, s.Contains(27, 27))
	// Dark module at (4*5+9, 8).
	require.True(t, s.Contains(29, 8))
	// Plain data area.
	require.False(t, s.Contains(15, 15))
}

// Version 1 is below the alignment pattern threshold: locators,
// timing and the dark module only.
func TestForbiddenVersion1(t *testing.T) {
	s := zone.Forbidden(1)
	// Locators 225 modules; timing adds 8, as (6,8) and (8,6) lie
	// inside separators; the dark module (13, 8) falls inside the
	// bottom left separator.
	require.Len(t, s, 233)
	require.True(t, s.Contains(13, 8))
	require.False(t, s.Contains(18, 18))
}

func TestSafe(t *testing.T) {
	for _, ver := range []int{1, 5, 9} {
		siz := zone.Size(ver)
		grid := zone.Safe(ver)
		forbidden := zone.Forbidden(ver)
		require.Len(t, grid, siz)
		for row := range grid {
			require.Len(t, grid[row], siz)
			for col, safe := range grid[row] {
				require.Equal(t,
					!forbidden.Contains(row, col), safe,
					"version %d (%d,%d)", ver, row, col)
			}
		}
	}
}
