// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrlabeld serves labelled QR code generation over HTTP.
//
// POST /api/generate with a JSON body {"url": ..., "text": ...}
// returns the labelled code as a base64 PNG data URL.  An empty or
// missing text defaults to the domain of the URL.
package main

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"log"
	"net/http"
	"strings"

	"github.com/unixdj/qrlabel"

	"github.com/gin-gonic/gin"
	"github.com/pborman/getopt/v2"
)

type generateRequest struct {
	URL  string `json:"url" binding:"required"`
	Text string `json:"text"`
}

type generateResponse struct {
	Success      bool   `json:"success"`
	QRCode       string `json:"qr_code,omitempty"`
	Version      int    `json:"version,omitempty"`
	Iterations   int    `json:"iterations,omitempty"`
	EmbeddedText string `json:"embedded_text,omitempty"`
	Error        string `json:"error,omitempty"`
}

func generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			generateResponse{Error: err.Error()})
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		text = qrlabel.ExtractDomain(req.URL)
	}

	var gen qrlabel.Generator
	res, err := gen.Generate(c.Request.Context(), req.URL, text)
	if err != nil {
		c.JSON(http.StatusOK, generateResponse{Error: err.Error()})
		return
	}

	var b bytes.Buffer
	if err := png.Encode(&b, res.Image); err != nil {
		c.JSON(http.StatusInternalServerError,
			generateResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResponse{
		Success: true,
		QRCode: "data:image/png;base64," +
			base64.StdEncoding.EncodeToString(b.Bytes()),
		Version:      res.Version,
		Iterations:   res.Iterations,
		EmbeddedText: res.Label,
	})
}

// cors allows browser frontends served from elsewhere.
func cors(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

func main() {
	log.SetFlags(0)
	addr := getopt.String('a', ":8000", "listen address", "addr")
	getopt.Parse()

	r := gin.Default()
	r.Use(cors)
	r.POST("/api/generate", generate)
	log.Fatalln(r.Run(*addr))
}
