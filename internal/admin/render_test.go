// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownPreview_Render(t *testing.T) {
	preview := newMarkdownPreview()

	tests := []struct {
		name        string
		source      string
		contains    []string
		notContains []string
	}{
		{
			name:   "empty",
			source: "",
		},
		{
			name:     "emphasis and lists",
			source:   "**bold** text\n\n- one\n- two",
			contains: []string{"<strong>bold</strong>", "<li>one</li>"},
		},
		{
			name:        "raw script is dropped",
			source:      "hello <script>alert(1)</script>",
			contains:    []string{"hello"},
			notContains: []string{"<script", "alert(1)</script>"},
		},
		{
			name:        "javascript link is neutralised",
			source:      "[x](javascript:alert(1))",
			notContains: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := preview.Render(tt.source)
			require.NoError(t, err)

			html := string(got)
			if tt.source == "" {
				assert.Empty(t, html)
			}
			for _, want := range tt.contains {
				assert.Contains(t, html, want)
			}
			for _, unwanted := range tt.notContains {
				assert.False(t, strings.Contains(html, unwanted), "unexpected %q in %q", unwanted, html)
			}
		})
	}
}

func TestParsePages(t *testing.T) {
	pages, err := parsePages()
	require.NoError(t, err)

	for _, page := range []string{pageList, pageForm, pageDelete} {
		assert.NotNil(t, pages[page], page)
		assert.NotNil(t, pages[page].Lookup("layout"), page)
		assert.NotNil(t, pages[page].Lookup("content"), page)
	}
}

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestRender_WriteErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	h, err := NewHandler(nil, nil, &logger.Logger{Logger: zerolog.New(&buf)})
	require.NoError(t, err)

	w := brokenWriter{httptest.NewRecorder()}
	h.addForm(w, httptest.NewRequest(http.MethodGet, "/admin/examples/add/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "error writing admin page")
	assert.Contains(t, buf.String(), pageForm)
}
