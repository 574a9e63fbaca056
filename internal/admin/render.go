// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageList   = "list.html"
	pageForm   = "form.html"
	pageDelete = "delete.html"
)

var templateFuncs = template.FuncMap{
	"field": fieldValue,
	"label": fieldLabel,
}

// parsePages parses every page together with the shared layout.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, 3)
	for _, page := range []string{pageList, pageForm, pageDelete} {
		tmpl, err := template.New(page).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("error parsing admin page %s: %w", page, err)
		}
		pages[page] = tmpl
	}
	return pages, nil
}

// markdownPreview renders Markdown to sanitized HTML.
type markdownPreview struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newMarkdownPreview() *markdownPreview {
	return &markdownPreview{
		md:     goldmark.New(),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts source to HTML. Raw HTML in source never survives:
// goldmark omits it and the result is sanitized again.
func (p *markdownPreview) Render(source string) (template.HTML, error) {
	if source == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := p.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("error converting markdown: %w", err)
	}

	return template.HTML(p.policy.SanitizeBytes(buf.Bytes())), nil
}

// render executes page into a buffer first so that a template error still
// yields a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data any, status int) {
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Err(err).Str("func", "*Handler.render").Str("page", page).Msg("error rendering admin page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Err(err).Str("func", "*Handler.render").Str("page", page).Msg("error writing admin page")
	}
}
