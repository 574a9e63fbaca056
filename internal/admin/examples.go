// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/store"
	"github.com/MKhiriev/go-service-template/internal/validators"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/go-chi/chi/v5"
)

type filterOption struct {
	Label    string
	URL      string
	Selected bool
}

type filterView struct {
	Field    string
	Selected string
	Options  []filterOption
}

type listPage struct {
	pageData
	Query   string
	Filters []filterView
	Rows    []models.Example
	Count   int
}

type readonlyField struct {
	Label string
	Value string
}

type formPage struct {
	pageData
	Title    string
	Action   string
	IsNew    bool
	Example  models.Example
	Errors   map[string]string
	Readonly []readonlyField
	Preview  template.HTML
}

type deletePage struct {
	pageData
	Example models.Example
}

// list shows the items matching the search box and the date filters.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.ExampleFilter{
		Query: strings.TrimSpace(query.Get("q")),
		Limit: h.model.ListPerPage,
	}

	now := h.now()
	filters := make([]filterView, 0, len(h.model.ListFilter))
	for _, field := range h.model.ListFilter {
		selected := query.Get(field)
		if since, ok := rangeStart(selected, now); ok {
			applyDateFilter(&filter, field, since)
		} else {
			selected = ""
		}
		filters = append(filters, newFilterView(r.URL, field, selected))
	}

	rows, err := h.examples.Search(r.Context(), filter)
	if err != nil {
		h.fail(w, r, "*Handler.list", err)
		return
	}

	h.render(w, r, pageList, listPage{
		pageData: h.pageData(r),
		Query:    filter.Query,
		Filters:  filters,
		Rows:     rows,
		Count:    len(rows),
	}, http.StatusOK)
}

func newFilterView(current *url.URL, field, selected string) filterView {
	view := filterView{Field: field, Selected: selected}
	for _, option := range dateRanges {
		query := current.Query()
		if option.Key == "" {
			query.Del(field)
		} else {
			query.Set(field, option.Key)
		}
		link := url.URL{Path: current.Path, RawQuery: query.Encode()}
		view.Options = append(view.Options, filterOption{
			Label:    option.Label,
			URL:      link.String(),
			Selected: option.Key == selected,
		})
	}
	return view
}

func (h *Handler) addForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageForm, h.newFormPage(r, models.Example{IsActive: true}, true, nil), http.StatusOK)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	name, description, isActive, err := readForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := models.ExampleCreateRequest{Name: &name, Description: &description, IsActive: &isActive}
	created, err := h.examples.Create(r.Context(), req)
	if err != nil {
		draft := models.Example{Name: name, Description: description, IsActive: isActive}
		h.formError(w, r, "*Handler.add", draft, true, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", created.ID).Msg("example item added via admin")
	http.Redirect(w, r, h.listURL(), http.StatusSeeOther)
}

func (h *Handler) changeForm(w http.ResponseWriter, r *http.Request) {
	example, ok := h.loadExample(w, r)
	if !ok {
		return
	}
	h.render(w, r, pageForm, h.newFormPage(r, example, false, nil), http.StatusOK)
}

func (h *Handler) change(w http.ResponseWriter, r *http.Request) {
	example, ok := h.loadExample(w, r)
	if !ok {
		return
	}

	name, description, isActive, err := readForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := models.ExampleUpdateRequest{Name: &name, Description: &description, IsActive: &isActive}
	if _, err = h.examples.Update(r.Context(), example.ID, req); err != nil {
		req.Apply(&example)
		h.formError(w, r, "*Handler.change", example, false, err)
		return
	}

	http.Redirect(w, r, h.listURL(), http.StatusSeeOther)
}

func (h *Handler) deleteConfirm(w http.ResponseWriter, r *http.Request) {
	example, ok := h.loadExample(w, r)
	if !ok {
		return
	}
	h.render(w, r, pageDelete, deletePage{pageData: h.pageData(r), Example: example}, http.StatusOK)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	example, ok := h.loadExample(w, r)
	if !ok {
		return
	}

	if err := h.examples.Delete(r.Context(), example.ID); err != nil && !errors.Is(err, store.ErrExampleNotFound) {
		h.fail(w, r, "*Handler.delete", err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", example.ID).Msg("example item deleted via admin")
	http.Redirect(w, r, h.listURL(), http.StatusSeeOther)
}

// loadExample fetches the {id} item, answering 404 itself when missing.
func (h *Handler) loadExample(w http.ResponseWriter, r *http.Request) (models.Example, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		http.NotFound(w, r)
		return models.Example{}, false
	}

	example, err := h.examples.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "*Handler.loadExample", err)
		return models.Example{}, false
	}

	return example, true
}

func (h *Handler) newFormPage(r *http.Request, example models.Example, isNew bool, errs map[string]string) formPage {
	page := formPage{
		pageData: h.pageData(r),
		IsNew:    isNew,
		Example:  example,
		Errors:   errs,
	}

	if isNew {
		page.Title = "Add " + h.model.VerboseName
		page.Action = h.listURL() + "add/"
	} else {
		page.Title = "Change " + h.model.VerboseName
		page.Action = h.listURL() + strconv.FormatInt(example.ID, 10) + "/change/"
		for _, field := range h.model.ReadonlyFields {
			page.Readonly = append(page.Readonly, readonlyField{Label: fieldLabel(field), Value: fieldValue(example, field)})
		}
	}

	preview, err := h.preview.Render(example.Description)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.newFormPage").Msg("description preview failed")
	}
	page.Preview = preview

	return page
}

// formError re-renders the form with field messages for validation
// failures and falls back to fail for anything else.
func (h *Handler) formError(w http.ResponseWriter, r *http.Request, funcName string, draft models.Example, isNew bool, err error) {
	var validationErrs validators.ValidationErrors
	if !errors.As(err, &validationErrs) {
		h.fail(w, r, funcName, err)
		return
	}

	errs := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		errs[strings.Join(fe.Loc, ".")] = fe.Msg
	}
	h.render(w, r, pageForm, h.newFormPage(r, draft, isNew, errs), http.StatusBadRequest)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	if errors.Is(err, store.ErrExampleNotFound) {
		http.Error(w, "Example item not found", http.StatusNotFound)
		return
	}

	logger.FromRequest(r).Err(err).Str("func", funcName).Msg("admin request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) listURL() string {
	return MountPath + "/" + h.model.Slug + "/"
}

// readForm reads the editable fields. An unchecked checkbox is absent from
// the form, so is_active is false unless present.
func readForm(r *http.Request) (name, description string, isActive bool, err error) {
	if err = r.ParseForm(); err != nil {
		return "", "", false, err
	}
	return strings.TrimSpace(r.PostForm.Get("name")), r.PostForm.Get("description"), r.PostForm.Has("is_active"), nil
}
