// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/service"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/go-chi/chi/v5"
)

// MountPath is where the admin router is expected to be mounted.
const MountPath = "/admin"

type userCtxKey struct{}

// Handler serves the admin pages of one registered resource.
type Handler struct {
	examples service.ExampleService
	auth     service.AuthService
	model    ModelAdmin

	pages   map[string]*template.Template
	preview *markdownPreview
	now     func() time.Time

	logger *logger.Logger
}

// NewHandler creates the admin for the example resource.
func NewHandler(examples service.ExampleService, auth service.AuthService, logger *logger.Logger) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("admin handler created")
	return &Handler{
		examples: examples,
		auth:     auth,
		model:    ExampleAdmin,
		pages:    pages,
		preview:  newMarkdownPreview(),
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}, nil
}

// Routes returns the admin router, to be mounted at MountPath.
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	// form posts from another site are rejected before any credentials are checked
	router.Use(http.NewCrossOriginProtection().Handler)
	router.Use(h.basicAuth)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, MountPath+"/"+h.model.Slug+"/", http.StatusFound)
	})

	router.Route("/"+h.model.Slug, func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/add/", h.addForm)
		r.Post("/add/", h.add)
		r.Get("/{id}/change/", h.changeForm)
		r.Post("/{id}/change/", h.change)
		r.Get("/{id}/delete/", h.deleteConfirm)
		r.Post("/{id}/delete/", h.delete)
	})

	return router
}

// basicAuth checks HTTP basic credentials against the user store.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login, password, ok := r.BasicAuth()
		if !ok {
			askForCredentials(w)
			return
		}

		user, err := h.auth.Login(r.Context(), models.User{Login: login, Password: password})
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.basicAuth").Str("login", login).Msg("admin login failed")
			askForCredentials(w)
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey{}, user.Login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func askForCredentials(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="admin", charset="UTF-8"`)
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

// pageData is shared by every page.
type pageData struct {
	Base  string
	Admin ModelAdmin
	User  string
}

func (h *Handler) pageData(r *http.Request) pageData {
	login, _ := r.Context().Value(userCtxKey{}).(string)
	return pageData{Base: MountPath, Admin: h.model, User: login}
}
