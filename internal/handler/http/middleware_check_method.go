// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-service-template/internal/utils"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/go-chi/chi/v5"
)

// routeMethods are the methods listed in the Allow header.
var routeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// 405 with an Allow header listing the methods the matched route accepts.
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//
// The route table is read on the first 405, after every route is registered.
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	var (
		once  sync.Once
		table *chi.Mux
	)
	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { table = flatten(router) })

		allowed := matchMethods(table, r.URL.Path)
		if len(allowed) == 0 {
			notFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteJSON(w, models.DetailResponse{
			Detail: `Method "` + r.Method + `" not allowed.`,
		}, http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	return matchMethods(flatten(router), path)
}

// flatten copies every endpoint of router, mounted subrouters included, into
// a single-level mux keyed by the full pattern. Matching on a nested mux stops
// at the mount stub for paths like "/items/" and reports every method.
func flatten(router chi.Routes) *chi.Mux {
	table := chi.NewRouter()
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if slices.Contains(routeMethods, method) {
			table.Method(method, route, noop)
		}
		return nil
	})
	return table
}

func matchMethods(table chi.Routes, path string) []string {
	var allowed []string
	for _, method := range routeMethods {
		if table.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	if len(allowed) > 0 {
		allowed = append(allowed, http.MethodOptions)
	}
	return allowed
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.DetailResponse{Detail: "Not found."}, http.StatusNotFound)
}
