// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/utils"
	"github.com/MKhiriev/go-service-template/models"
)

// listExamples returns one page of items, newest first.
//
//	GET /api/examples/?page=N -> 200 models.ExampleListResponse
func (h *Handler) listExamples(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		writeError(w, r, "*Handler.listExamples", err)
		return
	}

	list, err := h.services.ExampleService.List(r.Context(), page, utils.RequestURL(r))
	if err != nil {
		writeError(w, r, "*Handler.listExamples", err)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

// createExample stores a new item.
//
//	POST /api/examples/ -> 201 models.ExampleResponse
func (h *Handler) createExample(w http.ResponseWriter, r *http.Request) {
	var req models.ExampleCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.createExample", err)
		return
	}

	example, err := h.services.ExampleService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.createExample", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", example.ID).Msg("example item created")
	utils.WriteJSON(w, models.NewExampleResponse(example), http.StatusCreated)
}

// getExample returns one item.
//
//	GET /api/examples/{id}/ -> 200 models.ExampleResponse
func (h *Handler) getExample(w http.ResponseWriter, r *http.Request) {
	id, err := exampleIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getExample", err)
		return
	}

	example, err := h.services.ExampleService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getExample", err)
		return
	}

	utils.WriteJSON(w, models.NewExampleResponse(example), http.StatusOK)
}

// updateExample applies the provided fields. PUT and PATCH behave alike.
//
//	PUT|PATCH /api/examples/{id}/ -> 200 models.ExampleResponse
func (h *Handler) updateExample(w http.ResponseWriter, r *http.Request) {
	id, err := exampleIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.updateExample", err)
		return
	}

	// a missing item answers 404 whatever the body holds
	var req models.ExampleUpdateRequest
	if err = decodeJSON(w, r, &req); err != nil {
		if _, getErr := h.services.ExampleService.Get(r.Context(), id); getErr != nil {
			err = getErr
		}
		writeError(w, r, "*Handler.updateExample", err)
		return
	}

	example, err := h.services.ExampleService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, "*Handler.updateExample", err)
		return
	}

	utils.WriteJSON(w, models.NewExampleResponse(example), http.StatusOK)
}

// deleteExample removes an item.
//
//	DELETE /api/examples/{id}/ -> 204
func (h *Handler) deleteExample(w http.ResponseWriter, r *http.Request) {
	id, err := exampleIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteExample", err)
		return
	}

	if err = h.services.ExampleService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteExample", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", id).Msg("example item deleted")
	w.WriteHeader(http.StatusNoContent)
}
