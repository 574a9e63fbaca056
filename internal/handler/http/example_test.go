// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-service-template/internal/service"
	"github.com/MKhiriev/go-service-template/internal/store"
	"github.com/MKhiriev/go-service-template/internal/validators"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

// ── listExamples ──────────────────────────────────────────────────────────────

func TestListExamples_Success(t *testing.T) {
	f := newFixture(t)
	f.authorized()

	next := "http://example.com/api/examples/?page=3"
	previous := "http://example.com/api/examples/?page=1"
	list := models.ExampleListResponse{
		Count:    45,
		Next:     &next,
		Previous: &previous,
		Results:  []models.ExampleResponse{models.NewExampleResponse(sampleExample(1, "Item"))},
	}
	f.examples.EXPECT().List(gomock.Any(), 2, "http://example.com/api/examples/?page=2").Return(list, nil)

	rr := f.doAuthorized(http.MethodGet, "/api/examples/?page=2", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, list, decodeBody[models.ExampleListResponse](t, rr))
}

func TestListExamples_DefaultPage(t *testing.T) {
	f := newFixture(t)
	f.authorized()
	f.examples.EXPECT().List(gomock.Any(), 1, gomock.Any()).
		Return(models.ExampleListResponse{Results: []models.ExampleResponse{}}, nil)

	rr := f.doAuthorized(http.MethodGet, "/api/examples/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":0,"next":null,"previous":null,"results":[]}`, rr.Body.String())
}

func TestListExamples_InvalidPage(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		serviceErr error
		wantType   string
	}{
		{name: "not an integer", query: "abc", wantType: "int_parsing"},
		{name: "float", query: "1.5", wantType: "int_parsing"},
		{name: "zero", query: "0", serviceErr: validators.NewValidationError("Input should be greater than or equal to 1", "greater_than_equal", "query", "page"), wantType: "greater_than_equal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.authorized()
			if tt.serviceErr != nil {
				f.examples.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.ExampleListResponse{}, tt.serviceErr)
			}

			rr := f.doAuthorized(http.MethodGet, "/api/examples/?page="+tt.query, "")

			require.Equal(t, http.StatusBadRequest, rr.Code)
			body := decodeBody[models.ValidationErrorResponse](t, rr)
			require.Len(t, body.ValidationErrors, 1)
			assert.Equal(t, []string{"query", "page"}, body.ValidationErrors[0].Loc)
			assert.Equal(t, tt.wantType, body.ValidationErrors[0].Type)
		})
	}
}

// ── createExample ─────────────────────────────────────────────────────────────

func TestCreateExample_Success(t *testing.T) {
	f := newFixture(t)
	f.authorized()

	want := models.ExampleCreateRequest{Name: ptr("Test Item"), Description: ptr("Test description")}
	f.examples.EXPECT().Create(gomock.Any(), want).Return(sampleExample(1, "Test Item"), nil)

	rr := f.doAuthorized(http.MethodPost, "/api/examples/", `{"name":"Test Item","description":"Test description"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	body := decodeBody[models.ExampleResponse](t, rr)
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, "Test Item", body.Name)
	assert.Equal(t, "Test description", body.Description)
	assert.True(t, body.IsActive)
	assert.Equal(t, "2026-03-18T10:00:00Z", body.CreatedAt)
	assert.Equal(t, "2026-03-18T11:30:00Z", body.UpdatedAt)
}

func TestCreateExample_ValidationError(t *testing.T) {
	f := newFixture(t)
	f.authorized()
	f.examples.EXPECT().Create(gomock.Any(), models.ExampleCreateRequest{}).
		Return(models.Example{}, validators.NewValidationError("Field required", "missing", "name"))

	rr := f.doAuthorized(http.MethodPost, "/api/examples/", `{}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t,
		`{"validation_errors":[{"loc":["name"],"msg":"Field required","type":"missing"}]}`,
		rr.Body.String())
}

func TestCreateExample_WrongType(t *testing.T) {
	f := newFixture(t)
	f.authorized()

	rr := f.doAuthorized(http.MethodPost, "/api/examples/", `{"name":"x","is_active":"yes"}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody[models.ValidationErrorResponse](t, rr)
	require.Len(t, body.ValidationErrors, 1)
	assert.Equal(t, []string{"is_active"}, body.ValidationErrors[0].Loc)
	assert.Equal(t, "bool_type", body.ValidationErrors[0].Type)
}

func TestCreateExample_NotAnObject(t *testing.T) {
	f := newFixture(t)
	f.authorized()

	rr := f.doAuthorized(http.MethodPost, "/api/examples/", `["a"]`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody[models.ValidationErrorResponse](t, rr)
	assert.Equal(t, "dict_type", body.ValidationErrors[0].Type)
}

func TestCreateExample_StorageError(t *testing.T) {
	f := newFixture(t)
	f.authorized()
	f.examples.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Example{}, errors.New("disk full"))

	rr := f.doAuthorized(http.MethodPost, "/api/examples/", `{"name":"x"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal Server Error", detailOf(t, rr))
}

// ── getExample ────────────────────────────────────────────────────────────────

func TestGetExample(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		callGet    bool
		getErr     error
		wantStatus int
		wantDetail string
	}{
		{name: "found", path: "/api/examples/1/", callGet: true, wantStatus: http.StatusOK},
		{name: "missing", path: "/api/examples/1/", callGet: true, getErr: store.ErrExampleNotFound, wantStatus: http.StatusNotFound, wantDetail: "Example item not found"},
		{name: "non-integer id", path: "/api/examples/abc/", wantStatus: http.StatusNotFound, wantDetail: "Not found."},
		{name: "zero id", path: "/api/examples/0/", wantStatus: http.StatusNotFound, wantDetail: "Not found."},
		{name: "negative id", path: "/api/examples/-4/", wantStatus: http.StatusNotFound, wantDetail: "Not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.authorized()
			if tt.callGet {
				f.examples.EXPECT().Get(gomock.Any(), int64(1)).Return(sampleExample(1, "Item"), tt.getErr)
			}

			rr := f.doAuthorized(http.MethodGet, tt.path, "")

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, detailOf(t, rr))
				return
			}
			assert.Equal(t, "Item", decodeBody[models.ExampleResponse](t, rr).Name)
		})
	}
}

// ── updateExample ─────────────────────────────────────────────────────────────

func TestUpdateExample_PutAndPatch(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			f := newFixture(t)
			f.authorized()

			updated := sampleExample(1, "Updated Name")
			f.examples.EXPECT().
				Update(gomock.Any(), int64(1), models.ExampleUpdateRequest{Name: ptr("Updated Name")}).
				Return(updated, nil)

			rr := f.doAuthorized(method, "/api/examples/1/", `{"name":"Updated Name"}`)

			require.Equal(t, http.StatusOK, rr.Code)
			body := decodeBody[models.ExampleResponse](t, rr)
			assert.Equal(t, "Updated Name", body.Name)
			assert.Equal(t, "Test description", body.Description)
		})
	}
}

func TestUpdateExample_NullFieldsAreIgnored(t *testing.T) {
	f := newFixture(t)
	f.authorized()
	f.examples.EXPECT().
		Update(gomock.Any(), int64(2), models.ExampleUpdateRequest{IsActive: ptr(false)}).
		Return(sampleExample(2, "Item"), nil)

	rr := f.doAuthorized(http.MethodPatch, "/api/examples/2/", `{"name":null,"is_active":false}`)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdateExample_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "not found", serviceErr: store.ErrExampleNotFound, wantStatus: http.StatusNotFound},
		{name: "validation", serviceErr: validators.NewValidationError("String should have at least 1 character", "string_too_short", "name"), wantStatus: http.StatusBadRequest},
		{name: "invalid data", serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "unexpected", serviceErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.authorized()
			f.examples.EXPECT().Update(gomock.Any(), int64(9), gomock.Any()).Return(models.Example{}, tt.serviceErr)

			rr := f.doAuthorized(http.MethodPut, "/api/examples/9/", `{"name":""}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdateExample_MalformedBody(t *testing.T) {
	tests := []struct {
		name       string
		getErr     error
		wantStatus int
	}{
		{name: "missing item", getErr: store.ErrExampleNotFound, wantStatus: http.StatusNotFound},
		{name: "existing item", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.authorized()
			f.examples.EXPECT().Get(gomock.Any(), int64(999)).Return(sampleExample(999, "Item"), tt.getErr)

			rr := f.doAuthorized(http.MethodPut, "/api/examples/999/", `{not json`)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdateExample_BadIDSkipsBody(t *testing.T) {
	f := newFixture(t)
	f.authorized()

	rr := f.doAuthorized(http.MethodPatch, "/api/examples/x/", `not json`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── deleteExample ─────────────────────────────────────────────────────────────

func TestDeleteExample(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "missing", deleteErr: store.ErrExampleNotFound, wantStatus: http.StatusNotFound},
		{name: "unexpected", deleteErr: errors.New("locked"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.authorized()
			f.examples.EXPECT().Delete(gomock.Any(), int64(5)).Return(tt.deleteErr)

			rr := f.doAuthorized(http.MethodDelete, "/api/examples/5/", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.deleteErr == nil {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
