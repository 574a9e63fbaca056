// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/utils"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/go-chi/chi/v5"
)

const (
	apiTitle       = "Go Service Template API"
	apiDescription = "CRUD API of the example resource."
	bearerAuth     = "bearerAuth"

	tagAuth     = "auth"
	tagExamples = "examples"
	tagSystem   = "system"
)

// operationDoc describes one route for the OpenAPI document. Routes
// without an entry in operationDocs are left out of the document.
type operationDoc struct {
	summary     string
	description string
	tag         string
	secured     bool
	pageQuery   bool
	request     any
	// responses maps a status code to its body; nil means no body.
	responses map[int]any
}

var operationDocs = map[string]operationDoc{
	"POST /api/auth/register": {
		summary: "Register a user",
		tag:     tagAuth,
		request: models.User{},
		responses: map[int]any{
			http.StatusCreated:    nil,
			http.StatusBadRequest: models.DetailResponse{},
			http.StatusConflict:   models.DetailResponse{},
		},
	},
	"POST /api/auth/login": {
		summary:     "Log in",
		description: "Returns a bearer token in the Authorization response header.",
		tag:         tagAuth,
		request:     models.User{},
		responses: map[int]any{
			http.StatusOK:           nil,
			http.StatusUnauthorized: models.DetailResponse{},
		},
	},
	"GET /api/examples/": {
		summary:     "List example items",
		description: "Retrieve a paginated list of example items, newest first.",
		tag:         tagExamples,
		secured:     true,
		pageQuery:   true,
		responses: map[int]any{
			http.StatusOK:           models.ExampleListResponse{},
			http.StatusBadRequest:   models.ValidationErrorResponse{},
			http.StatusUnauthorized: models.DetailResponse{},
		},
	},
	"POST /api/examples/": {
		summary: "Create an example item",
		tag:     tagExamples,
		secured: true,
		request: models.ExampleCreateRequest{},
		responses: map[int]any{
			http.StatusCreated:      models.ExampleResponse{},
			http.StatusBadRequest:   models.ValidationErrorResponse{},
			http.StatusUnauthorized: models.DetailResponse{},
		},
	},
	"GET /api/examples/{id}/": {
		summary: "Retrieve an example item",
		tag:     tagExamples,
		secured: true,
		responses: map[int]any{
			http.StatusOK:           models.ExampleResponse{},
			http.StatusUnauthorized: models.DetailResponse{},
			http.StatusNotFound:     models.DetailResponse{},
		},
	},
	"PUT /api/examples/{id}/": {
		summary:     "Update an example item",
		description: "Only the provided fields are changed.",
		tag:         tagExamples,
		secured:     true,
		request:     models.ExampleUpdateRequest{},
		responses: map[int]any{
			http.StatusOK:           models.ExampleResponse{},
			http.StatusBadRequest:   models.ValidationErrorResponse{},
			http.StatusUnauthorized: models.DetailResponse{},
			http.StatusNotFound:     models.DetailResponse{},
		},
	},
	"PATCH /api/examples/{id}/": {
		summary: "Partially update an example item",
		tag:     tagExamples,
		secured: true,
		request: models.ExampleUpdateRequest{},
		responses: map[int]any{
			http.StatusOK:           models.ExampleResponse{},
			http.StatusBadRequest:   models.ValidationErrorResponse{},
			http.StatusUnauthorized: models.DetailResponse{},
			http.StatusNotFound:     models.DetailResponse{},
		},
	},
	"DELETE /api/examples/{id}/": {
		summary: "Delete an example item",
		tag:     tagExamples,
		secured: true,
		responses: map[int]any{
			http.StatusNoContent:    nil,
			http.StatusUnauthorized: models.DetailResponse{},
			http.StatusNotFound:     models.DetailResponse{},
		},
	},
	"GET /api/version/": {
		summary:   "Application version",
		tag:       tagSystem,
		responses: map[int]any{http.StatusOK: models.VersionResponse{}},
	},
	"GET /api/health/": {
		summary: "Health check",
		tag:     tagSystem,
		responses: map[int]any{
			http.StatusOK:                 models.HealthStatus{},
			http.StatusServiceUnavailable: models.HealthStatus{},
		},
	},
}

// getOpenAPISchema serves the OpenAPI document. It is built on first use
// from the routes registered by Init.
func (h *Handler) getOpenAPISchema(w http.ResponseWriter, r *http.Request) {
	h.schemaOnce.Do(func() {
		version := h.services.AppInfoService.GetAppVersion(r.Context())
		h.schema, h.schemaErr = buildOpenAPI(h.router, version)
	})

	if h.schemaErr != nil {
		logger.FromRequest(r).Err(h.schemaErr).Str("func", "*Handler.getOpenAPISchema").Msg("error building OpenAPI document")
		writeError(w, r, "*Handler.getOpenAPISchema", h.schemaErr)
		return
	}

	utils.WriteJSON(w, h.schema, http.StatusOK)
}

// buildOpenAPI walks router and documents every route listed in
// operationDocs. Body schemas are generated from the model types.
func buildOpenAPI(router chi.Routes, version string) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       apiTitle,
			Description: apiDescription,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{},
			SecuritySchemes: openapi3.SecuritySchemes{
				bearerAuth: &openapi3.SecuritySchemeRef{Value: openapi3.NewJWTSecurityScheme()},
			},
		},
	}

	schemas := &schemaRegistry{components: doc.Components.Schemas}

	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		opDoc, ok := operationDocs[method+" "+route]
		if !ok {
			return nil
		}

		op, err := newOperation(method, route, opDoc, schemas)
		if err != nil {
			return fmt.Errorf("error documenting %s %s: %w", method, route, err)
		}
		doc.AddOperation(route, method, op)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func newOperation(method, route string, opDoc operationDoc, schemas *schemaRegistry) (*openapi3.Operation, error) {
	op := openapi3.NewOperation()
	op.Summary = opDoc.summary
	op.Description = opDoc.description
	op.OperationID = operationID(method, route)
	if opDoc.tag != "" {
		op.Tags = []string{opDoc.tag}
	}

	if opDoc.secured {
		op.Security = openapi3.NewSecurityRequirements().With(openapi3.NewSecurityRequirement().Authenticate(bearerAuth))
	}
	if strings.Contains(route, "{id}") {
		op.AddParameter(openapi3.NewPathParameter("id").
			WithSchema(openapi3.NewIntegerSchema().WithMin(1)).
			WithDescription("Example item id"))
	}
	if opDoc.pageQuery {
		op.AddParameter(openapi3.NewQueryParameter("page").
			WithSchema(openapi3.NewIntegerSchema().WithMin(1)).
			WithDescription("1-based page number"))
	}

	if opDoc.request != nil {
		ref, err := schemas.ref(opDoc.request)
		if err != nil {
			return nil, err
		}
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithJSONSchemaRef(ref).WithRequired(true),
		}
	}

	statuses := make([]int, 0, len(opDoc.responses))
	for status := range opDoc.responses {
		statuses = append(statuses, status)
	}
	slices.Sort(statuses)

	for _, status := range statuses {
		response := openapi3.NewResponse().WithDescription(http.StatusText(status))
		if body := opDoc.responses[status]; body != nil {
			ref, err := schemas.ref(body)
			if err != nil {
				return nil, err
			}
			response = response.WithJSONSchemaRef(ref)
		}
		op.AddResponse(status, response)
	}
	// AddResponse seeds a "default" entry that we never answer with.
	op.Responses.Delete("default")

	return op, nil
}

// operationID turns "GET /api/examples/{id}/" into "get_api_examples_id".
func operationID(method, route string) string {
	parts := []string{strings.ToLower(method)}
	for _, segment := range strings.Split(route, "/") {
		segment = strings.Trim(segment, "{}")
		if segment != "" {
			parts = append(parts, segment)
		}
	}
	return strings.Join(parts, "_")
}

// schemaRegistry generates one component schema per model type and hands
// out references to it.
type schemaRegistry struct {
	components openapi3.Schemas
}

func (s *schemaRegistry) ref(value any) (*openapi3.SchemaRef, error) {
	t := reflect.TypeOf(value)
	name := t.Name()

	if _, ok := s.components[name]; !ok {
		generated, err := openapi3gen.NewSchemaRefForValue(value, s.components, openapi3gen.SchemaCustomizer(customizeSchema))
		if err != nil {
			return nil, fmt.Errorf("error generating schema for %s: %w", name, err)
		}
		generated.Value.Required = requiredFields(t)
		s.components[name] = generated
	}

	return openapi3.NewSchemaRef("#/components/schemas/"+name, nil), nil
}

// customizeSchema copies the `doc` tag into the description and the string
// length bounds of the `validate` tag into minLength/maxLength.
func customizeSchema(_ string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	if description := tag.Get("doc"); description != "" {
		schema.Description = description
	}

	if t.Kind() != reflect.String {
		return nil
	}

	for _, rule := range strings.Split(tag.Get("validate"), ",") {
		key, param, ok := strings.Cut(rule, "=")
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(param, 10, 64)
		if err != nil {
			continue
		}
		switch key {
		case "min":
			schema.MinLength = n
		case "max":
			schema.MaxLength = &n
		}
	}

	return nil
}

// requiredFields lists the JSON names of the fields marked `validate:"required"`.
func requiredFields(t reflect.Type) []string {
	var required []string
	for i := range t.NumField() {
		field := t.Field(i)
		if !slices.Contains(strings.Split(field.Tag.Get("validate"), ","), "required") {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" {
			name = field.Name
		}
		required = append(required, name)
	}
	return required
}

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>` + apiTitle + `</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.onload = () => {
      window.ui = SwaggerUIBundle({ url: "/api/schema/", dom_id: "#swagger-ui" });
    };
  </script>
</body>
</html>
`

// getSwaggerUI serves an interactive documentation page for /api/schema/.
func (h *Handler) getSwaggerUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(swaggerUIPage)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSwaggerUI").Msg("error writing docs page")
	}
}
