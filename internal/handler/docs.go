package handler

import (
	"net/http"
	"strconv"

	"github.com/forecast-service-result/internal/client"
)

// Route describes one documented GET endpoint.
type Route struct {
	Path      string
	Summary   string
	Responses []int
	Empty     bool // a 200 may carry no body
	// AlwaysEmpty marks routes whose 200 never has a body.
	AlwaysEmpty bool
}

// DocsHandler serves an OpenAPI 3 description of the forecast routes.
type DocsHandler struct {
	doc openAPIDoc
}

func NewDocsHandler(title, version string, routes []Route) *DocsHandler {
	return &DocsHandler{doc: buildOpenAPI(title, version, routes)}
}

func (h *DocsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, h.doc)
}

type openAPIDoc struct {
	OpenAPI    string                          `json:"openapi"`
	Info       openAPIInfo                     `json:"info"`
	Paths      map[string]map[string]opDoc     `json:"paths"`
	Components map[string]map[string]schemaRef `json:"components"`
}

type openAPIInfo struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type opDoc struct {
	Summary   string                 `json:"summary"`
	Responses map[string]responseDoc `json:"responses"`
}

type responseDoc struct {
	Description string                 `json:"description"`
	Content     map[string]mediaSchema `json:"content,omitempty"`
}

type mediaSchema struct {
	Schema schemaRef `json:"schema"`
}

type schemaRef struct {
	Ref        string               `json:"$ref,omitempty"`
	Type       string               `json:"type,omitempty"`
	Format     string               `json:"format,omitempty"`
	Enum       []string             `json:"enum,omitempty"`
	Properties map[string]schemaRef `json:"properties,omitempty"`
}

var schemas = map[string]schemaRef{
	"Forecast": {
		Type: "object",
		Properties: map[string]schemaRef{
			"date":         {Type: "string", Format: "date-time"},
			"temperatureC": {Type: "integer"},
			"summary":      {Type: "string", Enum: client.Summaries()},
		},
	},
	"ErrorResponse": {
		Type: "object",
		Properties: map[string]schemaRef{
			"errorMessage": {Type: "string"},
		},
	},
}

func buildOpenAPI(title, version string, routes []Route) openAPIDoc {
	paths := make(map[string]map[string]opDoc, len(routes))
	for _, route := range routes {
		responses := make(map[string]responseDoc, len(route.Responses))
		for _, code := range route.Responses {
			responses[strconv.Itoa(code)] = describeResponse(code, route)
		}
		paths[route.Path] = map[string]opDoc{
			"get": {Summary: route.Summary, Responses: responses},
		}
	}

	return openAPIDoc{
		OpenAPI:    "3.0.3",
		Info:       openAPIInfo{Title: title, Version: version},
		Paths:      paths,
		Components: map[string]map[string]schemaRef{"schemas": schemas},
	}
}

func describeResponse(code int, route Route) responseDoc {
	schema := "#/components/schemas/ErrorResponse"
	description := http.StatusText(code)
	if code == http.StatusOK {
		if route.AlwaysEmpty {
			return responseDoc{Description: description + " (empty body)"}
		}
		schema = "#/components/schemas/Forecast"
		if route.Empty {
			description += " (empty body on partial success)"
		}
	}
	return responseDoc{
		Description: description,
		Content: map[string]mediaSchema{
			"application/json": {Schema: schemaRef{Ref: schema}},
		},
	}
}
