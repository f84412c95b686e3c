// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without Handler.Init so no services
// are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/history", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("history"))
	})
	router.Delete("/api/history", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Post("/api/history/{id}/select", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chi.URLParam(r, "id")))
	})
	router.Put("/api/preferences/theme", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "registered GET passes through", method: http.MethodGet, path: "/api/history", expectedStatus: http.StatusOK, expectedBody: "history"},
		{name: "registered DELETE passes through", method: http.MethodDelete, path: "/api/history", expectedStatus: http.StatusNoContent},
		{name: "parameterised route passes through", method: http.MethodPost, path: "/api/history/DNA-1/select", expectedStatus: http.StatusOK, expectedBody: "DNA-1"},
		{name: "unregistered method on static path", method: http.MethodPost, path: "/api/history", expectedStatus: http.StatusNotFound},
		{name: "unregistered method on parameterised path", method: http.MethodGet, path: "/api/history/DNA-1/select", expectedStatus: http.StatusNotFound},
		{name: "PATCH on theme", method: http.MethodPatch, path: "/api/preferences/theme", expectedStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			// Act
			router.ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_DirectCall(t *testing.T) {
	router := buildRouter()
	handler := CheckHTTPMethod(router)

	t.Run("matching method is delegated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/api/history", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("non matching method is hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPut, "/api/history", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}
