// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/validation"
)

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	NewResponseWriter(w, r).Success(map[string]string{"message": "hello"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !response.Success {
		t.Error("Expected Success to be true")
	}
	if response.Error != nil {
		t.Error("Expected Error to be nil")
	}
	if response.Meta == nil {
		t.Fatal("Expected Meta to not be nil")
	}
	if response.Meta.Timestamp.IsZero() {
		t.Error("Expected Timestamp to be set")
	}
}

func TestResponseWriter_SuccessWithPagination(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	pagination := &PaginationMeta{Total: 100, Count: 2, Offset: 0, Limit: 2, HasMore: true}
	NewResponseWriter(w, r).SuccessWithPagination([]string{"item1", "item2"}, pagination)

	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Meta == nil || response.Meta.Pagination == nil {
		t.Fatal("Expected pagination meta")
	}
	if response.Meta.Pagination.Total != 100 {
		t.Errorf("Expected Total 100, got %d", response.Meta.Pagination.Total)
	}
	if !response.Meta.Pagination.HasMore {
		t.Error("Expected HasMore to be true")
	}
}

func TestResponseWriter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"BadRequest", func(rw *ResponseWriter) { rw.BadRequest("bad") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"NotFound", func(rw *ResponseWriter) { rw.NotFound("missing", nil) }, http.StatusNotFound, ErrCodeNotFound},
		{"ServiceUnavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("later") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"Error", func(rw *ResponseWriter) {
			rw.Error(http.StatusInternalServerError, ErrCodeInternalError, "boom")
		}, http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			tt.write(NewResponseWriter(w, httptest.NewRequest(http.MethodGet, "/test", nil)))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var response APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if response.Success {
				t.Error("Expected Success to be false")
			}
			if response.Error == nil || response.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", response.Error, tt.wantCode)
			}
		})
	}
}

func TestResponseWriter_ErrorCarriesRequestID(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	r = r.WithContext(logging.ContextWithRequestID(r.Context(), "req-123"))

	NewResponseWriter(w, r).ErrorWithDetails(http.StatusNotFound, ErrCodeNotFound, "missing", map[string]string{"title": "x"})

	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Error.RequestID != "req-123" {
		t.Errorf("error.request_id = %q, want req-123", response.Error.RequestID)
	}
	if response.Meta.RequestID != "req-123" {
		t.Errorf("meta.request_id = %q, want req-123", response.Meta.RequestID)
	}
	if response.Error.Details == nil {
		t.Error("Expected Details to be set")
	}
}

func TestResponseWriter_ValidationError(t *testing.T) {
	t.Parallel()

	req := recommendationsQuery{Title: ""}
	verr := validation.ValidateStruct(&req)
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error for blank title")
	}

	w := httptest.NewRecorder()
	NewResponseWriter(w, httptest.NewRequest(http.MethodGet, "/test", nil)).ValidationError(verr)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Error == nil || response.Error.Code != ErrCodeValidationFailed {
		t.Errorf("error = %+v, want code %s", response.Error, ErrCodeValidationFailed)
	}
}

func TestResponseWriter_Headers(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	NewResponseWriter(w, httptest.NewRequest(http.MethodGet, "/test", nil)).Success(nil)

	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q, want application/json; charset=utf-8", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}
}
