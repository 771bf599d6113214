package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendJsonStatus(t *testing.T) {
	recorder := httptest.NewRecorder()

	SendJsonStatus(recorder, http.StatusConflict, map[string]string{"error": "estado inválido"})

	if recorder.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected application/json, got %s", got)
	}
	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil || body["error"] != "estado inválido" {
		t.Errorf("Expected error body, got %s (%v)", recorder.Body.String(), err)
	}
}

func TestDecodeJson_RejectsUnknownFields(t *testing.T) {
	var target struct {
		Quantum int `json:"quantum"`
	}
	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantum": 3, "otro": 1}`))

	if err := DecodeJson(request, &target); err == nil {
		t.Errorf("Expected error for unknown field")
	}
}
