package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostJson(t *testing.T) {
	var received map[string]int
	srv := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", request.Method)
		}
		if got := request.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Expected application/json, got %s", got)
		}
		_ = json.NewDecoder(request.Body).Decode(&received)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := PostJson(srv.URL+"/snapshot", map[string]int{"tick": 3}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if received["tick"] != 3 {
		t.Errorf("Expected tick 3, got %v", received)
	}
}

func TestDoRequest_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "nope", http.StatusConflict)
	}))
	defer srv.Close()

	response, err := DoRequest(srv.URL, http.MethodGet)
	if err == nil {
		t.Fatalf("Expected status error")
	}
	if response == nil || response.StatusCode != http.StatusConflict {
		t.Errorf("Expected response with status 409, got %v", response)
	}
	response.Body.Close()
}

func TestBuildURL(t *testing.T) {
	if got := BuildURL("127.0.0.1", 8080, "simulador/estado"); got != "http://127.0.0.1:8080/simulador/estado" {
		t.Errorf("Expected http://127.0.0.1:8080/simulador/estado, got %s", got)
	}
}
