package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AndrywBarrera/OperativePages/simulador/models"
)

func TestHTTPObserver_PushesSnapshots(t *testing.T) {
	received := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		var snapshot models.Snapshot
		if err := json.NewDecoder(request.Body).Decode(&snapshot); err != nil {
			t.Errorf("Expected JSON snapshot, got %v", err)
		}
		received <- request.URL.Path
		writer.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	observer := NewHTTPObserver(srv.URL, 4)
	go observer.Run(ctx)

	observer.OnSnapshot(models.Snapshot{Tick: 1})
	observer.OnCompleted(models.Snapshot{Tick: 2})

	for _, want := range []string{"/snapshot", "/completado"} {
		select {
		case got := <-received:
			if got != want {
				t.Errorf("Expected push to %s, got %s", want, got)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Expected push to %s", want)
		}
	}
}

func TestHTTPObserver_DropsWhenQueueIsFull(t *testing.T) {
	observer := NewHTTPObserver("http://127.0.0.1:0", 1)

	observer.OnSnapshot(models.Snapshot{Tick: 1})
	observer.OnSnapshot(models.Snapshot{Tick: 2})

	if observer.Dropped() != 1 {
		t.Errorf("Expected 1 dropped snapshot, got %d", observer.Dropped())
	}
}

func TestHTTPObserver_CompletionSurvivesFullQueue(t *testing.T) {
	received := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		received <- request.URL.Path
		writer.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	observer := NewHTTPObserver(srv.URL, 1)
	observer.OnSnapshot(models.Snapshot{Tick: 1})
	observer.OnSnapshot(models.Snapshot{Tick: 2})
	observer.OnCompleted(models.Snapshot{Tick: 2, State: models.StateCompleted})

	if observer.Dropped() != 1 {
		t.Errorf("Expected only the second snapshot dropped, got %d", observer.Dropped())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go observer.Run(ctx)

	for _, want := range []string{"/snapshot", "/completado"} {
		select {
		case got := <-received:
			if got != want {
				t.Errorf("Expected push to %s, got %s", want, got)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Expected push to %s", want)
		}
	}
}
