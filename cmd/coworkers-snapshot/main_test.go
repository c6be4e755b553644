package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/coworker-service/internal/config"
	"github.com/spec-kit/coworker-service/pkg/coworkers"
)

func TestRunPrintsSnapshotFromConfiguredAPI(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/departments":
			_, _ = w.Write([]byte(`{"departments":["Eng","Sales"]}`))
		case "/coworkers":
			query = r.URL.RawQuery
			_, _ = w.Write([]byte(`[{"id":7,"name":"Ana","role":"Dev","department":"Eng","salary":90000}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := config.ClientConfig{BaseURL: srv.URL, TimeoutSeconds: 2}
	var out bytes.Buffer
	err := run(context.Background(), cfg, coworkers.Criteria{Department: "Eng"}, zap.NewNop(), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if query != "department=Eng" {
		t.Fatalf("unexpected query %q", query)
	}

	var got snapshot
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if len(got.Departments) != 2 || len(got.Coworkers) != 1 || got.Coworkers[0].ID != "7" {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestRunFailsWhenAPIRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := run(context.Background(), config.ClientConfig{BaseURL: srv.URL}, coworkers.Criteria{}, zap.NewNop(), &out)
	if !errors.Is(err, coworkers.ErrFetchFailed) {
		t.Fatalf("expected fetch failure, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be printed on failure, got %q", out.String())
	}
}
