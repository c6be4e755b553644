package coworkers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL+"/"), WithTimeout(2*time.Second))
}

func TestClientListCoworkersQuery(t *testing.T) {
	cases := []struct {
		name     string
		criteria Criteria
		want     string
	}{
		{"unfiltered", Criteria{}, ""},
		{"search and department", Criteria{SearchText: "Ana", Department: "Eng"}, "department=Eng&search=Ana"},
		{"search only", Criteria{SearchText: "Ana"}, "search=Ana"},
		{"escaped", Criteria{SearchText: "a&b", Department: "R&D"}, "department=R%26D&search=a%26b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotQuery, gotPath, gotMethod, gotRequestID string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotMethod, gotPath, gotQuery = r.Method, r.URL.Path, r.URL.RawQuery
				gotRequestID = r.Header.Get("X-Request-ID")
				_, _ = io.WriteString(w, `[]`)
			})
			records, err := c.ListCoworkers(context.Background(), tc.criteria)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if records == nil || len(records) != 0 {
				t.Fatalf("expected empty non-nil slice, got %#v", records)
			}
			if gotMethod != http.MethodGet || gotPath != "/coworkers" || gotQuery != tc.want {
				t.Fatalf("unexpected request %s %s?%s", gotMethod, gotPath, gotQuery)
			}
			if gotRequestID == "" {
				t.Fatalf("expected X-Request-ID header")
			}
		})
	}
}

func TestClientListCoworkersDecodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":1,"name":"Ana","role":"Dev","department":"Eng","salary":90000}]`)
	})
	records, err := c.ListCoworkers(context.Background(), Criteria{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := Record{ID: "1", Name: "Ana", Role: "Dev", Department: "Eng", Salary: 90000}
	if len(records) != 1 || records[0] != want {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestClientFailures(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/coworkers":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"error":{"code":"INTERNAL_ERROR"}}`)
		case "/departments":
			_, _ = io.WriteString(w, `not json`)
		}
	})

	_, err := c.ListCoworkers(context.Background(), Criteria{})
	var se *SyncError
	if !errors.As(err, &se) || se.Kind != FetchFailed || se.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected FetchFailed 500, got %v", err)
	}

	_, err = c.ListDepartments(context.Background())
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected FetchFailed for undecodable body, got %v", err)
	}
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(WithBaseURL(url))
	_, err := c.ListDepartments(context.Background())
	var se *SyncError
	if !errors.As(err, &se) || se.Kind != FetchFailed || se.StatusCode != 0 || se.Err == nil {
		t.Fatalf("expected transport FetchFailed, got %#v", err)
	}
}

func TestClientListDepartments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/departments" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"departments":["Eng","Sales"]}`)
	})
	names, err := c.ListDepartments(context.Background())
	if err != nil {
		t.Fatalf("departments: %v", err)
	}
	if len(names) != 2 || names[0] != "Eng" || names[1] != "Sales" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestClientCreateCoworker(t *testing.T) {
	var got CreateRequest
	var contentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/coworkers" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"abc","name":"Bo","role":"QA","department":"Eng","salary":85000}`)
	})

	rec, err := c.CreateCoworker(context.Background(), CreateRequest{Name: "Bo", Role: "QA", Department: "Eng", Salary: 85000})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec == nil || rec.ID != "abc" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if got.Salary != 85000 || got.Name != "Bo" || contentType != "application/json" {
		t.Fatalf("unexpected body %+v (%s)", got, contentType)
	}
}

func TestClientCreateIgnoresUnreadableSuccessBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	rec, err := c.CreateCoworker(context.Background(), CreateRequest{Name: "Bo"})
	if err != nil || rec != nil {
		t.Fatalf("expected success without record, got %+v %v", rec, err)
	}
}

func TestClientCreateFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	_, err := c.CreateCoworker(context.Background(), CreateRequest{})
	if !errors.Is(err, ErrCreateFailed) {
		t.Fatalf("expected CreateFailed, got %v", err)
	}
}

func TestWithTimeoutLeavesSharedClientAlone(t *testing.T) {
	shared := &http.Client{Timeout: 30 * time.Second}

	first := NewClient(WithHTTPClient(shared), WithTimeout(time.Second))
	second := NewClient(WithTimeout(5*time.Second), WithHTTPClient(shared))

	if shared.Timeout != 30*time.Second {
		t.Fatalf("shared client was modified: %s", shared.Timeout)
	}
	if first.httpClient == shared || first.httpClient.Timeout != time.Second {
		t.Fatalf("expected a 1s copy, got %s", first.httpClient.Timeout)
	}
	if second.httpClient == shared || second.httpClient.Timeout != 5*time.Second {
		t.Fatalf("option order must not matter, got %s", second.httpClient.Timeout)
	}

	plain := NewClient(WithHTTPClient(shared))
	if plain.httpClient != shared {
		t.Fatalf("without a timeout the caller's client is used as is")
	}
}
