package remote

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type sample struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Score float64 `json:"score"`
	Inner struct {
		Text string `json:"text"`
	} `json:"inner"`
}

func newTestClient() *Client {
	return NewClient(2*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetch_Decoding(t *testing.T) {
	tests := []struct {
		name string
		body string
		want sample
	}{
		{
			name: "all fields present",
			body: `{"name":"a","count":2,"score":1.5,"inner":{"text":"t"}}`,
			want: sample{Name: "a", Count: 2, Score: 1.5, Inner: struct {
				Text string `json:"text"`
			}{Text: "t"}},
		},
		{
			name: "unknown fields ignored",
			body: `{"name":"a","extra":{"deep":[1,2,3]},"flag":true}`,
			want: sample{Name: "a"},
		},
		{
			name: "missing fields default to zero",
			body: `{}`,
			want: sample{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			got, err := Fetch[sample](context.Background(), newTestClient(), srv.URL, nil)
			if err != nil {
				t.Fatalf("Fetch() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("Fetch() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClient_Get_QueryParams(t *testing.T) {
	var gotQuery url.Values
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	params := url.Values{}
	params.Set("q", "Новосибирск")
	params.Set("limit", "20")

	var out sample
	if err := newTestClient().Get(context.Background(), srv.URL+"/api/1/geocode?key=abc", params, &out); err != nil {
		t.Fatalf("Get() unexpected error = %v", err)
	}

	if gotPath != "/api/1/geocode" {
		t.Errorf("path = %v, want %v", gotPath, "/api/1/geocode")
	}
	want := url.Values{"key": {"abc"}, "q": {"Новосибирск"}, "limit": {"20"}}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_Get_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		errContains string
	}{
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        "no such place",
			wantStatus:  http.StatusNotFound,
			errContains: "fetch returned status 404: no such place",
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        "boom",
			wantStatus:  http.StatusInternalServerError,
			errContains: "status 500",
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `{"name":`,
			errContains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := Fetch[sample](context.Background(), newTestClient(), srv.URL, nil)
			if err == nil {
				t.Fatal("Fetch() expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Fetch() error = %v, want error containing %v", err, tt.errContains)
			}

			var statusErr *StatusError
			if tt.wantStatus != 0 {
				if !errors.As(err, &statusErr) {
					t.Fatalf("Fetch() error = %v, want *StatusError", err)
				}
				if statusErr.StatusCode != tt.wantStatus {
					t.Errorf("StatusCode = %v, want %v", statusErr.StatusCode, tt.wantStatus)
				}
			} else if errors.As(err, &statusErr) {
				t.Errorf("Fetch() error = %v, did not want *StatusError", err)
			}
		})
	}
}

func TestClient_Get_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := NewClient(50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := Fetch[sample](context.Background(), client, srv.URL, nil)
	if err == nil {
		t.Fatal("Fetch() expected timeout error but got none")
	}
	if !strings.Contains(err.Error(), "failed to fetch") {
		t.Errorf("Fetch() error = %v, want error containing %v", err, "failed to fetch")
	}
}

func TestClient_Get_TransportErrorHidesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Error("response writer does not support hijacking")
			return
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			t.Errorf("Hijack() error = %v", err)
			return
		}
		_ = conn.Close()
	}))
	defer srv.Close()

	params := url.Values{}
	params.Set("appid", "SECRET-OWM-KEY")
	params.Set("lat", "55")

	_, err := Fetch[sample](context.Background(), newTestClient(), srv.URL+"/weather", params)
	if err == nil {
		t.Fatal("Fetch() expected error but got none")
	}
	if strings.Contains(err.Error(), "SECRET-OWM-KEY") {
		t.Errorf("Fetch() error = %v, want the query string left out", err)
	}
	if !strings.Contains(err.Error(), srv.URL+"/weather") {
		t.Errorf("Fetch() error = %v, want error containing %v", err, srv.URL+"/weather")
	}

	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		t.Errorf("Fetch() error = %v, want *url.Error", err)
	}
}

func TestClient_Get_ErrorBodyIsCapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, strings.Repeat("x", 10*maxErrorBody))
	}))
	defer srv.Close()

	_, err := Fetch[sample](context.Background(), newTestClient(), srv.URL, nil)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Fetch() error = %v, want *StatusError", err)
	}
	if len(statusErr.Body) != maxErrorBody {
		t.Errorf("len(StatusError.Body) = %d, want %d", len(statusErr.Body), maxErrorBody)
	}
}
