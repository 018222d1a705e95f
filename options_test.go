package mlflow

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWithLogger_EmitsRequestLogs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"experiment_id": "1"}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	client := NewRestClient(server.URL, WithLogger(handler))

	_, err := client.CreateExperiment(context.Background(), &Experiment{Name: "exp"})
	if err != nil {
		t.Fatalf("CreateExperiment() error = %v", err)
	}

	logged := buf.String()
	if !strings.Contains(logged, "method=POST") {
		t.Errorf("log output = %q, want request method logged", logged)
	}
	if !strings.Contains(logged, "status=200") {
		t.Errorf("log output = %q, want response status logged", logged)
	}
}

func TestWithLogger_NilHandler(t *testing.T) {
	// A nil handler must leave the client silent, not panic.
	client := newTestClientWithOptions(t, WithLogger(nil))

	_, err := client.GetExperimentByID(context.Background(), "1")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestWithHTTPClient_Used(t *testing.T) {
	roundTrips := 0
	custom := &http.Client{
		Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			roundTrips++
			return http.DefaultTransport.RoundTrip(r)
		}),
	}

	client := newTestClientWithOptions(t, WithHTTPClient(custom))

	client.GetExperimentByID(context.Background(), "1")
	if roundTrips != 1 {
		t.Errorf("round trips = %d, want the custom client used", roundTrips)
	}
}

func newTestClientWithOptions(t *testing.T, opts ...ClientOption) *RestClient {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(http.NotFound))
	t.Cleanup(server.Close)

	return NewRestClient(server.URL, opts...)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
