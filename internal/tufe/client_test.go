package tufe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ustaoglu/kiracap/internal/model"
)

func testConfig(baseURL string) *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = 5 * time.Second
	cfg.Tufe.BaseURL = baseURL
	cfg.Tufe.APIKey = "test-key"
	cfg.Tufe.RequestsPerSecond = 1000 // no throttling in tests
	cfg.Tufe.Burst = 1000
	return cfg
}

func TestFetchYear_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("key"); got != "test-key" {
			t.Errorf("key header = %q, want test-key", got)
		}
		if !strings.HasSuffix(r.URL.Path, "/series/tufe/2024") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"year":2024,"value":44.0}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	value, err := client.FetchYear(context.Background(), 2024)
	if err != nil {
		t.Fatalf("FetchYear error: %v", err)
	}
	if value != 44.0 {
		t.Errorf("FetchYear = %v, want 44.0", value)
	}
}

func TestFetchYear_YearMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"year":2023,"value":64.77}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	if _, err := client.FetchYear(context.Background(), 2024); err == nil {
		t.Fatal("FetchYear with mismatched year = nil error, want error")
	}
}

func TestFetchYear_MissingValueField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"year":2024}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	if _, err := client.FetchYear(context.Background(), 2024); err == nil {
		t.Fatal("FetchYear with missing value = nil error, want error")
	}
}

func TestFetchYear_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	if _, err := client.FetchYear(context.Background(), 2024); err == nil {
		t.Fatal("FetchYear with malformed body = nil error, want error")
	}
}

func TestFetchYear_OutOfRangeValue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"year":2024,"value":1500}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, err := client.FetchYear(context.Background(), 2024)
	if err == nil {
		t.Fatal("FetchYear with out-of-range value = nil error, want error")
	}
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("FetchYear = %v, want ErrValidation", err)
	}
}

func TestFetchYear_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	if _, err := client.FetchYear(context.Background(), 2024); err == nil {
		t.Fatal("FetchYear under 429 = nil error, want error")
	}
}

func TestFetchYear_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	if _, err := client.FetchYear(context.Background(), 2024); err == nil {
		t.Fatal("FetchYear under 500 = nil error, want error (single attempt, no retry)")
	}
}
