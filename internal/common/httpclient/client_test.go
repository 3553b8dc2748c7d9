package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("go1.21.0\ntime 2023-08-08\n"))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := New()

	t.Run("success returns body verbatim", func(t *testing.T) {
		body, err := client.Get(context.Background(), server.URL+"/ok", nil)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(body) != "go1.21.0\ntime 2023-08-08\n" {
			t.Errorf("unexpected body %q", body)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		for _, path := range []string{"/missing", "/boom"} {
			_, err := client.Get(context.Background(), server.URL+path, nil)
			if !errors.Is(err, ErrUnexpectedStatus) {
				t.Errorf("%s: expected ErrUnexpectedStatus, got %v", path, err)
			}
		}
	})

	t.Run("connection failure", func(t *testing.T) {
		_, err := client.Get(context.Background(), "http://127.0.0.1:1/unreachable", nil)
		if !errors.Is(err, ErrRequestFailed) {
			t.Errorf("expected ErrRequestFailed, got %v", err)
		}
	})
}

func TestClient_Headers(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer server.Close()

	client := New()
	client.SetDefaultHeaders(map[string]string{"User-Agent": "default-agent", "X-Default": "1"})

	_, err := client.Get(context.Background(), server.URL, map[string]string{
		"User-Agent":    "custom-agent",
		"Authorization": "",
	})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got.Get("User-Agent") != "custom-agent" {
		t.Errorf("request header should override default, got %q", got.Get("User-Agent"))
	}
	if got.Get("X-Default") != "1" {
		t.Errorf("default header missing, got %q", got.Get("X-Default"))
	}
	if _, ok := got["Authorization"]; ok {
		t.Error("empty header values must not be sent")
	}
}

func TestBearerToken(t *testing.T) {
	if got := BearerToken(""); got != "" {
		t.Errorf("expected empty string for empty token, got %q", got)
	}
	if got := BearerToken("ghp_abc"); got != "Bearer ghp_abc" {
		t.Errorf("expected 'Bearer ghp_abc', got %q", got)
	}
}
