package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MarketAsk/internal/model"
)

func TestRESTFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/api/v1/bars/daily":
			if r.URL.Query().Get("symbol") != "MSFT" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if r.URL.Query().Get("range") != "6mo" {
				t.Errorf("expected range=6mo, got %q", r.URL.Query().Get("range"))
			}
			w.Write([]byte(`[{"timestamp":1704376800,"close":372.5},{"timestamp":1704290400,"close":370.6}]`))
		case "/api/v1/profile":
			w.Write([]byte(`{"name":"Microsoft Corporation","sector":"Technology","market_cap":2.8e12}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL+"/", "secret", "", time.Second)

	h, err := f.FetchHistory(context.Background(), "MSFT", model.Period6Months)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := h.Closes(); len(got) != 2 || got[0] != 370.6 || got[1] != 372.5 {
		t.Errorf("expected chronological closes [370.6 372.5], got %v", got)
	}

	p, err := f.FetchProfile(context.Background(), "MSFT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name == nil || *p.Name != "Microsoft Corporation" {
		t.Errorf("unexpected name: %v", p.Name)
	}
	if p.DividendYield != nil {
		t.Errorf("expected absent dividend yield, got %v", *p.DividendYield)
	}

	if _, err := f.FetchHistory(context.Background(), "NOPE", model.Period6Months); !errors.Is(err, model.ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable for unknown symbol, got %v", err)
	}
}

func TestRESTFetcher_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("bad key"))
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "wrong", "", time.Second)
	_, err := f.FetchHistory(context.Background(), "MSFT", model.Period1Year)
	var de *model.DataError
	if !errors.As(err, &de) {
		t.Fatalf("expected DataError, got %v", err)
	}
	if de.Op != "history" {
		t.Errorf("expected op history, got %q", de.Op)
	}
}
