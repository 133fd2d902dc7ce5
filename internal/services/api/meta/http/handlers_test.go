package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lingo/internal/platform/config"
	phttp "lingo/internal/platform/net/http"

	metahttp "lingo/internal/services/api/meta/http"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newRouter(d metahttp.Deps) phttp.Router {
	r := phttp.NewServer(config.New()).Router()
	metahttp.Register(r, d)
	return r
}

func get(t *testing.T, r phttp.Router, path string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.Mux().ServeHTTP(rec, req)

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	r := newRouter(metahttp.Deps{ServiceName: "lingo-api", StartedAt: time.Now()})

	rec, env := get(t, r, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := env.Data.(map[string]any)
	if data["ok"] != true {
		t.Fatalf("ok = %v, want true", data["ok"])
	}
	if data["service"] != "lingo-api" {
		t.Fatalf("service = %v, want lingo-api", data["service"])
	}
}

func TestReady(t *testing.T) {
	cases := []struct {
		name string
		pg   any
		ch   any
		want string
	}{
		{"both ok", pinger{}, pinger{}, "ok"},
		{"ch skipped", pinger{}, nil, "degraded"},
		{"pg fail", pinger{err: errors.New("down")}, pinger{}, "fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(metahttp.Deps{ServiceName: "lingo-api", StartedAt: time.Now(), PG: tc.pg, CH: tc.ch})
			_, env := get(t, r, "/ready")
			data := env.Data.(map[string]any)
			if data["status"] != tc.want {
				t.Fatalf("status = %v, want %s", data["status"], tc.want)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	r := newRouter(metahttp.Deps{ServiceName: "lingo-api", StartedAt: time.Now()})

	rec, env := get(t, r, "/version")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := env.Data.(map[string]any)
	if data["service"] != "lingo-api" {
		t.Fatalf("service = %v, want lingo-api", data["service"])
	}
}

func TestService(t *testing.T) {
	started := time.Now().Add(-90 * time.Second)
	r := newRouter(metahttp.Deps{ServiceName: "lingo-api", StartedAt: started})

	_, env := get(t, r, "/service")
	data := env.Data.(map[string]any)
	if up := data["uptime"].(float64); up < 89 {
		t.Fatalf("uptime = %v, want >= 89", up)
	}
}
