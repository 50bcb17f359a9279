package scenario

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bengobox/test-scenarios/internal/config"
	"github.com/bengobox/test-scenarios/internal/httpapi"
	"github.com/bengobox/test-scenarios/internal/httpapi/handlers"
	"go.uber.org/zap"
)

func newServer(t *testing.T, sc Scenario, env string) *httptest.Server {
	t.Helper()
	cfg := &config.Config{App: config.AppConfig{Environment: env, ServiceName: sc.Name}}
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Routes: sc.Routes(Deps{Config: cfg, Clock: handlers.SystemClock, Logger: zap.NewNop()}),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return resp.StatusCode, body
}

func decode(t *testing.T, body []byte) map[string]string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return out
}

func assertRecent(t *testing.T, ts string) {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		t.Fatalf("timestamp %q: %v", ts, err)
	}
	if d := time.Since(parsed); d < -2*time.Second || d > 2*time.Second {
		t.Errorf("timestamp %s off by %s", ts, d)
	}
}

func TestContainerApp(t *testing.T) {
	srv := newServer(t, ContainerApp, "development")

	status, body := get(t, srv, "/")
	if status != http.StatusOK || string(body) != "Hello from Container App!" {
		t.Errorf("GET / = %d %q", status, body)
	}

	status, body = get(t, srv, "/health")
	health := decode(t, body)
	if status != http.StatusOK || health["status"] != "OK" || health["service"] != "container-app-test" {
		t.Errorf("GET /health = %d %v", status, health)
	}

	status, body = get(t, srv, "/api/info")
	info := decode(t, body)
	if status != http.StatusOK || info["message"] != "Container App API" || info["env"] != "development" {
		t.Errorf("GET /api/info = %d %v", status, info)
	}
	assertRecent(t, info["timestamp"])
}

func TestContainerAppReportsEnvironment(t *testing.T) {
	srv := newServer(t, ContainerApp, "production")
	_, body := get(t, srv, "/api/info")
	if env := decode(t, body)["env"]; env != "production" {
		t.Errorf("env = %q", env)
	}
}

func TestAPI(t *testing.T) {
	srv := newServer(t, API, "development")

	status, body := get(t, srv, "/health")
	health := decode(t, body)
	if status != http.StatusOK || health["status"] != "OK" || health["service"] != "api" {
		t.Errorf("GET /health = %d %v", status, health)
	}

	status, body = get(t, srv, "/api/hello")
	hello := decode(t, body)
	if status != http.StatusOK || hello["message"] != "Hello from API" {
		t.Errorf("GET /api/hello = %d %v", status, hello)
	}
	assertRecent(t, hello["timestamp"])

	if status, _ := get(t, srv, "/"); status != http.StatusNotFound {
		t.Errorf("GET / = %d, want 404", status)
	}
}

func TestNextSSR(t *testing.T) {
	srv := newServer(t, NextSSR, "development")

	status, body := get(t, srv, "/")
	if status != http.StatusOK || !strings.Contains(string(body), "<h1>Hello from Next.js SSR</h1>") {
		t.Errorf("GET / = %d %q", status, body)
	}
}

func TestFlask(t *testing.T) {
	srv := newServer(t, Flask, "development")

	if status, body := get(t, srv, "/"); status != http.StatusOK || string(body) != "Hello from Flask!" {
		t.Errorf("GET / = %d %q", status, body)
	}
	if status, body := get(t, srv, "/health"); status != http.StatusOK || string(body) != "OK" {
		t.Errorf("GET /health = %d %q", status, body)
	}
}

func TestUnknownPathsAre404(t *testing.T) {
	for _, sc := range All {
		t.Run(sc.Name, func(t *testing.T) {
			srv := newServer(t, sc, "development")
			for _, path := range []string{"/missing", "/api", "/api/unknown", "/health/extra"} {
				if status, _ := get(t, srv, path); status != http.StatusNotFound {
					t.Errorf("GET %s = %d, want 404", path, status)
				}
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		sc   Scenario
		host string
		port int
	}{
		{ContainerApp, "0.0.0.0", 8080},
		{API, "0.0.0.0", 3001},
		{NextSSR, "0.0.0.0", 3000},
		{Flask, "127.0.0.1", 5000},
	}
	for _, tt := range tests {
		d := tt.sc.Defaults()
		if d.Host != tt.host || d.Port != tt.port || d.ServiceName != tt.sc.Name {
			t.Errorf("%s defaults = %+v", tt.sc.Name, d)
		}
	}
}

func TestBanners(t *testing.T) {
	tests := map[string]string{
		ContainerApp.Banner("0.0.0.0", 9000): "Container app listening on port 9000",
		API.Banner("0.0.0.0", 3001):          "API server running on port 3001",
		NextSSR.Banner("0.0.0.0", 3000):      "ready - started server on 0.0.0.0:3000",
		Flask.Banner("127.0.0.1", 5000):      "Running on http://127.0.0.1:5000",
	}
	for got, want := range tests {
		if got != want {
			t.Errorf("banner = %q, want %q", got, want)
		}
	}
}
