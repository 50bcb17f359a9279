// Package scenario declares the deployment test scenarios served by this
// repository. Each scenario is a route table plus listener defaults; the
// process lifecycle around it lives in package app.
package scenario

import (
	"fmt"

	"github.com/bengobox/test-scenarios/internal/config"
	"github.com/bengobox/test-scenarios/internal/httpapi"
	"github.com/bengobox/test-scenarios/internal/httpapi/handlers"
	"go.uber.org/zap"
)

// Deps are what route builders may draw on.
type Deps struct {
	Config *config.Config
	Clock  handlers.Clock
	Logger *zap.Logger
}

// Scenario describes one fixture server.
type Scenario struct {
	Name        string
	DefaultHost string
	DefaultPort int
	// Banner formats the startup line from the bound host and port.
	Banner func(host string, port int) string
	Routes func(deps Deps) []httpapi.Route
}

// Defaults returns the config defaults for this scenario.
func (s Scenario) Defaults() config.Defaults {
	return config.Defaults{
		ServiceName: s.Name,
		Host:        s.DefaultHost,
		Port:        s.DefaultPort,
	}
}

var ContainerApp = Scenario{
	Name:        "container-app",
	DefaultHost: "0.0.0.0",
	DefaultPort: 8080,
	Banner: func(_ string, port int) string {
		return fmt.Sprintf("Container app listening on port %d", port)
	},
	Routes: func(deps Deps) []httpapi.Route {
		return []httpapi.Route{
			{Path: "/", Handler: handlers.Greeting("Hello from Container App!")},
			{Path: "/health", Handler: handlers.Health("container-app-test")},
			{Path: "/api/info", Handler: handlers.Info(deps.Config.App.Environment, deps.Clock)},
		}
	},
}

var API = Scenario{
	Name:        "api",
	DefaultHost: "0.0.0.0",
	DefaultPort: 3001,
	Banner: func(_ string, port int) string {
		return fmt.Sprintf("API server running on port %d", port)
	},
	Routes: func(deps Deps) []httpapi.Route {
		return []httpapi.Route{
			{Path: "/health", Handler: handlers.Health("api")},
			{Path: "/api/hello", Handler: handlers.Hello(deps.Clock)},
		}
	},
}

var NextSSR = Scenario{
	Name:        "nextjs-ssr",
	DefaultHost: "0.0.0.0",
	DefaultPort: 3000,
	Banner: func(host string, port int) string {
		return fmt.Sprintf("ready - started server on %s:%d", host, port)
	},
	Routes: func(deps Deps) []httpapi.Route {
		return []httpapi.Route{
			{Path: "/", Handler: handlers.Page(deps.Clock, deps.Logger)},
		}
	},
}

var Flask = Scenario{
	Name:        "python-flask",
	DefaultHost: "127.0.0.1",
	DefaultPort: 5000,
	Banner: func(host string, port int) string {
		return fmt.Sprintf("Running on http://%s:%d", host, port)
	},
	Routes: func(Deps) []httpapi.Route {
		return []httpapi.Route{
			{Path: "/", Handler: handlers.Greeting("Hello from Flask!")},
			{Path: "/health", Handler: handlers.PlainHealth},
		}
	},
}

// All lists every scenario.
var All = []Scenario{ContainerApp, API, NextSSR, Flask}
