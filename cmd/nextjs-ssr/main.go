package main

import (
	"github.com/bengobox/test-scenarios/internal/app"
	"github.com/bengobox/test-scenarios/internal/scenario"
)

// nextjs-ssr renders the index page per request, embedding the request time.
func main() {
	app.Main(scenario.NextSSR)
}
