package main

import (
	"github.com/bengobox/test-scenarios/internal/app"
	"github.com/bengobox/test-scenarios/internal/scenario"
)

// python-flask mirrors the Flask scenario: two plain-text routes on 127.0.0.1:5000.
func main() {
	app.Main(scenario.Flask)
}
