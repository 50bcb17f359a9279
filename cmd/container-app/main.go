package main

import (
	"github.com/bengobox/test-scenarios/internal/app"
	"github.com/bengobox/test-scenarios/internal/scenario"
)

func main() {
	app.Main(scenario.ContainerApp)
}
