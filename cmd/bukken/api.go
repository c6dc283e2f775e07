package main

import (
	"github.com/bukkenlabs/bukken/internal/api"
	"github.com/bukkenlabs/bukken/internal/server/endpoints"
)

var serverURL string

func init() {
	// Build the api command tree from the endpoint registry so the CLI and
	// the HTTP surface stay in sync.
	registry := api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{}) {
		registry.Register(ep)
	}

	apiCmd := registry.BuildCommands(func() string { return serverURL })
	apiCmd.PersistentFlags().StringVar(&serverURL, "server", "http://127.0.0.1:8080", "Server URL")

	rootCmd.AddCommand(apiCmd)
}
