//go:build tools

package main

// Pin CLI tools used by go:generate.
import (
	_ "github.com/swaggo/swag"
)
