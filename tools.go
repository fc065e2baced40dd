//go:build tools
// +build tools

package main

// Pins build-time tooling, see fakes/fakes.go.
import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
