//go:build mage

// Package main provides build targets for the gamedb project using Mage.
//
// Usage:
//
//	mage build        Compile gamedb binary to bin/
//	mage test:all     Vet, then run all tests
//	mage test:unit    Run tests only
//	mage test:race    Run tests with the race detector
//	mage test:cover   Run tests with a coverage summary
//	mage vet          Run go vet
//	mage lint         Check gofmt and run golangci-lint
//	mage clean        Remove build artifacts
//	mage install      Install gamedb to GOPATH/bin
package main

// Default target when mage is run without arguments.
var Default = Build
