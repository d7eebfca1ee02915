//go:build mage

// Package main provides build targets for the chocodye project using Mage.
//
// Usage:
//
//	mage build       Compile chocodye binary to bin/
//	mage generate    Regenerate enum String methods
//	mage test        Run all tests
//	mage testShort   Run tests without the exhaustive catalog checks
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install chocodye to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "chocodye"
	binaryDir  = "bin"
	cmdDir     = "./cmd/chocodye"
)

// Generate runs go generate, which calls stringer through the go.mod tool directive.
func Generate() error {
	return sh.RunV("go", "generate", "./...")
}

// Build compiles the chocodye binary to bin/.
func Build() error {
	mg.Deps(Generate)
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestShort skips the exhaustive search over every pair of default dyes.
func TestShort() error {
	return sh.RunV("go", "test", "-short", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install installs chocodye to GOPATH/bin.
func Install() error {
	mg.Deps(Generate)
	return sh.RunV("go", "install", cmdDir)
}
