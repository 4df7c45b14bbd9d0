//go:build mage

package main

import (
	"fmt"
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when no target is specified
var Default = Test

// Test runs the full unit test suite.
func Test() error {
	fmt.Println("🧪 Running unit tests...")
	return sh.RunV("go", "test", "-v", "./...")
}

// Bench runs every benchmark in the module.
func Bench() error {
	fmt.Println("⚡ Running benchmarks...")
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./...")
}

// Build compiles the demo CLI.
func Build() error {
	fmt.Println("🔨 Building demo...")
	return sh.RunV("go", "build", "-o", "bin/demo", "./cmd/demo")
}

// Clean removes generated files.
func Clean() error {
	fmt.Println("🧹 Cleaning generated files...")
	return sh.Rm("bin")
}

// Install downloads module dependencies.
func Install() error {
	fmt.Println("📦 Installing dependencies...")
	return sh.RunV("go", "mod", "download")
}

// Tidy tidies go.mod/go.sum.
func Tidy() error {
	fmt.Println("🔧 Tidying go.mod...")
	return sh.RunV("go", "mod", "tidy")
}

// Lint runs golangci-lint, if it's installed.
func Lint() error {
	fmt.Println("🔍 Running linter...")
	if !commandExists("golangci-lint") {
		fmt.Println("⚠️  golangci-lint not found, skipping...")
		return nil
	}
	return sh.RunV("golangci-lint", "run")
}

// Vet runs go vet.
func Vet() error {
	fmt.Println("🔎 Running go vet...")
	return sh.RunV("go", "vet", "./...")
}

// Dev re-runs the test suite on every source change (requires watchexec).
func Dev() error {
	fmt.Println("🚀 Starting development mode...")
	if !commandExists("watchexec") {
		fmt.Println("ℹ️  Install watchexec for auto-testing: brew install watchexec")
		return fmt.Errorf("watchexec not found")
	}
	return sh.RunV("watchexec", "-e", "go", "-i", "bin/", "--", "mage", "test")
}

// Release runs the full pre-release pipeline: clean, install, tidy, lint,
// test, build.
func Release() error {
	fmt.Println("🚢 Preparing release...")
	mg.SerialDeps(Clean, Install, Tidy, Lint, Test, Build)
	fmt.Println("🎉 Release ready!")
	return nil
}

// CI runs the continuous-integration pipeline.
func CI() error {
	fmt.Println("🔄 Running CI pipeline...")
	mg.SerialDeps(Install, Vet, Lint, Test)
	return nil
}

// commandExists reports whether cmd is on the PATH.
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
