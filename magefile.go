//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the mdv binary
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/mdv", "./cmd/mdv")
}

// Install installs mdv into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/mdv")
}

// Test runs the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs vet and tests
func QA() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
