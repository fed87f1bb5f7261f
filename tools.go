//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by go:generate and local workflows:
// - github.com/matryer/moq (test doubles in *_mock_test.go)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migration authoring; cmd/migrate applies them)
