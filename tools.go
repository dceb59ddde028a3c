//go:build tools

// Package tools pins the versions of the command line tools used to lint,
// migrate, document and benchmark the service. Run them with go run, e.g.
//
//	go run github.com/pressly/goose/v3/cmd/goose -dir migrations postgres "$DATABASE_URL" status
//	go run golang.org/x/perf/cmd/benchstat old.txt new.txt
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "golang.org/x/perf/cmd/benchstat"
)
