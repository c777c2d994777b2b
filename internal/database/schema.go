package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
)

//go:embed schema.surql
var schema string

// Schema returns the SurrealQL definitions for the tables the stores use.
func Schema() string {
	return schema
}

// ApplySchema defines the tables, fields and indexes. Every statement is
// idempotent, so it is safe to run on each deploy.
func ApplySchema(ctx context.Context, db *surrealdb.DB) error {
	if err := Execute(ctx, db, schema, nil); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
