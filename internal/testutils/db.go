package testutils

import (
	"github.com/google/uuid"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// NewTestRecordID creates a new RecordID with a random id for testing purposes.
func NewTestRecordID(table string) *surrealmodels.RecordID {
	return RecordID(table, uuid.NewString())
}

// RecordID creates a RecordID with a fixed id.
func RecordID(table, id string) *surrealmodels.RecordID {
	rid := surrealmodels.NewRecordID(table, id)
	return &rid
}
