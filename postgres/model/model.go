// Package model declares the relational entities shared by every Quill
// service. The structs map 1:1 onto the tables created by the SQL migrations
// in the postgres package; GORM tags mirror the migration DDL (types,
// defaults, indexes, cascade rules) so the mapping layer and the schema never
// drift apart.
//
// The package is declarative: no queries live here, and no business rules
// beyond field-level shape (caps such as "five categories per post" belong to
// the content service, not the schema).
package model

import (
	"github.com/oklog/ulid/v2"
)

// NewID returns a fresh ULID string. All relational primary keys are ULIDs:
// lexicographically sortable by creation time, URL safe, and generated
// client-side so inserts never round-trip for an identifier. Safe for
// concurrent use.
func NewID() string {
	return ulid.Make().String()
}

// IDLen is the storage width of a ULID primary key column.
const IDLen = 26
