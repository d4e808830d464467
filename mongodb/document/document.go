// Package document defines the MongoDB document shapes: bson-tagged structs,
// their enumerated value sets, and a field-level Validate method per entity.
//
// References to relational rows (user IDs, post IDs) are plain strings with
// no cross-store enforcement; they are advisory. Validation here stops at
// field level (presence, enum membership, ranges). Anything smarter belongs
// to the service writing the document.
package document

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}
