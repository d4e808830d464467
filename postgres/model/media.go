package model

import (
	"fmt"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VariantName labels a derived rendition of an uploaded file.
type VariantName string

// VariantName values.
const (
	VariantThumb  VariantName = "thumb"
	VariantSmall  VariantName = "small"
	VariantMedium VariantName = "medium"
	VariantLarge  VariantName = "large"
)

// Valid reports whether v is one of the declared variant names.
func (v VariantName) Valid() bool {
	switch v {
	case VariantThumb, VariantSmall, VariantMedium, VariantLarge:
		return true
	}
	return false
}

// Media is uploaded-file metadata. The bytes themselves live in object
// storage under StorageKey; the uploader reference survives as NULL after
// user deletion while variants cascade away with their media row.
type Media struct {
	ID         string            `gorm:"primaryKey;type:char(26)" json:"id"`
	UploaderID *string           `gorm:"type:char(26);index:idx_media_uploader" json:"uploader_id,omitempty"`
	StorageKey string            `gorm:"size:255;not null;uniqueIndex:idx_media_storage_key" json:"storage_key"`
	Filename   string            `gorm:"size:255;not null" json:"filename"`
	MimeType   string            `gorm:"size:120;not null" json:"mime_type"`
	SizeBytes  int64             `gorm:"not null" json:"size_bytes"`
	Width      *int              `json:"width,omitempty"`
	Height     *int              `json:"height,omitempty"`
	AltText    string            `gorm:"size:500" json:"alt_text,omitempty"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Variants []MediaVariant `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
}

// TableName fixes the table name; "media" resists naive pluralization.
func (Media) TableName() string { return "media" }

// BeforeCreate assigns a ULID and a storage key when absent.
func (m *Media) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	if m.StorageKey == "" {
		m.StorageKey = NewStorageKey()
	}
	return nil
}

// MediaVariant is a derived rendition (resized image, transcoded clip) of a
// Media row, unique per (media_id, name).
type MediaVariant struct {
	ID         string      `gorm:"primaryKey;type:char(26)" json:"id"`
	MediaID    string      `gorm:"type:char(26);not null;uniqueIndex:idx_media_variants_media_name,priority:1" json:"media_id"`
	Name       VariantName `gorm:"size:20;not null;uniqueIndex:idx_media_variants_media_name,priority:2" json:"name"`
	StorageKey string      `gorm:"size:255;not null" json:"storage_key"`
	Width      *int        `json:"width,omitempty"`
	Height     *int        `json:"height,omitempty"`
	SizeBytes  int64       `gorm:"not null" json:"size_bytes"`
	CreatedAt  time.Time   `json:"created_at"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (MediaVariant) TableName() string { return "media_variants" }

// BeforeCreate assigns a ULID when the caller did not provide one.
func (v *MediaVariant) BeforeCreate(_ *gorm.DB) error {
	if v.ID == "" {
		v.ID = NewID()
	}
	return nil
}

// NewStorageKey returns a fresh object-storage key for an upload.
func NewStorageKey() string {
	return "uploads/" + uuid.NewString()
}

// DetectMime sniffs content and returns the canonical MIME type plus the
// extension it implies. The media service calls this at upload time instead
// of trusting the client-declared Content-Type.
func DetectMime(r io.Reader) (mime, ext string, err error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", "", fmt.Errorf("op=model.DetectMime: %w", err)
	}
	return mt.String(), mt.Extension(), nil
}

// MimeMatches reports whether the declared MIME type agrees with the sniffed
// content, accepting any ancestor of the detected type in the detection
// hierarchy (e.g. JSON content declared as text/plain passes).
func MimeMatches(r io.Reader, declared string) (bool, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return false, fmt.Errorf("op=model.MimeMatches: %w", err)
	}
	for cur := mt; cur != nil; cur = cur.Parent() {
		if cur.Is(declared) {
			return true, nil
		}
	}
	return false, nil
}
