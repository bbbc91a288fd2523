package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Document struct {
	ID       uint64 `json:"id"`
	Code     string `json:"code"`
	Title    string `json:"title"`
	Category string `json:"category"`

	Version       null.String `json:"version"`
	EffectiveDate null.String `json:"effectiveDate"`
	ReviewDate    null.String `json:"reviewDate"`

	// Upload handling is out of scope; the path is stored as plain text.
	FilePath null.String `json:"filePath"`

	Notes null.String `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
