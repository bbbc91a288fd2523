package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Msds struct {
	ID           uint64 `json:"id"`
	ChemicalName string `json:"chemicalName"`
	Category     string `json:"category"`

	Manufacturer null.String `json:"manufacturer"`
	IssuedDate   null.String `json:"issuedDate"`
	ReviewDate   null.String `json:"reviewDate"`
	FilePath     null.String `json:"filePath"`

	Notes null.String `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
