package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Chemical struct {
	ID       uint64 `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`

	Grade    null.String  `json:"grade"`
	CasNo    null.String  `json:"casNo"`
	Quantity null.Float64 `json:"quantity"`
	Unit     null.String  `json:"unit"`
	Location null.String  `json:"location"`

	ReceivedDate null.String `json:"receivedDate"`
	ExpiryDate   null.String `json:"expiryDate"`

	Notes null.String `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
