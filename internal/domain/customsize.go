package domain

import "time"

type CustomSizeStatus string

const (
	CustomSizePending  CustomSizeStatus = "pending"
	CustomSizeApproved CustomSizeStatus = "approved"
)

// CustomSizeForm is a client request for non-standard dimensions. A worker
// approves it and sets the price; approved is terminal.
type CustomSizeForm struct {
	ID          int64            `json:"id"`
	ClientID    int64            `json:"client_id" gorm:"index"`
	Width       float64          `json:"width" validate:"gt=0"`
	Height      float64          `json:"height" validate:"gt=0"`
	Depth       float64          `json:"depth" validate:"gt=0"`
	Description string           `json:"description,omitempty" gorm:"type:text"`
	Status      CustomSizeStatus `json:"status"`
	Price       *float64         `json:"price,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (f *CustomSizeForm) IsApproved() bool {
	return f.Status == CustomSizeApproved
}
