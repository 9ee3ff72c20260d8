package customsize

import (
	"time"

	"furnex/internal/domain"
)

type CustomSizeAddForm struct {
	Width       float64 `json:"width" binding:"required,gt=0"`
	Height      float64 `json:"height" binding:"required,gt=0"`
	Depth       float64 `json:"depth" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// ApproveForm is the worker's acceptance of a pending request.
type ApproveForm struct {
	FormID int64   `json:"form_id" binding:"required,gt=0"`
	Price  float64 `json:"price" binding:"required,gt=0"`
}

type CustomSizeFormResponse struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	Depth       float64   `json:"depth"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Price       *float64  `json:"price,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToCustomSizeFormResponse(f domain.CustomSizeForm) CustomSizeFormResponse {
	return CustomSizeFormResponse{
		ID:          f.ID,
		ClientID:    f.ClientID,
		Width:       f.Width,
		Height:      f.Height,
		Depth:       f.Depth,
		Description: f.Description,
		Status:      string(f.Status),
		Price:       f.Price,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
