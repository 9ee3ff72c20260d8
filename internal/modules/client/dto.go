package client

import "furnex/internal/domain"

// ClientUpdateForm replaces the profile's contact data wholesale.
type ClientUpdateForm struct {
	Name     string `json:"name" binding:"required,max=64"`
	Surname  string `json:"surname" binding:"required,max=64"`
	Street   string `json:"street" binding:"required,max=128"`
	City     string `json:"city" binding:"required,max=64"`
	PostCode string `json:"post_code" binding:"required,max=16"`
	Phone    string `json:"phone" binding:"required,max=32"`
}

type ClientResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Street   string `json:"street"`
	City     string `json:"city"`
	PostCode string `json:"post_code"`
	Phone    string `json:"phone"`
}

func ToClientResponse(c domain.Client, email string) ClientResponse {
	return ClientResponse{
		ID:       c.ID,
		Email:    email,
		Name:     c.Name,
		Surname:  c.Surname,
		Street:   c.Street,
		City:     c.City,
		PostCode: c.PostCode,
		Phone:    c.Phone,
	}
}
