package domain

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleWorker UserRole = "worker"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Client is the shop-facing profile linked 1:1 to a user account.
// Custom-size forms are owned through the client, not the user.
type Client struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id" gorm:"index"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Street    string    `json:"street,omitempty"`
	City      string    `json:"city,omitempty"`
	PostCode  string    `json:"post_code,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
