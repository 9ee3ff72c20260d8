package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"furnex/internal/domain"
	"furnex/internal/repository"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users   *repository.UserRepository
	clients *repository.ClientRepository
	jwt     jwtService
}

func NewService(users *repository.UserRepository, clients *repository.ClientRepository, jwt jwtService) *Service {
	return &Service{
		users:   users,
		clients: clients,
		jwt:     jwt,
	}
}

// Register creates a client account: the user row for authentication and the
// client profile row that custom-size forms are owned through.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	client := domain.Client{
		UserID:   user.ID,
		Name:     req.Name,
		Surname:  req.Surname,
		Street:   req.Street,
		City:     req.City,
		PostCode: req.PostCode,
		Phone:    req.Phone,
	}
	if err := s.clients.Create(ctx, &client); err != nil {
		return nil, err
	}

	return s.authResponse(&user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *Service) authResponse(user *domain.User) (*AuthResponse, error) {
	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token: token,
		User: UserPublic{
			ID:    user.ID,
			Role:  string(user.Role),
			Email: user.Email,
		},
	}, nil
}
