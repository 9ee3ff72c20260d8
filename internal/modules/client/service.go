package client

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"furnex/internal/repository"
)

type Service struct {
	clients *repository.ClientRepository
	users   *repository.UserRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		clients: repository.NewClientRepository(db),
		users:   repository.NewUserRepository(db),
	}
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*ClientResponse, error) {
	profile, err := s.clients.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := ToClientResponse(*profile, user.Email)
	return &resp, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req ClientUpdateForm) (*ClientResponse, error) {
	profile, err := s.clients.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	profile.Name = req.Name
	profile.Surname = req.Surname
	profile.Street = req.Street
	profile.City = req.City
	profile.PostCode = req.PostCode
	profile.Phone = req.Phone

	if err := s.clients.Update(ctx, profile); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}
