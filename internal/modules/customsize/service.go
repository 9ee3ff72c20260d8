package customsize

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"furnex/internal/domain"
	"furnex/internal/repository"
)

type Service struct {
	forms   *repository.CustomSizeRepository
	clients *repository.ClientRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		forms:   repository.NewCustomSizeRepository(db),
		clients: repository.NewClientRepository(db),
	}
}

// Add files a new pending request on behalf of the authenticated user's
// client profile.
func (s *Service) Add(ctx context.Context, userID int64, req CustomSizeAddForm) (*CustomSizeFormResponse, error) {
	client, err := s.clients.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	form := domain.CustomSizeForm{
		ClientID:    client.ID,
		Width:       req.Width,
		Height:      req.Height,
		Depth:       req.Depth,
		Description: req.Description,
		Status:      domain.CustomSizePending,
	}
	if err := s.forms.Create(ctx, &form); err != nil {
		return nil, err
	}

	resp := ToCustomSizeFormResponse(form)
	return &resp, nil
}

func (s *Service) ListForClient(ctx context.Context, userID int64) ([]CustomSizeFormResponse, error) {
	client, err := s.clients.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	forms, err := s.forms.GetByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	return toResponses(forms), nil
}

// GetForClient scopes the lookup to the caller's own forms; someone else's
// form id reads as not found.
func (s *Service) GetForClient(ctx context.Context, userID, formID int64) (*CustomSizeFormResponse, error) {
	client, err := s.clients.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	form, err := s.forms.GetByIDForClient(ctx, formID, client.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	resp := ToCustomSizeFormResponse(*form)
	return &resp, nil
}

func (s *Service) ListAll(ctx context.Context) ([]CustomSizeFormResponse, error) {
	forms, err := s.forms.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(forms), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*CustomSizeFormResponse, error) {
	form, err := s.forms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	resp := ToCustomSizeFormResponse(*form)
	return &resp, nil
}

// Approve moves a pending form to approved and records the quoted price.
// Approving twice is a conflict.
func (s *Service) Approve(ctx context.Context, req ApproveForm) (*CustomSizeFormResponse, error) {
	form, err := s.forms.GetByID(ctx, req.FormID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if form.IsApproved() {
		return nil, ErrAlreadyApproved
	}

	form.Status = domain.CustomSizeApproved
	form.Price = &req.Price
	if err := s.forms.Update(ctx, form); err != nil {
		return nil, err
	}

	resp := ToCustomSizeFormResponse(*form)
	return &resp, nil
}

func toResponses(forms []domain.CustomSizeForm) []CustomSizeFormResponse {
	out := make([]CustomSizeFormResponse, 0, len(forms))
	for _, f := range forms {
		out = append(out, ToCustomSizeFormResponse(f))
	}
	return out
}
