package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/authz"
	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/repository"
)

var (
	ErrStandNotFound      = repository.ErrStandNotFound
	ErrStandAlreadyExists = repository.ErrStandAlreadyExists
	ErrForbidden          = authz.ErrForbidden
)

type StandRepository interface {
	Create(ctx context.Context, stand domain.Stand) (domain.Stand, error)
	FindByID(ctx context.Context, id uint) (domain.Stand, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (domain.Stand, error)
	FindAll(ctx context.Context) ([]domain.Stand, error)
	Update(ctx context.Context, stand domain.Stand) (domain.Stand, error)
	Delete(ctx context.Context, id uint) error
}

type StandService struct {
	repo StandRepository
}

func NewStandService(repo StandRepository) *StandService {
	return &StandService{
		repo: repo,
	}
}

// CreateStand opens a stand owned by the calling ADMIN_STAND. An owner has at
// most one stand.
func (s *StandService) CreateStand(ctx context.Context, p domain.Principal, stand domain.Stand) (domain.Stand, error) {
	if err := authz.Authorize(p, authz.Roles(domain.RoleAdminStand)); err != nil {
		return domain.Stand{}, err
	}
	stand.OwnerID = p.ID

	created, err := s.repo.Create(ctx, stand)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *StandService) GetStands(ctx context.Context) ([]domain.Stand, error) {
	stands, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return stands, nil
}

func (s *StandService) GetStand(ctx context.Context, id uint) (domain.Stand, error) {
	stand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return stand, nil
}

func (s *StandService) GetStandByOwner(ctx context.Context, ownerID uuid.UUID) (domain.Stand, error) {
	stand, err := s.repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.FindByOwnerID -> %w", err)
	}

	return stand, nil
}

// UpdateStand changes a stand. Only its owner or a SUPERADMIN may do so.
func (s *StandService) UpdateStand(
	ctx context.Context, p domain.Principal, id uint, update domain.StandUpdate,
) (domain.Stand, error) {
	stand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = authz.Authorize(p, authz.OwnedByOrElevated(stand.OwnerID)); err != nil {
		return domain.Stand{}, err
	}

	updated, err := s.repo.Update(ctx, update.Apply(stand))
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *StandService) UpdateOwnStand(ctx context.Context, p domain.Principal, update domain.StandUpdate) (domain.Stand, error) {
	stand, err := s.repo.FindByOwnerID(ctx, p.ID)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.FindByOwnerID -> %w", err)
	}

	return s.UpdateStand(ctx, p, stand.ID, update)
}

// DeleteStand removes a stand with its menus, discounts and orders.
func (s *StandService) DeleteStand(ctx context.Context, p domain.Principal, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := authz.Authorize(p, authz.SuperadminOnly()); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
