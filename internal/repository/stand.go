package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/repository/dao"
)

var (
	ErrStandNotFound      = dao.ErrStandNotFound
	ErrStandAlreadyExists = dao.ErrStandAlreadyExists
)

type StandDAO interface {
	Insert(ctx context.Context, stand dao.Stand) (dao.Stand, error)
	FindByID(ctx context.Context, id uint) (dao.Stand, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (dao.Stand, error)
	FindAll(ctx context.Context) ([]dao.Stand, error)
	Update(ctx context.Context, stand dao.Stand) (dao.Stand, error)
	Delete(ctx context.Context, id uint) error
}

type StandRepository struct {
	dao StandDAO
}

func NewStandRepository(dao StandDAO) *StandRepository {
	return &StandRepository{
		dao: dao,
	}
}

func (r *StandRepository) Create(ctx context.Context, stand domain.Stand) (domain.Stand, error) {
	created, err := r.dao.Insert(ctx, standDomainToDao(stand))
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return standDaoToDomain(created), nil
}

func (r *StandRepository) FindByID(ctx context.Context, id uint) (domain.Stand, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return standDaoToDomain(found), nil
}

func (r *StandRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (domain.Stand, error) {
	found, err := r.dao.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.dao.FindByOwnerID -> %w", err)
	}

	return standDaoToDomain(found), nil
}

func (r *StandRepository) FindAll(ctx context.Context) ([]domain.Stand, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	stands := make([]domain.Stand, 0, len(found))
	for _, s := range found {
		stands = append(stands, standDaoToDomain(s))
	}

	return stands, nil
}

func (r *StandRepository) Update(ctx context.Context, stand domain.Stand) (domain.Stand, error) {
	updated, err := r.dao.Update(ctx, standDomainToDao(stand))
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return standDaoToDomain(updated), nil
}

func (r *StandRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func standDomainToDao(stand domain.Stand) dao.Stand {
	return dao.Stand{
		ID:        stand.ID,
		StandName: stand.StandName,
		OwnerName: stand.OwnerName,
		Phone:     stand.Phone,
		OwnerID:   stand.OwnerID,
	}
}

func standDaoToDomain(stand dao.Stand) domain.Stand {
	return domain.Stand{
		ID:        stand.ID,
		StandName: stand.StandName,
		OwnerName: stand.OwnerName,
		Phone:     stand.Phone,
		OwnerID:   stand.OwnerID,
		CreatedAt: stand.CreatedAt,
		UpdatedAt: stand.UpdatedAt,
	}
}
