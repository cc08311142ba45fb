package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/repository/dao"
)

var (
	ErrMenuNotFound     = dao.ErrMenuNotFound
	ErrDiscountNotFound = dao.ErrDiscountNotFound
)

type MenuDAO interface {
	Insert(ctx context.Context, menu dao.Menu) (dao.Menu, error)
	FindByID(ctx context.Context, id uint, at time.Time) (dao.Menu, error)
	FindByStandID(ctx context.Context, standID uint, at time.Time) ([]dao.Menu, error)
	Update(ctx context.Context, menu dao.Menu) (dao.Menu, error)
	Delete(ctx context.Context, id uint) error
}

type MenuRepository struct {
	dao MenuDAO
}

func NewMenuRepository(dao MenuDAO) *MenuRepository {
	return &MenuRepository{
		dao: dao,
	}
}

func (r *MenuRepository) Create(ctx context.Context, menu domain.Menu) (domain.Menu, error) {
	created, err := r.dao.Insert(ctx, menuDomainToDao(menu))
	if err != nil {
		return domain.Menu{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return menuDaoToDomain(created), nil
}

// FindByID returns the menu with the discounts active at the given instant.
func (r *MenuRepository) FindByID(ctx context.Context, id uint, at time.Time) (domain.Menu, error) {
	found, err := r.dao.FindByID(ctx, id, at)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return menuDaoToDomain(found), nil
}

func (r *MenuRepository) FindByStandID(ctx context.Context, standID uint, at time.Time) ([]domain.Menu, error) {
	found, err := r.dao.FindByStandID(ctx, standID, at)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStandID -> %w", err)
	}

	menus := make([]domain.Menu, 0, len(found))
	for _, m := range found {
		menus = append(menus, menuDaoToDomain(m))
	}

	return menus, nil
}

func (r *MenuRepository) Update(ctx context.Context, menu domain.Menu) (domain.Menu, error) {
	updated, err := r.dao.Update(ctx, menuDomainToDao(menu))
	if err != nil {
		return domain.Menu{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return menuDaoToDomain(updated), nil
}

func (r *MenuRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

type DiscountDAO interface {
	Insert(ctx context.Context, discount dao.Discount, menuIDs []uint) (dao.Discount, error)
	FindByID(ctx context.Context, id uint) (dao.Discount, error)
	FindAll(ctx context.Context) ([]dao.Discount, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]dao.Discount, error)
	Update(ctx context.Context, discount dao.Discount, menuIDs []uint) (dao.Discount, error)
	Delete(ctx context.Context, id uint) error
}

type DiscountRepository struct {
	dao DiscountDAO
}

func NewDiscountRepository(dao DiscountDAO) *DiscountRepository {
	return &DiscountRepository{
		dao: dao,
	}
}

func (r *DiscountRepository) Create(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	created, err := r.dao.Insert(ctx, discountDomainToDao(discount), discount.MenuIDs)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return discountDaoToDomain(created), nil
}

func (r *DiscountRepository) FindByID(ctx context.Context, id uint) (domain.Discount, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return discountDaoToDomain(found), nil
}

func (r *DiscountRepository) FindAll(ctx context.Context) ([]domain.Discount, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return discountsDaoToDomain(found), nil
}

func (r *DiscountRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Discount, error) {
	found, err := r.dao.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOwnerID -> %w", err)
	}

	return discountsDaoToDomain(found), nil
}

// Update replaces the discount fields; a nil MenuIDs keeps the linked menus.
func (r *DiscountRepository) Update(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	updated, err := r.dao.Update(ctx, discountDomainToDao(discount), discount.MenuIDs)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return discountDaoToDomain(updated), nil
}

func (r *DiscountRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func menuDomainToDao(menu domain.Menu) dao.Menu {
	return dao.Menu{
		ID:          menu.ID,
		StandID:     menu.StandID,
		Name:        menu.Name,
		Description: menu.Description,
		Price:       menu.Price,
		Type:        string(menu.Type),
		Photo:       menu.Photo,
	}
}

func menuDaoToDomain(menu dao.Menu) domain.Menu {
	var discounts []domain.Discount
	for _, d := range menu.Discounts {
		discounts = append(discounts, discountDaoToDomain(d))
	}

	return domain.Menu{
		ID:          menu.ID,
		StandID:     menu.StandID,
		Name:        menu.Name,
		Description: menu.Description,
		Price:       menu.Price,
		Type:        domain.MenuType(menu.Type),
		Photo:       menu.Photo,
		Discounts:   discounts,
		CreatedAt:   menu.CreatedAt,
		UpdatedAt:   menu.UpdatedAt,
	}
}

func discountDomainToDao(discount domain.Discount) dao.Discount {
	return dao.Discount{
		ID:         discount.ID,
		Name:       discount.Name,
		Percentage: discount.Percentage,
		StartDate:  discount.StartDate,
		EndDate:    discount.EndDate,
		StandID:    discount.StandID,
	}
}

func discountDaoToDomain(discount dao.Discount) domain.Discount {
	var menuIDs []uint
	for _, m := range discount.Menus {
		menuIDs = append(menuIDs, m.ID)
	}

	return domain.Discount{
		ID:         discount.ID,
		Name:       discount.Name,
		Percentage: discount.Percentage,
		StartDate:  discount.StartDate,
		EndDate:    discount.EndDate,
		StandID:    discount.StandID,
		MenuIDs:    menuIDs,
		CreatedAt:  discount.CreatedAt,
		UpdatedAt:  discount.UpdatedAt,
	}
}

func discountsDaoToDomain(found []dao.Discount) []domain.Discount {
	discounts := make([]domain.Discount, 0, len(found))
	for _, d := range found {
		discounts = append(discounts, discountDaoToDomain(d))
	}

	return discounts
}
