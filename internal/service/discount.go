package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/authz"
	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/repository"
)

var (
	ErrDiscountNotFound  = repository.ErrDiscountNotFound
	ErrInvalidDateRange  = errors.New("start_date must not be after end_date")
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")
)

type DiscountRepository interface {
	Create(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	FindByID(ctx context.Context, id uint) (domain.Discount, error)
	FindAll(ctx context.Context) ([]domain.Discount, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Discount, error)
	Update(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	Delete(ctx context.Context, id uint) error
}

type MenuFinder interface {
	FindByID(ctx context.Context, id uint, at time.Time) (domain.Menu, error)
}

type DiscountService struct {
	discounts DiscountRepository
	stands    StandFinder
	menus     MenuFinder
	now       func() time.Time
}

func NewDiscountService(discounts DiscountRepository, stands StandFinder, menus MenuFinder) *DiscountService {
	return &DiscountService{
		discounts: discounts,
		stands:    stands,
		menus:     menus,
		now:       time.Now,
	}
}

// CreateDiscount stores a discount for the acting stand and links it to menus
// of that stand.
func (s *DiscountService) CreateDiscount(
	ctx context.Context, p domain.Principal, discount domain.Discount,
) (domain.Discount, error) {
	stand, err := actingStand(ctx, s.stands, p, discount.StandID)
	if err != nil {
		return domain.Discount{}, err
	}
	discount.StandID = stand.ID

	if err = s.validate(ctx, discount); err != nil {
		return domain.Discount{}, err
	}

	created, err := s.discounts.Create(ctx, discount)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("s.discounts.Create -> %w", err)
	}

	return created, nil
}

func (s *DiscountService) GetDiscounts(ctx context.Context) ([]domain.Discount, error) {
	discounts, err := s.discounts.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.discounts.FindAll -> %w", err)
	}

	return discounts, nil
}

func (s *DiscountService) GetOwnDiscounts(ctx context.Context, p domain.Principal) ([]domain.Discount, error) {
	if _, err := s.stands.FindByOwnerID(ctx, p.ID); err != nil {
		return nil, fmt.Errorf("s.stands.FindByOwnerID -> %w", err)
	}

	discounts, err := s.discounts.FindByOwnerID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("s.discounts.FindByOwnerID -> %w", err)
	}

	return discounts, nil
}

func (s *DiscountService) GetDiscount(ctx context.Context, p domain.Principal, id uint) (domain.Discount, error) {
	return s.authorizedDiscount(ctx, p, id)
}

func (s *DiscountService) UpdateDiscount(
	ctx context.Context, p domain.Principal, id uint, update domain.DiscountUpdate,
) (domain.Discount, error) {
	discount, err := s.authorizedDiscount(ctx, p, id)
	if err != nil {
		return domain.Discount{}, err
	}

	discount = update.Apply(discount)
	if err = s.validate(ctx, discount); err != nil {
		return domain.Discount{}, err
	}

	updated, err := s.discounts.Update(ctx, discount)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("s.discounts.Update -> %w", err)
	}

	return updated, nil
}

func (s *DiscountService) DeleteDiscount(ctx context.Context, p domain.Principal, id uint) error {
	if _, err := s.authorizedDiscount(ctx, p, id); err != nil {
		return err
	}

	if err := s.discounts.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.discounts.Delete -> %w", err)
	}

	return nil
}

func (s *DiscountService) authorizedDiscount(ctx context.Context, p domain.Principal, id uint) (domain.Discount, error) {
	discount, err := s.discounts.FindByID(ctx, id)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("s.discounts.FindByID -> %w", err)
	}

	stand, err := s.stands.FindByID(ctx, discount.StandID)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("s.stands.FindByID -> %w", err)
	}

	if err = authz.Authorize(p, authz.OwnedByOrElevated(stand.OwnerID)); err != nil {
		return domain.Discount{}, err
	}

	return discount, nil
}

// validate checks the discount window and that every linked menu belongs to
// the discount's stand.
func (s *DiscountService) validate(ctx context.Context, discount domain.Discount) error {
	if discount.Percentage < 0 || discount.Percentage > 100 {
		return ErrInvalidPercentage
	}
	if discount.StartDate.After(discount.EndDate) {
		return ErrInvalidDateRange
	}

	now := s.now()
	for _, menuID := range discount.MenuIDs {
		menu, err := s.menus.FindByID(ctx, menuID, now)
		if errors.Is(err, ErrMenuNotFound) {
			return fmt.Errorf("menu with id %d: %w", menuID, ErrMenuNotFound)
		}
		if err != nil {
			return fmt.Errorf("s.menus.FindByID -> %w", err)
		}
		if menu.StandID != discount.StandID {
			return fmt.Errorf("menu with id %d: %w", menuID, ErrMenuNotInStand)
		}
	}

	return nil
}
