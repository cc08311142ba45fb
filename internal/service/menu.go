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
	ErrMenuNotFound  = repository.ErrMenuNotFound
	ErrStandRequired = errors.New("stand_id is required")
)

type MenuRepository interface {
	Create(ctx context.Context, menu domain.Menu) (domain.Menu, error)
	FindByID(ctx context.Context, id uint, at time.Time) (domain.Menu, error)
	FindByStandID(ctx context.Context, standID uint, at time.Time) ([]domain.Menu, error)
	Update(ctx context.Context, menu domain.Menu) (domain.Menu, error)
	Delete(ctx context.Context, id uint) error
}

type StandFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Stand, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (domain.Stand, error)
}

type MenuService struct {
	menus  MenuRepository
	stands StandFinder
	now    func() time.Time
}

func NewMenuService(menus MenuRepository, stands StandFinder) *MenuService {
	return &MenuService{
		menus:  menus,
		stands: stands,
		now:    time.Now,
	}
}

func (s *MenuService) CreateMenu(ctx context.Context, p domain.Principal, menu domain.Menu) (domain.Menu, error) {
	stand, err := actingStand(ctx, s.stands, p, menu.StandID)
	if err != nil {
		return domain.Menu{}, err
	}
	menu.StandID = stand.ID

	created, err := s.menus.Create(ctx, menu)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("s.menus.Create -> %w", err)
	}

	return created, nil
}

// GetMenu returns the menu with its best discount active now.
func (s *MenuService) GetMenu(ctx context.Context, id uint) (domain.Menu, error) {
	now := s.now()

	menu, err := s.menus.FindByID(ctx, id, now)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("s.menus.FindByID -> %w", err)
	}

	return menu.WithBestDiscount(now), nil
}

func (s *MenuService) GetStandMenus(ctx context.Context, standID uint) ([]domain.Menu, error) {
	if _, err := s.stands.FindByID(ctx, standID); err != nil {
		return nil, fmt.Errorf("s.stands.FindByID -> %w", err)
	}

	return s.standMenus(ctx, standID)
}

func (s *MenuService) GetOwnMenus(ctx context.Context, p domain.Principal) ([]domain.Menu, error) {
	stand, err := s.stands.FindByOwnerID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("s.stands.FindByOwnerID -> %w", err)
	}

	return s.standMenus(ctx, stand.ID)
}

func (s *MenuService) UpdateMenu(
	ctx context.Context, p domain.Principal, id uint, update domain.MenuUpdate,
) (domain.Menu, error) {
	menu, err := s.authorizedMenu(ctx, p, id)
	if err != nil {
		return domain.Menu{}, err
	}

	updated, err := s.menus.Update(ctx, update.Apply(menu))
	if err != nil {
		return domain.Menu{}, fmt.Errorf("s.menus.Update -> %w", err)
	}

	return updated, nil
}

// DeleteMenu removes the menu. Past order items keep their snapshot.
func (s *MenuService) DeleteMenu(ctx context.Context, p domain.Principal, id uint) error {
	if _, err := s.authorizedMenu(ctx, p, id); err != nil {
		return err
	}

	if err := s.menus.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.menus.Delete -> %w", err)
	}

	return nil
}

func (s *MenuService) standMenus(ctx context.Context, standID uint) ([]domain.Menu, error) {
	now := s.now()

	menus, err := s.menus.FindByStandID(ctx, standID, now)
	if err != nil {
		return nil, fmt.Errorf("s.menus.FindByStandID -> %w", err)
	}

	for i := range menus {
		menus[i] = menus[i].WithBestDiscount(now)
	}

	return menus, nil
}

func (s *MenuService) authorizedMenu(ctx context.Context, p domain.Principal, id uint) (domain.Menu, error) {
	menu, err := s.menus.FindByID(ctx, id, s.now())
	if err != nil {
		return domain.Menu{}, fmt.Errorf("s.menus.FindByID -> %w", err)
	}

	stand, err := s.stands.FindByID(ctx, menu.StandID)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("s.stands.FindByID -> %w", err)
	}

	if err = authz.Authorize(p, authz.OwnedByOrElevated(stand.OwnerID)); err != nil {
		return domain.Menu{}, err
	}

	return menu, nil
}

// actingStand resolves the stand a catalog write applies to. An ADMIN_STAND
// always acts on its own stand; a SUPERADMIN names the stand explicitly.
func actingStand(ctx context.Context, stands StandFinder, p domain.Principal, standID uint) (domain.Stand, error) {
	switch p.Role {
	case domain.RoleAdminStand:
		stand, err := stands.FindByOwnerID(ctx, p.ID)
		if err != nil {
			return domain.Stand{}, fmt.Errorf("stands.FindByOwnerID -> %w", err)
		}
		if standID != 0 && standID != stand.ID {
			return domain.Stand{}, ErrForbidden
		}
		return stand, nil

	case domain.RoleSuperadmin:
		if standID == 0 {
			return domain.Stand{}, ErrStandRequired
		}
		stand, err := stands.FindByID(ctx, standID)
		if err != nil {
			return domain.Stand{}, fmt.Errorf("stands.FindByID -> %w", err)
		}
		return stand, nil
	}

	return domain.Stand{}, ErrForbidden
}
