package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/repository"
)

type mockOrderTx struct {
	findStandFn func(ctx context.Context, id uint) (domain.Stand, error)
	findMenuFn  func(ctx context.Context, id uint, at time.Time) (domain.Menu, error)
	createFn    func(ctx context.Context, order domain.Order) (domain.Order, error)
}

func (m *mockOrderTx) FindStand(ctx context.Context, id uint) (domain.Stand, error) {
	return m.findStandFn(ctx, id)
}
func (m *mockOrderTx) FindMenu(ctx context.Context, id uint, at time.Time) (domain.Menu, error) {
	return m.findMenuFn(ctx, id, at)
}
func (m *mockOrderTx) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	return m.createFn(ctx, order)
}

type mockOrderRepo struct {
	tx              *mockOrderTx
	findStandFn     func(ctx context.Context, id uint) (domain.Stand, error)
	findByIDFn      func(ctx context.Context, id uint) (domain.Order, error)
	findVisibleToFn func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Order, error)
	updateStatusFn  func(ctx context.Context, id uint, status domain.OrderStatus) (domain.Order, error)
	deleteFn        func(ctx context.Context, id uint) error
	findByStandFn   func(ctx context.Context, standID uint, from, to time.Time) ([]domain.Order, error)
	topSellingFn    func(ctx context.Context, standID uint, from, to time.Time, limit int) ([]domain.MenuSales, error)
}

func (m *mockOrderRepo) InTx(_ context.Context, fn func(tx repository.OrderTx) error) error {
	return fn(m.tx)
}
func (m *mockOrderRepo) FindStand(ctx context.Context, id uint) (domain.Stand, error) {
	return m.findStandFn(ctx, id)
}
func (m *mockOrderRepo) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockOrderRepo) FindVisibleTo(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Order, error) {
	return m.findVisibleToFn(ctx, userID, from, to)
}
func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) (domain.Order, error) {
	return m.updateStatusFn(ctx, id, status)
}
func (m *mockOrderRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockOrderRepo) FindByStand(ctx context.Context, standID uint, from, to time.Time) ([]domain.Order, error) {
	return m.findByStandFn(ctx, standID, from, to)
}
func (m *mockOrderRepo) TopSellingMenus(ctx context.Context, standID uint, from, to time.Time, limit int) ([]domain.MenuSales, error) {
	return m.topSellingFn(ctx, standID, from, to, limit)
}

type mockStandRepo struct {
	createFn        func(ctx context.Context, stand domain.Stand) (domain.Stand, error)
	findByIDFn      func(ctx context.Context, id uint) (domain.Stand, error)
	findByOwnerIDFn func(ctx context.Context, ownerID uuid.UUID) (domain.Stand, error)
	findAllFn       func(ctx context.Context) ([]domain.Stand, error)
	updateFn        func(ctx context.Context, stand domain.Stand) (domain.Stand, error)
	deleteFn        func(ctx context.Context, id uint) error
}

func (m *mockStandRepo) Create(ctx context.Context, stand domain.Stand) (domain.Stand, error) {
	return m.createFn(ctx, stand)
}
func (m *mockStandRepo) FindByID(ctx context.Context, id uint) (domain.Stand, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockStandRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (domain.Stand, error) {
	return m.findByOwnerIDFn(ctx, ownerID)
}
func (m *mockStandRepo) FindAll(ctx context.Context) ([]domain.Stand, error) {
	return m.findAllFn(ctx)
}
func (m *mockStandRepo) Update(ctx context.Context, stand domain.Stand) (domain.Stand, error) {
	return m.updateFn(ctx, stand)
}
func (m *mockStandRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockMenuRepo struct {
	createFn        func(ctx context.Context, menu domain.Menu) (domain.Menu, error)
	findByIDFn      func(ctx context.Context, id uint, at time.Time) (domain.Menu, error)
	findByStandIDFn func(ctx context.Context, standID uint, at time.Time) ([]domain.Menu, error)
	updateFn        func(ctx context.Context, menu domain.Menu) (domain.Menu, error)
	deleteFn        func(ctx context.Context, id uint) error
}

func (m *mockMenuRepo) Create(ctx context.Context, menu domain.Menu) (domain.Menu, error) {
	return m.createFn(ctx, menu)
}
func (m *mockMenuRepo) FindByID(ctx context.Context, id uint, at time.Time) (domain.Menu, error) {
	return m.findByIDFn(ctx, id, at)
}
func (m *mockMenuRepo) FindByStandID(ctx context.Context, standID uint, at time.Time) ([]domain.Menu, error) {
	return m.findByStandIDFn(ctx, standID, at)
}
func (m *mockMenuRepo) Update(ctx context.Context, menu domain.Menu) (domain.Menu, error) {
	return m.updateFn(ctx, menu)
}
func (m *mockMenuRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockDiscountRepo struct {
	createFn        func(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	findByIDFn      func(ctx context.Context, id uint) (domain.Discount, error)
	findAllFn       func(ctx context.Context) ([]domain.Discount, error)
	findByOwnerIDFn func(ctx context.Context, ownerID uuid.UUID) ([]domain.Discount, error)
	updateFn        func(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	deleteFn        func(ctx context.Context, id uint) error
}

func (m *mockDiscountRepo) Create(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	return m.createFn(ctx, discount)
}
func (m *mockDiscountRepo) FindByID(ctx context.Context, id uint) (domain.Discount, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockDiscountRepo) FindAll(ctx context.Context) ([]domain.Discount, error) {
	return m.findAllFn(ctx)
}
func (m *mockDiscountRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Discount, error) {
	return m.findByOwnerIDFn(ctx, ownerID)
}
func (m *mockDiscountRepo) Update(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	return m.updateFn(ctx, discount)
}
func (m *mockDiscountRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockUserRepo struct {
	createFn              func(ctx context.Context, user domain.User) (domain.User, error)
	findByIDFn            func(ctx context.Context, id uuid.UUID) (domain.User, error)
	findByUsernameFn      func(ctx context.Context, username string) (domain.User, error)
	createStudentFn       func(ctx context.Context, student domain.Student) (domain.Student, error)
	findStudentByUserIDFn func(ctx context.Context, userID uuid.UUID) (domain.Student, error)
	updateStudentFn       func(ctx context.Context, student domain.Student) (domain.Student, error)
	findStudentsFn        func(ctx context.Context) ([]domain.Student, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return m.findByUsernameFn(ctx, username)
}
func (m *mockUserRepo) CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error) {
	return m.createStudentFn(ctx, student)
}
func (m *mockUserRepo) FindStudentByUserID(ctx context.Context, userID uuid.UUID) (domain.Student, error) {
	return m.findStudentByUserIDFn(ctx, userID)
}
func (m *mockUserRepo) UpdateStudent(ctx context.Context, student domain.Student) (domain.Student, error) {
	return m.updateStudentFn(ctx, student)
}
func (m *mockUserRepo) FindStudents(ctx context.Context) ([]domain.Student, error) {
	return m.findStudentsFn(ctx)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
