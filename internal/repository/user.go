package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/repository/dao"
)

var (
	ErrUsernameExists  = dao.ErrUsernameExists
	ErrUserNotFound    = dao.ErrUserNotFound
	ErrStudentExists   = dao.ErrStudentExists
	ErrStudentNotFound = dao.ErrStudentNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.User, error)
	FindByUsername(ctx context.Context, username string) (dao.User, error)
	InsertStudent(ctx context.Context, student dao.Student) (dao.Student, error)
	FindStudentByUserID(ctx context.Context, userID uuid.UUID) (dao.Student, error)
	UpdateStudent(ctx context.Context, student dao.Student) (dao.Student, error)
	FindStudents(ctx context.Context) ([]dao.Student, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		ID:       user.ID,
		Username: user.Username,
		Password: user.Password,
		Role:     string(user.Role),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error) {
	created, err := r.dao.InsertStudent(ctx, r.studentDomainToDao(student))
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.dao.InsertStudent -> %w", err)
	}

	return r.studentDaoToDomain(created), nil
}

func (r *UserRepository) FindStudentByUserID(ctx context.Context, userID uuid.UUID) (domain.Student, error) {
	found, err := r.dao.FindStudentByUserID(ctx, userID)
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.dao.FindStudentByUserID -> %w", err)
	}

	return r.studentDaoToDomain(found), nil
}

func (r *UserRepository) UpdateStudent(ctx context.Context, student domain.Student) (domain.Student, error) {
	updated, err := r.dao.UpdateStudent(ctx, r.studentDomainToDao(student))
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.dao.UpdateStudent -> %w", err)
	}

	return r.studentDaoToDomain(updated), nil
}

func (r *UserRepository) FindStudents(ctx context.Context) ([]domain.Student, error) {
	found, err := r.dao.FindStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindStudents -> %w", err)
	}

	students := make([]domain.Student, 0, len(found))
	for _, s := range found {
		students = append(students, r.studentDaoToDomain(s))
	}

	return students, nil
}

func (r *UserRepository) daoToDomain(user dao.User) domain.User {
	return domain.User{
		ID:        user.ID,
		Username:  user.Username,
		Password:  user.Password,
		Role:      domain.Role(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func (r *UserRepository) studentDomainToDao(student domain.Student) dao.Student {
	return dao.Student{
		ID:      student.ID,
		UserID:  student.UserID,
		Name:    student.Name,
		Address: student.Address,
		Phone:   student.Phone,
		Photo:   student.Photo,
	}
}

func (r *UserRepository) studentDaoToDomain(student dao.Student) domain.Student {
	return domain.Student{
		ID:        student.ID,
		UserID:    student.UserID,
		Name:      student.Name,
		Address:   student.Address,
		Phone:     student.Phone,
		Photo:     student.Photo,
		CreatedAt: student.CreatedAt,
		UpdatedAt: student.UpdatedAt,
	}
}
