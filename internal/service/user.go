package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/repository"
)

var (
	ErrUserNotFound    = repository.ErrUserNotFound
	ErrStudentNotFound = repository.ErrStudentNotFound
	ErrStudentExists   = repository.ErrStudentExists
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error)
	FindStudentByUserID(ctx context.Context, userID uuid.UUID) (domain.Student, error)
	UpdateStudent(ctx context.Context, student domain.Student) (domain.Student, error)
	FindStudents(ctx context.Context) ([]domain.Student, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// CreateStudent attaches a profile to the calling student account.
func (s *UserService) CreateStudent(ctx context.Context, userID uuid.UUID, student domain.Student) (domain.Student, error) {
	student.UserID = userID

	created, err := s.repo.CreateStudent(ctx, student)
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.CreateStudent -> %w", err)
	}

	return created, nil
}

func (s *UserService) GetStudentByUserID(ctx context.Context, userID uuid.UUID) (domain.Student, error) {
	student, err := s.repo.FindStudentByUserID(ctx, userID)
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.FindStudentByUserID -> %w", err)
	}

	return student, nil
}

func (s *UserService) UpdateStudent(ctx context.Context, userID uuid.UUID, update domain.StudentUpdate) (domain.Student, error) {
	student, err := s.repo.FindStudentByUserID(ctx, userID)
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.FindStudentByUserID -> %w", err)
	}

	updated, err := s.repo.UpdateStudent(ctx, update.Apply(student))
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.UpdateStudent -> %w", err)
	}

	return updated, nil
}

func (s *UserService) ListStudents(ctx context.Context) ([]domain.Student, error) {
	students, err := s.repo.FindStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindStudents -> %w", err)
	}

	return students, nil
}
