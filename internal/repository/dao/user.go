package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUsernameExists  = errors.New("username already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrStudentExists   = errors.New("student profile already exists")
	ErrStudentNotFound = errors.New("student not found")
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Role     string `gorm:"not null"` // "STUDENT", "ADMIN_STAND" or "SUPERADMIN"

	Student *Student `gorm:"foreignKey:UserID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Student struct {
	ID      uint      `gorm:"primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name    string    `gorm:"not null"`
	Address string    `gorm:"not null"`
	Phone   string    `gorm:"not null"`
	Photo   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Omit("Student").Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_users_username") {
			return User{}, ErrUsernameExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uuid.UUID) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByUsername(ctx context.Context, username string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) InsertStudent(ctx context.Context, student Student) (Student, error) {
	result := d.db.WithContext(ctx).Create(&student)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_students_user_id") {
			return Student{}, ErrStudentExists
		}

		return Student{}, result.Error
	}

	return student, nil
}

func (d *UserDAO) FindStudentByUserID(ctx context.Context, userID uuid.UUID) (Student, error) {
	var student Student

	result := d.db.WithContext(ctx).First(&student, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Student{}, ErrStudentNotFound
		}

		return Student{}, result.Error
	}

	return student, nil
}

func (d *UserDAO) UpdateStudent(ctx context.Context, student Student) (Student, error) {
	result := d.db.WithContext(ctx).
		Model(&Student{ID: student.ID}).
		Updates(map[string]interface{}{
			"name":    student.Name,
			"address": student.Address,
			"phone":   student.Phone,
			"photo":   student.Photo,
		})
	if result.Error != nil {
		return Student{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Student{}, ErrStudentNotFound
	}

	return d.FindStudentByUserID(ctx, student.UserID)
}

func (d *UserDAO) FindStudents(ctx context.Context) ([]Student, error) {
	var students []Student

	result := d.db.WithContext(ctx).Order("id").Find(&students)
	if result.Error != nil {
		return nil, result.Error
	}

	return students, nil
}
