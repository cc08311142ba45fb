package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/canteen-api/internal/domain"
)

// At least 8 characters with a lowercase letter, an uppercase letter, a digit
// and a symbol.
const passwordRegexPattern = `^(?=.*[a-z])(?=.*[A-Z])(?=.*\d)(?=.*[^A-Za-z0-9]).{8,}$`

var (
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword = errors.New("the password must be at least 8 characters and contain a lowercase letter, an uppercase letter, a number and a symbol")
)

type SignupRequest struct {
	Username string      `json:"username" example:"budi"`
	Password string      `json:"password" example:"Rahasia#123"`
	Role     domain.Role `json:"role" example:"STUDENT" enums:"STUDENT,ADMIN_STAND"`
}

func (req *SignupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&req.Password, validation.Required, validation.By(strongPassword)),
		validation.Field(&req.Role, validation.Required, validation.In(domain.RoleStudent, domain.RoleAdminStand)),
	)
	if err != nil {
		return err
	}

	return nil
}

func (req *SignupRequest) ToUser() domain.User {
	return domain.User{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}
}

type SigninRequest struct {
	Username string `json:"username" example:"budi"`
	Password string `json:"password" example:"Rahasia#123"`
}

func (req *SigninRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

func strongPassword(value interface{}) error {
	password, _ := value.(string)

	ok, err := passwordExp.MatchString(password)
	if err != nil {
		return err
	}
	if !ok {
		return errInvalidPassword
	}

	return nil
}
