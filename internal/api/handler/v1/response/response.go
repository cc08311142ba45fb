package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/canteen-api/internal/domain"
)

const (
	statusSuccess  = "success"
	statusError    = "error"
	successMessage = "Operation successful"
)

// OK is the envelope every successful JSON response is wrapped in.
type OK struct {
	Status     string      `json:"status" example:"success"`
	Message    string      `json:"message" example:"Operation successful"`
	StatusCode int         `json:"statusCode" example:"200"`
	Data       interface{} `json:"data"`
}

func RenderOK(ctx *gin.Context, statusCode int, data interface{}) {
	ctx.JSON(statusCode, OK{
		Status:     statusSuccess,
		Message:    successMessage,
		StatusCode: statusCode,
		Data:       data,
	})
}

func RenderCreated(ctx *gin.Context, data interface{}) {
	RenderOK(ctx, http.StatusCreated, data)
}

type SigninResponse struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}
