package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lostfound-backend/internal/domains/user/model"
	"lostfound-backend/internal/domains/user/service"
	"lostfound-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Login checks the plaintext credential pair. A hit returns the stored
// record; a miss returns the literal string "NOT" with status 200, which is
// what the frontend keys on.
// POST /api/login1
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			c.JSON(http.StatusOK, "NOT")
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Register inserts a new user row. Any persistence failure, duplicate ids
// included, surfaces as 500.
// POST /api/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.userService.Register(c.Request.Context(), req); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, "OK")
}
