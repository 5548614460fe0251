package auth

import (
	"errors"
	"net/http"

	"github.com/DucPPhan/parknow/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/profile", h.Profile)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrPhoneTaken):
			response.Error(c, http.StatusConflict, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, "registered", user)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	response.Success(c, http.StatusOK, "logged in", gin.H{
		"token": res.Token,
		"profile": gin.H{
			"id":    res.User.ID,
			"name":  res.User.Name,
			"phone": res.User.Phone,
			"email": res.User.Email,
		},
	})
}

func (h *Handler) Profile(c *gin.Context) {
	userID := c.GetInt64("user_id")
	user, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "User not found")
		return
	}

	response.Success(c, http.StatusOK, "profile", gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"phone":     user.Phone,
		"email":     user.Email,
		"avatarUrl": user.AvatarURL,
	})
}
