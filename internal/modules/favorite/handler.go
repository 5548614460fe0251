package favorite

import (
	"net/http"
	"strconv"

	"github.com/DucPPhan/parknow/internal/domain"
	"github.com/DucPPhan/parknow/internal/pkg/response"
	"github.com/DucPPhan/parknow/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	favorites *repository.FavoriteRepository
}

func NewHandler(favorites *repository.FavoriteRepository) *Handler {
	return &Handler{favorites: favorites}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/favorite-address", h.List)
	rg.POST("/favorite-address", h.Add)
	rg.DELETE("/favorite-address/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	out, err := h.favorites.GetByUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load favorite addresses")
		return
	}
	response.Success(c, http.StatusOK, "favorite addresses", out)
}

func (h *Handler) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	f := &domain.FavoriteAddress{
		UserID:    c.GetInt64("user_id"),
		Label:     req.Label,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := h.favorites.Create(c.Request.Context(), f); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to add favorite address")
		return
	}
	response.Success(c, http.StatusCreated, "favorite address added", f)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid favorite id")
		return
	}

	if err := h.favorites.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete favorite address")
		return
	}
	response.Success(c, http.StatusOK, "favorite address deleted", gin.H{"id": id})
}
