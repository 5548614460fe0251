package vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DucPPhan/parknow/internal/domain"
	"github.com/DucPPhan/parknow/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicle", h.List)
	rg.POST("/vehicle", h.Add)
	rg.DELETE("/vehicle/:id", h.Delete)
	rg.PUT("/vehicle/:id/default", h.SetDefault)
}

func (h *Handler) List(c *gin.Context) {
	vehicles, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load vehicles")
		return
	}

	out := make([]gin.H, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, toVehicleJSON(v))
	}
	response.Success(c, http.StatusOK, "vehicles", out)
}

func (h *Handler) Add(c *gin.Context) {
	var req AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.service.Add(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to add vehicle")
		return
	}
	response.Success(c, http.StatusCreated, "vehicle added", toVehicleJSON(*v))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete vehicle")
		return
	}
	response.Success(c, http.StatusOK, "vehicle deleted", gin.H{"id": id})
}

func (h *Handler) SetDefault(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	v, err := h.service.SetDefault(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Vehicle not found")
		return
	}
	response.Success(c, http.StatusOK, "default vehicle updated", toVehicleJSON(*v))
}

func toVehicleJSON(v domain.Vehicle) gin.H {
	return gin.H{
		"id":        v.ID,
		"name":      v.Name,
		"plate":     v.Plate,
		"category":  v.Category,
		"trafficId": v.Category.TrafficID(),
		"isDefault": v.IsDefault,
	}
}
