package parking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	rg.GET("/parking", h.Search)
	rg.GET("/parking/:id", h.Get)
	rg.GET("/available-slots", h.AvailableSlots)
	rg.GET("/expected-price", h.ExpectedPrice)
}

func (h *Handler) Search(c *gin.Context) {
	lots, err := h.service.Search(c.Request.Context(), c.Query("Keyword"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to search parkings")
		return
	}
	response.Success(c, http.StatusOK, "parkings", lots)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid parking id")
		return
	}

	lot, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Parking lot not found")
		return
	}
	response.Success(c, http.StatusOK, "parking", lot)
}

func (h *Handler) AvailableSlots(c *gin.Context) {
	parkingID, err := strconv.ParseInt(c.Query("ParkingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid ParkingId")
		return
	}
	start, err := time.Parse(time.RFC3339, c.Query("StartTimeBooking"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid StartTimeBooking")
		return
	}
	hours, err := strconv.Atoi(c.Query("DesireHour"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid DesireHour")
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), parkingID, start, hours)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to load slots")
		}
		return
	}
	response.Success(c, http.StatusOK, "available slots", slots)
}

// ExpectedPrice keeps the mobile app's historical parameter spelling
// "StartimeBooking".
func (h *Handler) ExpectedPrice(c *gin.Context) {
	parkingID, err := strconv.ParseInt(c.Query("ParkingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid ParkingId")
		return
	}
	start, err := time.Parse(time.RFC3339, c.Query("StartimeBooking"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid StartimeBooking")
		return
	}
	hours, err := strconv.Atoi(c.Query("DesiredHour"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid DesiredHour")
		return
	}
	trafficID, err := strconv.Atoi(c.Query("TrafficId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid TrafficId")
		return
	}

	price, err := h.service.ExpectedPrice(c.Request.Context(), parkingID, start, hours, trafficID)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNoPricing):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to compute price")
		}
		return
	}
	response.Success(c, http.StatusOK, "expected price", price)
}
