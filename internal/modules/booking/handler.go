package booking

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

// RegisterRoutes mounts the endpoints that work without a session: guest
// booking only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/mobile/booking/guest", h.CreateGuestBooking)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/customer-booking", h.CreateCustomerBooking)
	rg.GET("/customer-booking", h.MyBookings)
	rg.PUT("/customer-booking/:id/check-in", h.CheckIn)
	rg.PUT("/customer-booking/:id/check-out", h.CheckOut)
	rg.PUT("/customer-booking/:id/rate", h.Rate)
	rg.PUT("/customer-booking/:id/pay", h.Pay)
	rg.PUT("/customer-booking/:id/cancel", h.Cancel)
}

func (h *Handler) CreateCustomerBooking(c *gin.Context) {
	var req CustomerBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	start, err := parseWireTime(req.BookingDTO.StartTime)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid startTime")
		return
	}
	end, err := parseWireTime(req.BookingDTO.EndTime)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid endTime")
		return
	}

	in := CreateBookingInput{
		UserID:        c.GetInt64("user_id"),
		VehicleID:     req.BookingDTO.VehicleInfoID,
		SlotID:        req.BookingDTO.ParkingSlotID,
		StartTime:     start,
		EndTime:       end,
		PaymentMethod: req.BookingDTO.PaymentMethod,
		Notes:         req.BookingDTO.Notes,
		DeviceToken:   req.DeviceTokenMobile,
	}

	b, err := h.service.CreateCustomerBooking(c.Request.Context(), in)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "booking created", toBookingJSON(b))
}

func (h *Handler) CreateGuestBooking(c *gin.Context) {
	var req GuestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	start, err := parseWireTime(req.StartTime)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid startTime")
		return
	}
	end, err := parseWireTime(req.EndTime)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid endTime")
		return
	}

	in := GuestBookingInput{
		ParkingID:     req.ParkingID,
		SlotID:        req.SlotID,
		GuestName:     req.GuestName,
		GuestPhone:    req.GuestPhone,
		VehiclePlate:  req.VehiclePlate,
		VehicleTypeID: req.VehicleTypeID,
		StartTime:     start,
		EndTime:       end,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	b, err := h.service.CreateGuestBooking(c.Request.Context(), in)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "guest booking created", toBookingJSON(b))
}

func (h *Handler) MyBookings(c *gin.Context) {
	bookings, err := h.service.MyBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}

	out := make([]gin.H, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingJSON(&bookings[i]))
	}
	response.Success(c, http.StatusOK, "bookings", out)
}

func (h *Handler) CheckIn(c *gin.Context) {
	h.action(c, func(userID, id int64) (*domain.Booking, error) {
		return h.service.CheckIn(c.Request.Context(), userID, id)
	})
}

func (h *Handler) CheckOut(c *gin.Context) {
	h.action(c, func(userID, id int64) (*domain.Booking, error) {
		return h.service.CheckOut(c.Request.Context(), userID, id)
	})
}

func (h *Handler) Rate(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.action(c, func(userID, id int64) (*domain.Booking, error) {
		return h.service.Rate(c.Request.Context(), userID, id, req.Stars, req.Comment)
	})
}

func (h *Handler) Pay(c *gin.Context) {
	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.action(c, func(userID, id int64) (*domain.Booking, error) {
		return h.service.Pay(c.Request.Context(), userID, id, req.PaymentMethod)
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.action(c, func(userID, id int64) (*domain.Booking, error) {
		return h.service.Cancel(c.Request.Context(), userID, id, req.Reason)
	})
}

func (h *Handler) action(c *gin.Context, fn func(userID, id int64) (*domain.Booking, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	b, err := fn(c.GetInt64("user_id"), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "booking updated", toBookingJSON(b))
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSlotTaken), errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrVehicleNotFound), errors.Is(err, ErrNoPricing):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "Failed to process booking")
	}
}

// toBookingJSON shapes a booking the way the mobile client expects it.
func toBookingJSON(b *domain.Booking) gin.H {
	return gin.H{
		"id":            b.ID,
		"code":          b.Code,
		"parkingId":     b.ParkingID,
		"parkingSlotId": b.SlotID,
		"startTime":     b.StartTime,
		"endTime":       b.EndTime,
		"total":         b.Total,
		"status":        b.Status,
		"paymentMethod": b.PaymentMethod,
		"paid":          b.Paid,
		"guestName":     b.GuestName,
		"guestPhone":    b.GuestPhone,
		"rating":        b.Rating,
		"checkedInAt":   b.CheckedInAt,
		"checkedOutAt":  b.CheckedOutAt,
	}
}
