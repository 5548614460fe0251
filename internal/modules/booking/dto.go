package booking

import "time"

// BookingDTO mirrors the mobile client's customer-booking payload,
// including the historical "vehicleInforId" spelling.
type BookingDTO struct {
	ParkingSlotID int64  `json:"parkingSlotId" binding:"required"`
	StartTime     string `json:"startTime" binding:"required"`
	EndTime       string `json:"endTime" binding:"required"`
	DateBook      string `json:"dateBook"`
	GuestName     string `json:"guestName"`
	GuestPhone    string `json:"guestPhone"`
	PaymentMethod string `json:"paymentMethod"`
	VehicleInfoID int64  `json:"vehicleInforId" binding:"required"`
	UserID        int64  `json:"userId"`
	Notes         string `json:"notes"`
}

type CustomerBookingRequest struct {
	BookingDTO        BookingDTO `json:"bookingDto" binding:"required"`
	DeviceTokenMobile string     `json:"deviceTokenMobile"`
}

type GuestBookingRequest struct {
	ParkingID     int64  `json:"parkingId" binding:"required"`
	SlotID        int64  `json:"slotId" binding:"required"`
	GuestName     string `json:"guestName"`
	GuestPhone    string `json:"guestPhone"`
	VehiclePlate  string `json:"vehiclePlate"`
	VehicleTypeID int    `json:"vehicleTypeId"`
	StartTime     string `json:"startTime" binding:"required"`
	EndTime       string `json:"endTime" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

type RateRequest struct {
	Stars   int    `json:"stars" binding:"required"`
	Comment string `json:"comment"`
}

type PayRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

func parseWireTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
