package dto

import (
	"time"

	"hotelier/internal/domains/booking/model"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	GuestID  int64  `json:"guest_id"  validate:"required"`
	RoomID   int64  `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

// Nights is the day count between check-in and check-out, the billing multiplier.
// Equal dates yield zero nights and a zero total.
func (c *CreateBookingRequest) Nights() int {
	checkIn, _ := time.Parse(dateLayout, c.CheckIn)
	checkOut, _ := time.Parse(dateLayout, c.CheckOut)

	return int(checkOut.Sub(checkIn).Hours() / 24)
}

func (c *CreateBookingRequest) ToModel(user string, room roomModel.Room) model.Booking {
	checkIn, _ := time.Parse(dateLayout, c.CheckIn)
	checkOut, _ := time.Parse(dateLayout, c.CheckOut)

	return model.Booking{
		GuestID:       c.GuestID,
		RoomID:        room.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalAmount:   float64(c.Nights()) * room.Price,
		BookingStatus: model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateBookingResponse struct {
	ID          int64   `json:"id"`
	Nights      int     `json:"nights"`
	TotalAmount float64 `json:"total_amount"`
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,max=20"`
}

type BookingResponse struct {
	ID            int64   `json:"id"`
	GuestID       int64   `json:"guest_id"`
	RoomID        int64   `json:"room_id"`
	GuestName     string  `json:"guest_name"`
	RoomNumber    string  `json:"room_number"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	TotalAmount   float64 `json:"total_amount"`
	BookingStatus string  `json:"booking_status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.GuestName = model.GuestName
	r.RoomNumber = model.RoomNumber
	r.CheckIn = model.CheckIn.Format(dateLayout)
	r.CheckOut = model.CheckOut.Format(dateLayout)
	r.TotalAmount = model.TotalAmount
	r.BookingStatus = model.BookingStatus
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type BookingEvent struct {
	BookingID     int64   `json:"booking_id"`
	GuestID       int64   `json:"guest_id"`
	RoomID        int64   `json:"room_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	TotalAmount   float64 `json:"total_amount"`
	BookingStatus string  `json:"booking_status"`
}

func (e *BookingEvent) FromModel(model model.Booking) {
	e.BookingID = model.ID
	e.GuestID = model.GuestID
	e.RoomID = model.RoomID
	e.CheckIn = model.CheckIn.Format(dateLayout)
	e.CheckOut = model.CheckOut.Format(dateLayout)
	e.TotalAmount = model.TotalAmount
	e.BookingStatus = model.BookingStatus
}
