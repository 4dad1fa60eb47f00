package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	roomModel "hotelier/internal/domains/room/model"
)

func TestCreateBookingRequest_Nights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{
			name:     "two nights",
			checkIn:  "2025-01-10",
			checkOut: "2025-01-12",
			want:     2,
		},
		{
			name:     "single night",
			checkIn:  "2025-01-10",
			checkOut: "2025-01-11",
			want:     1,
		},
		{
			name:     "equal dates",
			checkIn:  "2025-01-10",
			checkOut: "2025-01-10",
			want:     0,
		},
		{
			name:     "across month boundary",
			checkIn:  "2025-01-30",
			checkOut: "2025-02-02",
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
			}

			assert.Equal(t, tt.want, req.Nights())
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestID:  1,
		RoomID:   2,
		CheckIn:  "2025-01-10",
		CheckOut: "2025-01-13",
	}

	room := roomModel.Room{
		ID:     2,
		Price:  150,
		Status: roomModel.StatusAvailable,
	}

	booking := req.ToModel("test-user", room)

	assert.Equal(t, int64(1), booking.GuestID)
	assert.Equal(t, int64(2), booking.RoomID)
	assert.Equal(t, float64(450), booking.TotalAmount)
	assert.Equal(t, model.StatusConfirmed, booking.BookingStatus)
	assert.Equal(t, "test-user", booking.CreatedBy)
	assert.Equal(t, "test-user", booking.ModifiedBy)
}

func TestBookingEvent_FromModel(t *testing.T) {
	checkIn, _ := time.Parse("2006-01-02", "2025-01-10")
	checkOut, _ := time.Parse("2006-01-02", "2025-01-12")

	booking := model.Booking{
		ID:            7,
		GuestID:       1,
		RoomID:        2,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalAmount:   200,
		BookingStatus: model.StatusConfirmed,
	}

	var event dto.BookingEvent
	event.FromModel(booking)

	assert.Equal(t, int64(7), event.BookingID)
	assert.Equal(t, "2025-01-10", event.CheckIn)
	assert.Equal(t, "2025-01-12", event.CheckOut)
	assert.Equal(t, float64(200), event.TotalAmount)
	assert.Equal(t, model.StatusConfirmed, event.BookingStatus)
}
