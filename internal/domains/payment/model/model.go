package model

import (
	"hotelier/shared/model"
	"time"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldPaymentDate   = "payment_date"
	FieldPaymentMethod = "payment_method"
)

type Payment struct {
	ID            int64     `db:"id"`
	BookingID     int64     `db:"booking_id"`
	Amount        float64   `db:"amount"`
	PaymentDate   time.Time `db:"payment_date"`
	PaymentMethod string    `db:"payment_method"`
	model.Metadata
}
