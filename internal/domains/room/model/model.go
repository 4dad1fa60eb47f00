package model

import "hotelier/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomType   = "room_type"
	FieldPrice      = "price"
	FieldCapacity   = "capacity"
	FieldStatus     = "status"
	FieldImage      = "image"

	FieldMinPrice = "min_price"
	FieldMaxPrice = "max_price"

	StatusAvailable = "Available"
	StatusOccupied  = "Occupied"
)

type Room struct {
	ID         int64   `db:"id"`
	RoomNumber string  `db:"room_number"`
	RoomType   string  `db:"room_type"`
	Price      float64 `db:"price"`
	Capacity   int     `db:"capacity"`
	Status     string  `db:"status"`
	Image      string  `db:"image"`
	model.Metadata
}
