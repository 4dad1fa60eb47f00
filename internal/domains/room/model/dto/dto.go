package dto

import (
	"mime/multipart"

	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber string                `json:"room_number" validate:"required,max=20"`
	RoomType   string                `json:"room_type"   validate:"required,max=50"`
	Price      float64               `json:"price"       validate:"omitempty"`
	Capacity   int                   `json:"capacity"    validate:"omitempty"`
	Image      *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	return model.Room{
		RoomNumber: c.RoomNumber,
		RoomType:   c.RoomType,
		Price:      c.Price,
		Capacity:   c.Capacity,
		Status:     model.StatusAvailable,
		Image:      imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateRoomResponse struct {
	ID int64 `json:"id"`
}

type UpdateRoomRequest struct {
	RoomType  string                `db:"room_type" json:"room_type" validate:"omitempty,max=50"`
	Price     *float64              `db:"price"     json:"price"     validate:"omitempty"`
	Capacity  *int                  `db:"capacity"  json:"capacity"  validate:"omitempty"`
	Image     *multipart.FileHeader `json:"image"   validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

type UpdateRoomPriceRequest struct {
	Price *float64 `json:"price" validate:"required"`
}

type RoomResponse struct {
	ID         int64   `json:"id"`
	RoomNumber string  `json:"room_number"`
	RoomType   string  `json:"room_type"`
	Price      float64 `json:"price"`
	Capacity   int     `json:"capacity"`
	Status     string  `json:"status"`
	Image      string  `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Status = model.Status
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
