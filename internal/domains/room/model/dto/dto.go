package dto

import (
	"time"

	"hotelhills/internal/domains/room/model"
	"hotelhills/shared"
	gDto "hotelhills/shared/dto"
	gModel "hotelhills/shared/model"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number  string   `json:"number"   validate:"required,max=20"`
	Type    string   `json:"type"     validate:"required,max=50"`
	Status  string   `json:"status"   validate:"omitempty,oneof=available booked maintenance"`
	Price   *float64 `json:"price"    validate:"required,gte=0,lte=9999999999.99"`
	GuestID *string  `json:"guest_id" validate:"omitempty,uuid"`
}

func (c *CreateRoomRequest) ToModel(now time.Time) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:       uuid.NewString(),
		Number:   c.Number,
		Type:     c.Type,
		Status:   status,
		Price:    *c.Price,
		GuestID:  c.GuestID,
		Metadata: gModel.NewMetadata(now),
	}
}

// UpdateRoomRequest only touches the provided fields. An empty guest_id detaches the guest.
type UpdateRoomRequest struct {
	Number  string   `db:"number"   json:"number"   validate:"omitempty,max=20"`
	Type    string   `db:"type"     json:"type"     validate:"omitempty,max=50"`
	Status  string   `db:"status"   json:"status"   validate:"omitempty,oneof=available booked maintenance"`
	Price   *float64 `db:"price"    json:"price"    validate:"omitempty,gte=0,lte=9999999999.99"`
	GuestID *string  `db:"guest_id" json:"guest_id" validate:"omitnil,uuid_or_empty"`
}

type RoomResponse struct {
	ID      string  `json:"id"`
	Number  string  `json:"number"`
	Type    string  `json:"type"`
	Status  string  `json:"status"`
	Price   float64 `json:"price"`
	GuestID *string `json:"guest_id"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Status = model.Status
	r.Price = model.Price
	r.GuestID = model.GuestID
	r.Metadata.FromModel(model.Metadata)
}

// RoomSummary is the expanded form of a room embedded in other records.
type RoomSummary struct {
	ID     string  `json:"id"`
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Status string  `json:"status"`
	Price  float64 `json:"price"`
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
