package dto

import (
	"time"

	"hotelhills/internal/domains/booking/model"
	guestDto "hotelhills/internal/domains/guest/model/dto"
	roomDto "hotelhills/internal/domains/room/model/dto"
	"hotelhills/shared"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	gModel "hotelhills/shared/model"
	"hotelhills/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID   string `json:"room_id"   validate:"required,uuid"`
	GuestID  string `json:"guest_id"  validate:"required,uuid"`
	CheckIn  string `json:"check_in"  validate:"required,datetime_flex"`
	CheckOut string `json:"check_out" validate:"required,datetime_flex"`
	Status   string `json:"status"    validate:"omitempty,oneof=booked checked-in checked-out cancelled"`
}

func (c *CreateBookingRequest) ToModel(now time.Time) (model.Booking, error) {
	checkIn, err := timezone.ParseFlexible(c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.ParseFlexible(c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusBooked
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:       uuid.NewString(),
		RoomID:   c.RoomID,
		GuestID:  c.GuestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   status,
		Metadata: gModel.NewMetadata(now),
	}, nil
}

// UpdateBookingRequest carries the dates as strings; they are parsed and merged by the service.
type UpdateBookingRequest struct {
	RoomID   string `db:"room_id"  json:"room_id"   validate:"omitempty,uuid"`
	GuestID  string `db:"guest_id" json:"guest_id"  validate:"omitempty,uuid"`
	CheckIn  string `json:"check_in"                validate:"omitempty,datetime_flex"`
	CheckOut string `json:"check_out"               validate:"omitempty,datetime_flex"`
	Status   string `db:"status"   json:"status"    validate:"omitempty,oneof=booked checked-in checked-out cancelled"`
}

type BookingResponse struct {
	ID       string                `json:"id"`
	Room     roomDto.RoomSummary   `json:"room"`
	Guest    guestDto.GuestSummary `json:"guest"`
	CheckIn  string                `json:"check_in"`
	CheckOut string                `json:"check_out"`
	Status   string                `json:"status"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(detail model.BookingDetail) {
	b.ID = detail.ID
	b.Room = roomDto.RoomSummary{
		ID:     detail.RoomID,
		Number: detail.RoomNumber,
		Type:   detail.RoomType,
		Status: detail.RoomStatus,
		Price:  detail.RoomPrice,
	}
	b.Guest = guestDto.GuestSummary{
		ID:      detail.GuestID,
		Name:    detail.GuestName,
		Phone:   detail.GuestPhone,
		Email:   detail.GuestEmail,
		Address: detail.GuestAddress,
	}
	b.CheckIn = timezone.Format(detail.CheckIn, constant.DateFormat)
	b.CheckOut = timezone.Format(detail.CheckOut, constant.DateFormat)
	b.Status = detail.Status
	b.Metadata.FromModel(detail.Metadata)
}

// BookingSummary is the expanded form of a stay embedded in a bill.
type BookingSummary struct {
	ID       string `json:"id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (b *GetBookingsResponse) FromModels(models []model.BookingDetail, totalData, limit int) {
	b.TotalData = totalData
	b.TotalPage = shared.CalculateTotalPage(totalData, limit)

	b.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		b.Bookings[i].FromModel(mod)
	}
}
