package dto

import (
	"time"

	banquetDto "hotelhills/internal/domains/banquet/model/dto"
	"hotelhills/internal/domains/banquetbooking/model"
	guestDto "hotelhills/internal/domains/guest/model/dto"
	"hotelhills/shared"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	gModel "hotelhills/shared/model"
	"hotelhills/shared/timezone"

	"github.com/google/uuid"
)

type CreateBanquetBookingRequest struct {
	BanquetID string `json:"banquet_id" validate:"required,uuid"`
	GuestID   string `json:"guest_id"   validate:"required,uuid"`
	EventDate string `json:"event_date" validate:"required,datetime_flex"`
	Status    string `json:"status"     validate:"omitempty,oneof=booked completed cancelled"`
}

func (c *CreateBanquetBookingRequest) ToModel(now time.Time) (model.BanquetBooking, error) {
	eventDate, err := timezone.ParseFlexible(c.EventDate)
	if err != nil {
		return model.BanquetBooking{}, err
	}

	status := model.StatusBooked
	if c.Status != "" {
		status = c.Status
	}

	return model.BanquetBooking{
		ID:        uuid.NewString(),
		BanquetID: c.BanquetID,
		GuestID:   c.GuestID,
		EventDate: eventDate,
		Status:    status,
		Metadata:  gModel.NewMetadata(now),
	}, nil
}

type UpdateBanquetBookingRequest struct {
	BanquetID string `db:"banquet_id" json:"banquet_id" validate:"omitempty,uuid"`
	GuestID   string `db:"guest_id"   json:"guest_id"   validate:"omitempty,uuid"`
	EventDate string `json:"event_date"                 validate:"omitempty,datetime_flex"`
	Status    string `db:"status"     json:"status"     validate:"omitempty,oneof=booked completed cancelled"`
}

type BanquetBookingResponse struct {
	ID        string                    `json:"id"`
	Banquet   banquetDto.BanquetSummary `json:"banquet"`
	Guest     guestDto.GuestSummary     `json:"guest"`
	EventDate string                    `json:"event_date"`
	Status    string                    `json:"status"`
	gDto.Metadata
}

func (b *BanquetBookingResponse) FromModel(detail model.BanquetBookingDetail) {
	b.ID = detail.ID
	b.Banquet = banquetDto.BanquetSummary{
		ID:       detail.BanquetID,
		Name:     detail.BanquetName,
		Capacity: detail.BanquetCapacity,
		Status:   detail.BanquetStatus,
		Price:    detail.BanquetPrice,
	}
	b.Guest = guestDto.GuestSummary{
		ID:      detail.GuestID,
		Name:    detail.GuestName,
		Phone:   detail.GuestPhone,
		Email:   detail.GuestEmail,
		Address: detail.GuestAddress,
	}
	b.EventDate = timezone.Format(detail.EventDate, constant.DateFormat)
	b.Status = detail.Status
	b.Metadata.FromModel(detail.Metadata)
}

// BanquetBookingSummary is the expanded form of a banquet booking embedded in a quotation.
type BanquetBookingSummary struct {
	ID        string `json:"id"`
	BanquetID string `json:"banquet_id"`
	GuestID   string `json:"guest_id"`
	EventDate string `json:"event_date"`
	Status    string `json:"status"`
}

type GetBanquetBookingsResponse struct {
	BanquetBookings []BanquetBookingResponse `json:"banquet_bookings"`
	TotalPage       int                      `json:"total_page"`
	TotalData       int                      `json:"total_data"`
}

func (b *GetBanquetBookingsResponse) FromModels(models []model.BanquetBookingDetail, totalData, limit int) {
	b.TotalData = totalData
	b.TotalPage = shared.CalculateTotalPage(totalData, limit)

	b.BanquetBookings = make([]BanquetBookingResponse, len(models))
	for i, mod := range models {
		b.BanquetBookings[i].FromModel(mod)
	}
}
