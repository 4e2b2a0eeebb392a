package dto

import (
	"time"

	guestDto "hotelhills/internal/domains/guest/model/dto"
	tableDto "hotelhills/internal/domains/table/model/dto"
	"hotelhills/internal/domains/tablebooking/model"
	"hotelhills/shared"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	gModel "hotelhills/shared/model"
	"hotelhills/shared/timezone"

	"github.com/google/uuid"
)

type CreateTableBookingRequest struct {
	TableID     string `json:"table_id"     validate:"required,uuid"`
	GuestID     string `json:"guest_id"     validate:"required,uuid"`
	BookingTime string `json:"booking_time" validate:"required,datetime_flex"`
	Status      string `json:"status"       validate:"omitempty,oneof=reserved completed cancelled"`
}

func (c *CreateTableBookingRequest) ToModel(now time.Time) (model.TableBooking, error) {
	bookingTime, err := timezone.ParseFlexible(c.BookingTime)
	if err != nil {
		return model.TableBooking{}, err
	}

	status := model.StatusReserved
	if c.Status != "" {
		status = c.Status
	}

	return model.TableBooking{
		ID:          uuid.NewString(),
		TableID:     c.TableID,
		GuestID:     c.GuestID,
		BookingTime: bookingTime,
		Status:      status,
		Metadata:    gModel.NewMetadata(now),
	}, nil
}

type UpdateTableBookingRequest struct {
	TableID     string `db:"table_id" json:"table_id"     validate:"omitempty,uuid"`
	GuestID     string `db:"guest_id" json:"guest_id"     validate:"omitempty,uuid"`
	BookingTime string `json:"booking_time"               validate:"omitempty,datetime_flex"`
	Status      string `db:"status"   json:"status"       validate:"omitempty,oneof=reserved completed cancelled"`
}

type TableBookingResponse struct {
	ID          string                `json:"id"`
	Table       tableDto.TableSummary `json:"table"`
	Guest       guestDto.GuestSummary `json:"guest"`
	BookingTime string                `json:"booking_time"`
	Status      string                `json:"status"`
	gDto.Metadata
}

func (t *TableBookingResponse) FromModel(detail model.TableBookingDetail) {
	t.ID = detail.ID
	t.Table = tableDto.TableSummary{
		ID:       detail.TableID,
		Number:   detail.TableNumber,
		Capacity: detail.TableCapacity,
		Status:   detail.TableStatus,
	}
	t.Guest = guestDto.GuestSummary{
		ID:      detail.GuestID,
		Name:    detail.GuestName,
		Phone:   detail.GuestPhone,
		Email:   detail.GuestEmail,
		Address: detail.GuestAddress,
	}
	t.BookingTime = timezone.Format(detail.BookingTime, constant.DateFormat)
	t.Status = detail.Status
	t.Metadata.FromModel(detail.Metadata)
}

type GetTableBookingsResponse struct {
	TableBookings []TableBookingResponse `json:"table_bookings"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (t *GetTableBookingsResponse) FromModels(models []model.TableBookingDetail, totalData, limit int) {
	t.TotalData = totalData
	t.TotalPage = shared.CalculateTotalPage(totalData, limit)

	t.TableBookings = make([]TableBookingResponse, len(models))
	for i, mod := range models {
		t.TableBookings[i].FromModel(mod)
	}
}
