package dto

import (
	"encoding/json"

	"hotelhills/internal/domains/bill/model"
	bookingDto "hotelhills/internal/domains/booking/model/dto"
	guestDto "hotelhills/internal/domains/guest/model/dto"
	roomDto "hotelhills/internal/domains/room/model/dto"
	"hotelhills/shared"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
)

const EventBillGenerated = "bill.generated"

type GenerateBillRequest struct {
	BookingID         string  `json:"booking_id"         validate:"required,uuid"`
	AdditionalCharges Charges `json:"additional_charges" validate:"gte=0,lte=9999999999.99"`
}

// UnmarshalJSON also accepts stayId/bookingId and additionalCharges. Snake case wins when both are sent.
func (g *GenerateBillRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		BookingID              string   `json:"booking_id"`
		BookingIDCamel         string   `json:"bookingId"`
		StayID                 string   `json:"stayId"`
		AdditionalCharges      *Charges `json:"additional_charges"`
		AdditionalChargesCamel *Charges `json:"additionalCharges"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err //nolint:wrapcheck
	}

	g.BookingID = firstNonEmpty(raw.BookingID, raw.BookingIDCamel, raw.StayID)

	switch {
	case raw.AdditionalCharges != nil:
		g.AdditionalCharges = *raw.AdditionalCharges
	case raw.AdditionalChargesCamel != nil:
		g.AdditionalCharges = *raw.AdditionalChargesCamel
	default:
		g.AdditionalCharges = 0
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != constant.Empty {
			return value
		}
	}

	return constant.Empty
}

type BillResponse struct {
	ID                string                    `json:"id"`
	Booking           bookingDto.BookingSummary `json:"booking"`
	Guest             guestDto.GuestSummary     `json:"guest"`
	Room              roomDto.RoomSummary       `json:"room"`
	Nights            int                       `json:"nights"`
	RoomCharge        float64                   `json:"room_charge"`
	AdditionalCharges float64                   `json:"additional_charges"`
	Total             float64                   `json:"total"`
	CreatedAt         string                    `json:"created_at"`
}

func (b *BillResponse) FromModel(detail model.BillDetail) {
	b.ID = detail.ID
	b.Booking = bookingDto.BookingSummary{
		ID:       detail.BookingID,
		CheckIn:  gDto.FormatTime(detail.BookingCheckIn),
		CheckOut: gDto.FormatTime(detail.BookingCheckOut),
		Status:   detail.BookingStatus,
	}
	b.Guest = guestDto.GuestSummary{
		ID:      detail.GuestID,
		Name:    detail.GuestName,
		Phone:   detail.GuestPhone,
		Email:   detail.GuestEmail,
		Address: detail.GuestAddress,
	}
	b.Room = roomDto.RoomSummary{
		ID:     detail.RoomID,
		Number: detail.RoomNumber,
		Type:   detail.RoomType,
		Status: detail.RoomStatus,
		Price:  detail.RoomPrice,
	}
	b.Nights = detail.Nights
	b.RoomCharge = detail.RoomCharge
	b.AdditionalCharges = detail.AdditionalCharges
	b.Total = detail.Total
	b.CreatedAt = gDto.FormatTime(detail.CreatedAt)
}

type GetBillsResponse struct {
	Bills     []BillResponse `json:"bills"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (b *GetBillsResponse) FromModels(models []model.BillDetail, totalData, limit int) {
	b.TotalData = totalData
	b.TotalPage = shared.CalculateTotalPage(totalData, limit)

	b.Bills = make([]BillResponse, len(models))
	for i, mod := range models {
		b.Bills[i].FromModel(mod)
	}
}

// BillGeneratedEvent is published once a bill row is persisted.
type BillGeneratedEvent struct {
	Event             string  `json:"event"`
	BillID            string  `json:"bill_id"`
	BookingID         string  `json:"booking_id"`
	GuestID           string  `json:"guest_id"`
	RoomID            string  `json:"room_id"`
	Nights            int     `json:"nights"`
	RoomCharge        float64 `json:"room_charge"`
	AdditionalCharges float64 `json:"additional_charges"`
	Total             float64 `json:"total"`
	GeneratedAt       string  `json:"generated_at"`
}

func (e *BillGeneratedEvent) FromModel(bill model.Bill) {
	e.Event = EventBillGenerated
	e.BillID = bill.ID
	e.BookingID = bill.BookingID
	e.GuestID = bill.GuestID
	e.RoomID = bill.RoomID
	e.Nights = bill.Nights
	e.RoomCharge = bill.RoomCharge
	e.AdditionalCharges = bill.AdditionalCharges
	e.Total = bill.Total
	e.GeneratedAt = gDto.FormatTime(bill.CreatedAt)
}
