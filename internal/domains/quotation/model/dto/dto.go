package dto

import (
	"time"

	banquetBookingDto "hotelhills/internal/domains/banquetbooking/model/dto"
	"hotelhills/internal/domains/quotation/model"
	"hotelhills/shared"
	"hotelhills/shared/constant"
	gDto "hotelhills/shared/dto"
	gModel "hotelhills/shared/model"
	"hotelhills/shared/timezone"

	"github.com/google/uuid"
)

type CreateQuotationRequest struct {
	BanquetBookingID string   `json:"banquet_booking_id" validate:"required,uuid"`
	Amount           *float64 `json:"amount"             validate:"required,gte=0,lte=9999999999.99"`
	Details          string   `json:"details"            validate:"omitempty,max=2000"`
	Status           string   `json:"status"             validate:"omitempty,oneof=pending approved rejected"`
}

func (c *CreateQuotationRequest) ToModel(now time.Time) model.Quotation {
	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	return model.Quotation{
		ID:               uuid.NewString(),
		BanquetBookingID: c.BanquetBookingID,
		Amount:           *c.Amount,
		Details:          c.Details,
		Status:           status,
		Metadata:         gModel.NewMetadata(now),
	}
}

type UpdateQuotationRequest struct {
	BanquetBookingID string   `db:"banquet_booking_id" json:"banquet_booking_id" validate:"omitempty,uuid"`
	Amount           *float64 `db:"amount"             json:"amount"             validate:"omitempty,gte=0,lte=9999999999.99"`
	Details          string   `db:"details"            json:"details"            validate:"omitempty,max=2000"`
	Status           string   `db:"status"             json:"status"             validate:"omitempty,oneof=pending approved rejected"`
}

type QuotationResponse struct {
	ID             string                                  `json:"id"`
	BanquetBooking banquetBookingDto.BanquetBookingSummary `json:"banquet_booking"`
	Amount         float64                                 `json:"amount"`
	Details        string                                  `json:"details"`
	Status         string                                  `json:"status"`
	gDto.Metadata
}

func (q *QuotationResponse) FromModel(detail model.QuotationDetail) {
	q.ID = detail.ID
	q.BanquetBooking = banquetBookingDto.BanquetBookingSummary{
		ID:        detail.BanquetBookingID,
		BanquetID: detail.BanquetID,
		GuestID:   detail.GuestID,
		EventDate: timezone.Format(detail.BookingEventDate, constant.DateFormat),
		Status:    detail.BookingStatus,
	}
	q.Amount = detail.Amount
	q.Details = detail.Details
	q.Status = detail.Status
	q.Metadata.FromModel(detail.Metadata)
}

type GetQuotationsResponse struct {
	Quotations []QuotationResponse `json:"quotations"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (q *GetQuotationsResponse) FromModels(models []model.QuotationDetail, totalData, limit int) {
	q.TotalData = totalData
	q.TotalPage = shared.CalculateTotalPage(totalData, limit)

	q.Quotations = make([]QuotationResponse, len(models))
	for i, mod := range models {
		q.Quotations[i].FromModel(mod)
	}
}
