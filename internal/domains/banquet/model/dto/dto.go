package dto

import (
	"time"

	"hotelhills/internal/domains/banquet/model"
	"hotelhills/shared"
	gDto "hotelhills/shared/dto"
	gModel "hotelhills/shared/model"

	"github.com/google/uuid"
)

type CreateBanquetRequest struct {
	Name     string   `json:"name"     validate:"required,max=100"`
	Capacity int      `json:"capacity" validate:"required,gte=1"`
	Status   string   `json:"status"   validate:"omitempty,oneof=available booked maintenance"`
	Price    *float64 `json:"price"    validate:"required,gte=0,lte=9999999999.99"`
}

func (c *CreateBanquetRequest) ToModel(now time.Time) model.Banquet {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Banquet{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Capacity: c.Capacity,
		Status:   status,
		Price:    *c.Price,
		Metadata: gModel.NewMetadata(now),
	}
}

type UpdateBanquetRequest struct {
	Name     string   `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Capacity int      `db:"capacity" json:"capacity" validate:"omitempty,gte=1"`
	Status   string   `db:"status"   json:"status"   validate:"omitempty,oneof=available booked maintenance"`
	Price    *float64 `db:"price"    json:"price"    validate:"omitempty,gte=0,lte=9999999999.99"`
}

type BanquetResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
	gDto.Metadata
}

func (b *BanquetResponse) FromModel(model model.Banquet) {
	b.ID = model.ID
	b.Name = model.Name
	b.Capacity = model.Capacity
	b.Status = model.Status
	b.Price = model.Price
	b.Metadata.FromModel(model.Metadata)
}

// BanquetSummary is the expanded form of a banquet embedded in bookings.
type BanquetSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
}

type GetBanquetsResponse struct {
	Banquets  []BanquetResponse `json:"banquets"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (b *GetBanquetsResponse) FromModels(models []model.Banquet, totalData, limit int) {
	b.TotalData = totalData
	b.TotalPage = shared.CalculateTotalPage(totalData, limit)

	b.Banquets = make([]BanquetResponse, len(models))
	for i, mod := range models {
		b.Banquets[i].FromModel(mod)
	}
}
