package dto

import (
	"time"

	"hotelhills/internal/domains/guest/model"
	"hotelhills/shared"
	gDto "hotelhills/shared/dto"
	gModel "hotelhills/shared/model"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Phone   string `json:"phone"   validate:"required,max=30"`
	Email   string `json:"email"   validate:"omitempty,email,max=100"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

func (c *CreateGuestRequest) ToModel(now time.Time) model.Guest {
	return model.Guest{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
		Metadata: gModel.NewMetadata(now),
	}
}

type UpdateGuestRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Phone   string `db:"phone"   json:"phone"   validate:"omitempty,max=30"`
	Email   string `db:"email"   json:"email"   validate:"omitempty,email,max=100"`
	Address string `db:"address" json:"address" validate:"omitempty,max=255"`
}

type GuestResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	gDto.Metadata
}

func (g *GuestResponse) FromModel(model model.Guest) {
	g.ID = model.ID
	g.Name = model.Name
	g.Phone = model.Phone
	g.Email = model.Email
	g.Address = model.Address
	g.Metadata.FromModel(model.Metadata)
}

// GuestSummary is the expanded form of a guest embedded in other records.
type GuestSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		g.Guests[i].FromModel(mod)
	}
}
