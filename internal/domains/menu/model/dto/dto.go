package dto

import (
	"time"

	"hotelhills/internal/domains/menu/model"
	"hotelhills/shared"
	gDto "hotelhills/shared/dto"
	gModel "hotelhills/shared/model"

	"github.com/google/uuid"
)

type CreateMenuRequest struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price"       validate:"required,gte=0,lte=9999999999.99"`
	Category    string   `json:"category"    validate:"omitempty,max=50"`
}

func (c *CreateMenuRequest) ToModel(now time.Time) model.Menu {
	return model.Menu{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Price:       *c.Price,
		Category:    c.Category,
		Metadata:    gModel.NewMetadata(now),
	}
}

type UpdateMenuRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=500"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,gte=0,lte=9999999999.99"`
	Category    string   `db:"category"    json:"category"    validate:"omitempty,max=50"`
}

type MenuResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	gDto.Metadata
}

func (m *MenuResponse) FromModel(model model.Menu) {
	m.ID = model.ID
	m.Name = model.Name
	m.Description = model.Description
	m.Price = model.Price
	m.Category = model.Category
	m.Metadata.FromModel(model.Metadata)
}

type GetMenuItemsResponse struct {
	MenuItems []MenuResponse `json:"menu_items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (m *GetMenuItemsResponse) FromModels(models []model.Menu, totalData, limit int) {
	m.TotalData = totalData
	m.TotalPage = shared.CalculateTotalPage(totalData, limit)

	m.MenuItems = make([]MenuResponse, len(models))
	for i, mod := range models {
		m.MenuItems[i].FromModel(mod)
	}
}
