package dto

import (
	"time"

	"hotelhills/internal/domains/table/model"
	"hotelhills/shared"
	gDto "hotelhills/shared/dto"
	gModel "hotelhills/shared/model"

	"github.com/google/uuid"
)

type CreateTableRequest struct {
	Number   string `json:"number"   validate:"required,max=20"`
	Capacity int    `json:"capacity" validate:"required,gte=1"`
	Status   string `json:"status"   validate:"omitempty,oneof=available reserved occupied"`
}

func (c *CreateTableRequest) ToModel(now time.Time) model.Table {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Table{
		ID:       uuid.NewString(),
		Number:   c.Number,
		Capacity: c.Capacity,
		Status:   status,
		Metadata: gModel.NewMetadata(now),
	}
}

type UpdateTableRequest struct {
	Number   string `db:"number"   json:"number"   validate:"omitempty,max=20"`
	Capacity int    `db:"capacity" json:"capacity" validate:"omitempty,gte=1"`
	Status   string `db:"status"   json:"status"   validate:"omitempty,oneof=available reserved occupied"`
}

type TableResponse struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
	gDto.Metadata
}

func (t *TableResponse) FromModel(model model.Table) {
	t.ID = model.ID
	t.Number = model.Number
	t.Capacity = model.Capacity
	t.Status = model.Status
	t.Metadata.FromModel(model.Metadata)
}

type TableSummary struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

type GetTablesResponse struct {
	Tables    []TableResponse `json:"tables"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (t *GetTablesResponse) FromModels(models []model.Table, totalData, limit int) {
	t.TotalData = totalData
	t.TotalPage = shared.CalculateTotalPage(totalData, limit)

	t.Tables = make([]TableResponse, len(models))
	for i, mod := range models {
		t.Tables[i].FromModel(mod)
	}
}
