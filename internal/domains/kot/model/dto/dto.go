package dto

import (
	"time"

	"hotelhills/internal/domains/kot/model"
	tableDto "hotelhills/internal/domains/table/model/dto"
	"hotelhills/shared"
	gDto "hotelhills/shared/dto"
	gModel "hotelhills/shared/model"

	"github.com/google/uuid"
)

type ItemRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
	Notes    string `json:"notes"    validate:"omitempty,max=255"`
}

type CreateKOTRequest struct {
	TableID string        `json:"table_id" validate:"required,uuid"`
	Items   []ItemRequest `json:"items"    validate:"required,min=1,dive"`
	Status  string        `json:"status"   validate:"omitempty,oneof=pending in-progress served"`
}

func (c *CreateKOTRequest) ToModel(now time.Time) model.KOT {
	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	return model.KOT{
		ID:       uuid.NewString(),
		TableID:  c.TableID,
		Items:    toItems(c.Items),
		Status:   status,
		Metadata: gModel.NewMetadata(now),
	}
}

// UpdateKOTRequest replaces the whole item list when items are sent.
type UpdateKOTRequest struct {
	TableID string        `json:"table_id" validate:"omitempty,uuid"`
	Items   []ItemRequest `json:"items"    validate:"omitempty,min=1,dive"`
	Status  string        `json:"status"   validate:"omitempty,oneof=pending in-progress served"`
}

func (u *UpdateKOTRequest) IsEmpty() bool {
	return u.TableID == "" && len(u.Items) == 0 && u.Status == ""
}

// Fields returns the columns to update.
func (u *UpdateKOTRequest) Fields() map[string]any {
	fields := map[string]any{}

	if u.TableID != "" {
		fields[model.FieldTableID] = u.TableID
	}

	if len(u.Items) > 0 {
		fields[model.FieldItems] = toItems(u.Items)
	}

	if u.Status != "" {
		fields[model.FieldStatus] = u.Status
	}

	return fields
}

func toItems(requests []ItemRequest) model.Items {
	items := make(model.Items, len(requests))
	for i, req := range requests {
		items[i] = model.Item(req)
	}

	return items
}

type KOTResponse struct {
	ID     string                `json:"id"`
	Table  tableDto.TableSummary `json:"table"`
	Items  model.Items           `json:"items"`
	Status string                `json:"status"`
	gDto.Metadata
}

func (k *KOTResponse) FromModel(detail model.KOTDetail) {
	k.ID = detail.ID
	k.Table = tableDto.TableSummary{
		ID:       detail.TableID,
		Number:   detail.TableNumber,
		Capacity: detail.TableCapacity,
		Status:   detail.TableStatus,
	}
	k.Items = detail.Items
	k.Status = detail.Status
	k.Metadata.FromModel(detail.Metadata)
}

type GetKOTsResponse struct {
	KOTs      []KOTResponse `json:"kots"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (k *GetKOTsResponse) FromModels(models []model.KOTDetail, totalData, limit int) {
	k.TotalData = totalData
	k.TotalPage = shared.CalculateTotalPage(totalData, limit)

	k.KOTs = make([]KOTResponse, len(models))
	for i, mod := range models {
		k.KOTs[i].FromModel(mod)
	}
}
