package dto

import (
	"time"

	"hotelhills/shared/constant"
	"hotelhills/shared/model"
	"hotelhills/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

func (m *Metadata) FromModel(meta model.Metadata) {
	m.CreatedAt = FormatTime(meta.CreatedAt)
	m.ModifiedAt = FormatTime(meta.ModifiedAt)
}

// FormatTime renders t in the application timezone. The zero time renders as "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}
