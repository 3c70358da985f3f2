package dto

import (
	"checkinhq/shared/constant"
	"checkinhq/shared/model"
	"checkinhq/shared/timezone"
)

// Metadata is the audit trail of a record, formatted in the app timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(audit model.Metadata) {
	m.CreatedAt = timezone.Format(audit.CreatedAt, constant.DateFormat)
	m.CreatedBy = audit.CreatedBy
	m.ModifiedAt = timezone.Format(audit.ModifiedAt, constant.DateFormat)
	m.ModifiedBy = audit.ModifiedBy
}
