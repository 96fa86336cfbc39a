package dto

import (
	"desk/shared/constant"
	"desk/shared/model"
	"desk/shared/timezone"
)

// Metadata is the audit block every entity response carries, with
// timestamps rendered in the app timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(audit model.Metadata) {
	*m = Metadata{
		CreatedAt:  timezone.Format(audit.CreatedAt, constant.DateFormat),
		CreatedBy:  audit.CreatedBy,
		ModifiedAt: timezone.Format(audit.ModifiedAt, constant.DateFormat),
		ModifiedBy: audit.ModifiedBy,
	}
}
