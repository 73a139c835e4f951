package entities

import (
	"github.com/google/uuid"
)

type MenuImportJob struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Status      string    `json:"status"` // "pending", "processing", "completed", "error"
	Progress    int       `json:"progress"`
	Message     string    `json:"message"`
	TotalItems  int       `json:"total_items"`
	FileURL     string    `json:"file_url,omitempty"`
	MimeType    string    `json:"mime_type,omitempty"`
	RawItems    string    `json:"raw_items,omitempty" gorm:"type:text"`
	NotifyEmail string    `json:"notify_email,omitempty"`

	Timestamp
}
