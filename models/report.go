package models

import (
	"encoding/json"
	"time"
)

type Report struct {
	ReportID     string           `gorm:"column:report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"report_id"`
	UserID       string           `gorm:"column:user_id;type:uuid" json:"user_id"`
	EntityType   ReportEntityType `gorm:"column:entity_type;not null;index" json:"entity_type"`
	EntityID     string           `gorm:"column:entity_id;type:uuid;not null;index" json:"entity_id"`
	ReportReason string           `gorm:"column:report_reason;not null" json:"report_reason"`
	ReportDate   time.Time        `gorm:"column:report_date;autoCreateTime" json:"report_date"`
	Status       ReportStatus     `gorm:"column:status;not null;default:pending" json:"status"`

	// Admin listing decorations.
	DisplayName   string          `gorm:"-:migration;->" json:"display_name,omitempty"`
	EntityDetails json.RawMessage `gorm:"-:migration;->" json:"entity_details,omitempty"`
}

func (Report) TableName() string { return "reports" }
