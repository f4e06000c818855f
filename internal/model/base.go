package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel holds the audit timestamps embedded by every business model.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// SoftDeleteModel adds soft-delete support on top of BaseModel.
type SoftDeleteModel struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
