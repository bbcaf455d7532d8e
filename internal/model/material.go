package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MaterialPending    = "pending"
	MaterialProcessing = "processing"
	MaterialProcessed  = "processed"
	MaterialFailed     = "failed"
)

// KeyPoint is one core concept the oracle pulled out of a material.
type KeyPoint struct {
	Point       string `json:"point"`
	Description string `json:"description"`
	Importance  int    `json:"importance"`
}

type Material struct {
	ID          uint                          `gorm:"primarykey" json:"id"`
	DirectionID uint                          `json:"direction_id" gorm:"not null;index"`
	Direction   Direction                     `json:"-" gorm:"foreignKey:DirectionID"`
	Title       string                        `json:"title" gorm:"size:200;not null"`
	Content     string                        `json:"content" gorm:"type:text;not null"`
	KeyPoints   datatypes.JSONSlice[KeyPoint] `json:"key_points"`
	Status      string                        `json:"status" gorm:"size:20;not null;default:pending"` // "pending", "processing", "processed", "failed"
	Questions   []Question                    `json:"-" gorm:"foreignKey:MaterialID"`
	CreatedAt   time.Time                     `json:"created_at"`
	UpdatedAt   time.Time                     `json:"updated_at"`
	DeletedAt   gorm.DeletedAt                `gorm:"index" json:"-"`
}
