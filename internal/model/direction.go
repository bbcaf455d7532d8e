package model

import (
	"time"

	"gorm.io/gorm"
)

type Direction struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"size:50;not null;index"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
