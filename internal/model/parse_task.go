package model

import (
	"time"
)

const (
	SourceText = "text"
	SourceFile = "file"
	SourceURL  = "url"

	TaskPending    = "pending"
	TaskProcessing = "processing"
	TaskCompleted  = "completed"
	TaskFailed     = "failed"
)

// ParseTask tracks one knowledge-extraction run over pasted text, an
// uploaded file or a web page.
type ParseTask struct {
	ID              uint             `gorm:"primarykey" json:"id"`
	DirectionID     *uint            `json:"direction_id" gorm:"index"`
	Title           string           `json:"title" gorm:"size:200;not null"`
	SourceType      string           `json:"source_type" gorm:"size:10;not null"`
	SourceContent   string           `json:"source_content" gorm:"type:text"`
	SourceObject    string           `json:"source_object,omitempty" gorm:"size:255"`
	RawText         string           `json:"raw_text,omitempty" gorm:"type:text"`
	Summary         string           `json:"summary,omitempty" gorm:"type:text"`
	Status          string           `json:"status" gorm:"size:20;not null;default:pending;index"`
	ErrorMessage    string           `json:"error_message,omitempty" gorm:"type:text"`
	KnowledgePoints []KnowledgePoint `json:"knowledge_points" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	BestPractices   []BestPractice   `json:"best_practices" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type KnowledgePoint struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	TaskID      uint      `json:"task_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Importance  int       `json:"importance" gorm:"not null;default:3"`
	Category    string    `json:"category,omitempty" gorm:"size:100"`
	CreatedAt   time.Time `json:"created_at"`
}

type BestPractice struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	TaskID    uint      `json:"task_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	Scenario  string    `json:"scenario,omitempty" gorm:"type:text"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
