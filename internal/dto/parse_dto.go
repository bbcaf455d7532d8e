package dto

import "time"

type KnowledgePointResponse struct {
	ID          uint      `json:"id"`
	TaskID      uint      `json:"task_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Importance  int       `json:"importance"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type BestPracticeResponse struct {
	ID        uint      `json:"id"`
	TaskID    uint      `json:"task_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Scenario  string    `json:"scenario,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TaskListResponse struct {
	ID          uint      `json:"id"`
	DirectionID *uint     `json:"direction_id"`
	Title       string    `json:"title"`
	SourceType  string    `json:"source_type"`
	Summary     string    `json:"summary,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ParseTaskResponse struct {
	ID              uint                     `json:"id"`
	DirectionID     *uint                    `json:"direction_id"`
	Title           string                   `json:"title"`
	SourceType      string                   `json:"source_type"`
	SourceContent   string                   `json:"source_content"`
	SourceObject    string                   `json:"source_object,omitempty"`
	RawText         string                   `json:"raw_text,omitempty"`
	Summary         string                   `json:"summary,omitempty"`
	Status          string                   `json:"status"`
	ErrorMessage    string                   `json:"error_message,omitempty"`
	KnowledgePoints []KnowledgePointResponse `json:"knowledge_points"`
	BestPractices   []BestPracticeResponse   `json:"best_practices"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}
