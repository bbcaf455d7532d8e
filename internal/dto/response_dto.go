package dto

import (
	"time"

	"github.com/lshigami/Studynest/internal/model"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DirectionResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type MaterialResponse struct {
	ID          uint             `json:"id"`
	DirectionID uint             `json:"direction_id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	KeyPoints   []model.KeyPoint `json:"key_points"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ProgressEvent is one server-sent event of material processing.
type ProgressEvent struct {
	Step       string      `json:"step"` // extracting, extracted, generating, generated, saving, completed, error
	Progress   int         `json:"progress"`
	Message    string      `json:"message"`
	MaterialID uint        `json:"material_id,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

type QuestionResponse struct {
	ID          uint      `json:"id"`
	MaterialID  uint      `json:"material_id"`
	Type        string    `json:"type"`
	Difficulty  int       `json:"difficulty"`
	Content     string    `json:"content"`
	Options     []string  `json:"options"`
	Answer      string    `json:"answer"`
	Explanation string    `json:"explanation,omitempty"`
	Rating      *string   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}
