package model

import (
	"time"
)

const (
	GradingGraded       = "graded"
	GradingOracleFailed = "oracle_failed"
)

// Answer is written once per graded submission and never updated.
type Answer struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ExamID        uint      `json:"exam_id" gorm:"not null;index"`
	QuestionID    uint      `json:"question_id" gorm:"not null;index"`
	Question      Question  `json:"-" gorm:"foreignKey:QuestionID"`
	UserAnswer    string    `json:"user_answer" gorm:"type:text;not null"`
	IsCorrect     bool      `json:"is_correct"`
	Score         float64   `json:"score" gorm:"type:decimal(5,2)"`
	AIFeedback    *string   `json:"ai_feedback,omitempty" gorm:"type:text"`
	GradingStatus string    `json:"grading_status" gorm:"size:20;not null;default:graded"`
	AnsweredAt    time.Time `json:"answered_at"`
}
