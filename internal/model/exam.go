package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ExamTimed   = "timed"
	ExamUntimed = "untimed"

	ScoreHundred = "hundred"
	ScoreGrade   = "grade"

	ExamInProgress = "in_progress"
	ExamCompleted  = "completed"
)

type Exam struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	DirectionID uint           `json:"direction_id" gorm:"not null;index"`
	Mode        string         `json:"mode" gorm:"size:10;not null;default:untimed"`
	TimeLimit   *int           `json:"time_limit"` // minutes, timed exams only
	ScoreType   string         `json:"score_type" gorm:"size:10;not null;default:hundred"`
	Status      string         `json:"status" gorm:"size:20;not null;default:in_progress;index"`
	Score       *float64       `json:"score" gorm:"type:decimal(5,2)"`
	Grade       *string        `json:"grade" gorm:"size:1"`
	Questions   []ExamQuestion `json:"-" gorm:"foreignKey:ExamID"`
	Answers     []Answer       `json:"-" gorm:"foreignKey:ExamID"`
	CompletedAt *time.Time     `json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
