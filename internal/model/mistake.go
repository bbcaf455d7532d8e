package model

import (
	"time"
)

type Mistake struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	QuestionID  uint      `json:"question_id" gorm:"not null;index"`
	Question    Question  `json:"question" gorm:"foreignKey:QuestionID"`
	AnswerID    uint      `json:"answer_id" gorm:"not null;uniqueIndex"`
	ReviewCount int       `json:"review_count" gorm:"not null;default:0"`
	Mastered    bool      `json:"mastered" gorm:"not null;default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
