package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionSingleChoice = "single_choice"
	QuestionMultiChoice  = "multi_choice"
	QuestionTrueFalse    = "true_false"
	QuestionShortAnswer  = "short_answer"
)

const (
	RatingGood = "good"
	RatingBad  = "bad"
)

// IsObjective reports whether answers to this question type are graded
// by comparison with the canonical answer.
func IsObjective(questionType string) bool {
	switch questionType {
	case QuestionSingleChoice, QuestionMultiChoice, QuestionTrueFalse:
		return true
	}
	return false
}

// ValidQuestionType reports whether t is one of the four known types.
func ValidQuestionType(t string) bool {
	return IsObjective(t) || t == QuestionShortAnswer
}

type Question struct {
	ID          uint                        `gorm:"primarykey" json:"id"`
	MaterialID  uint                        `json:"material_id" gorm:"not null;index"`
	Material    Material                    `json:"-" gorm:"foreignKey:MaterialID"`
	Type        string                      `json:"type" gorm:"size:20;not null;index"` // "single_choice", "multi_choice", "true_false", "short_answer"
	Difficulty  int                         `json:"difficulty" gorm:"not null;default:3"`
	Content     string                      `json:"content" gorm:"type:text;not null"`
	Options     datatypes.JSONSlice[string] `json:"options"`
	Answer      string                      `json:"answer" gorm:"type:text;not null"` // comma-joined for multi_choice
	Explanation string                      `json:"explanation,omitempty" gorm:"type:text"`
	Rating      *string                     `json:"rating,omitempty" gorm:"size:10"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	DeletedAt   gorm.DeletedAt              `gorm:"index" json:"-"`
}
