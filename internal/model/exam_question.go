package model

// ExamQuestion records which questions were drawn for an exam and in what
// order.
type ExamQuestion struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	ExamID     uint     `json:"exam_id" gorm:"not null;uniqueIndex:idx_exam_question"`
	QuestionID uint     `json:"question_id" gorm:"not null;uniqueIndex:idx_exam_question"`
	Question   Question `json:"question" gorm:"foreignKey:QuestionID"`
	Position   int      `json:"position" gorm:"not null"`
}
