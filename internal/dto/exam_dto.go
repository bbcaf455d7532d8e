package dto

import "time"

type ExamResponse struct {
	ID          uint       `json:"id"`
	DirectionID uint       `json:"direction_id"`
	Mode        string     `json:"mode"`
	TimeLimit   *int       `json:"time_limit"`
	ScoreType   string     `json:"score_type"`
	Status      string     `json:"status"`
	Score       *float64   `json:"score"`
	Grade       *string    `json:"grade"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// ExamDetailResponse is an exam with the questions drawn for it.
type ExamDetailResponse struct {
	ID          uint               `json:"id"`
	DirectionID uint               `json:"direction_id"`
	Mode        string             `json:"mode"`
	TimeLimit   *int               `json:"time_limit"`
	ScoreType   string             `json:"score_type"`
	Status      string             `json:"status"`
	Score       *float64           `json:"score"`
	Grade       *string            `json:"grade"`
	CreatedAt   time.Time          `json:"created_at"`
	CompletedAt *time.Time         `json:"completed_at"`
	Questions   []QuestionResponse `json:"questions"`
}

type AnswerResponse struct {
	ID            uint      `json:"id"`
	ExamID        uint      `json:"exam_id"`
	QuestionID    uint      `json:"question_id"`
	UserAnswer    string    `json:"user_answer"`
	IsCorrect     bool      `json:"is_correct"`
	Score         float64   `json:"score"`
	AIFeedback    *string   `json:"ai_feedback"`
	GradingStatus string    `json:"grading_status"`
	AnsweredAt    time.Time `json:"answered_at"`
}

type ExamResultResponse struct {
	ExamID         uint             `json:"exam_id"`
	TotalQuestions int              `json:"total_questions"`
	CorrectCount   int              `json:"correct_count"`
	Score          float64          `json:"score"`
	Grade          *string          `json:"grade"`
	Answers        []AnswerResponse `json:"answers"`
}

type MistakeResponse struct {
	ID          uint              `json:"id"`
	QuestionID  uint              `json:"question_id"`
	AnswerID    uint              `json:"answer_id"`
	ReviewCount int               `json:"review_count"`
	Mastered    bool              `json:"mastered"`
	CreatedAt   time.Time         `json:"created_at"`
	Question    *QuestionResponse `json:"question,omitempty"`
}
