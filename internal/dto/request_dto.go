package dto

type DirectionCreateDTO struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description"`
}

type MaterialCreateDTO struct {
	DirectionID uint   `json:"direction_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Content     string `json:"content" binding:"required"`
}

// QuestionUpdateDTO only touches the fields that are present.
type QuestionUpdateDTO struct {
	Content     *string   `json:"content"`
	Options     *[]string `json:"options"`
	Answer      *string   `json:"answer"`
	Explanation *string   `json:"explanation"`
	Difficulty  *int      `json:"difficulty" binding:"omitempty,min=1,max=5"`
}

type QuestionRateDTO struct {
	Rating string `json:"rating" binding:"required,oneof=good bad"`
}

type ExamCreateDTO struct {
	DirectionID   uint   `json:"direction_id" binding:"required"`
	Mode          string `json:"mode" binding:"omitempty,oneof=timed untimed"`
	TimeLimit     *int   `json:"time_limit" binding:"omitempty,min=1"` // minutes, kept for timed exams only
	ScoreType     string `json:"score_type" binding:"omitempty,oneof=hundred grade"`
	QuestionCount int    `json:"question_count" binding:"omitempty,min=1,max=200"` // defaults to 10
}

type AnswerSubmitDTO struct {
	ExamID     uint   `json:"exam_id"` // informational; the path parameter wins
	QuestionID uint   `json:"question_id" binding:"required"`
	UserAnswer string `json:"user_answer"`
}

type ExamSubmitDTO struct {
	Answers []AnswerSubmitDTO `json:"answers" binding:"required,dive"`
}

type MistakeUpdateDTO struct {
	Mastered    *bool `json:"mastered"`
	ReviewCount *int  `json:"review_count" binding:"omitempty,min=0"` // omitted: incremented by one
}

type ParseTextDTO struct {
	Title       string `json:"title" binding:"required,max=200"`
	Text        string `json:"text" binding:"required"`
	DirectionID *uint  `json:"direction_id"`
}

type ParseURLDTO struct {
	Title       string `json:"title" binding:"required,max=200"`
	URL         string `json:"url" binding:"required,url"`
	DirectionID *uint  `json:"direction_id"`
}

// ParseTaskUpdateDTO reassigns a task to a direction; null detaches it.
type ParseTaskUpdateDTO struct {
	DirectionID *uint `json:"direction_id"`
}
