package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/model"
	"github.com/rs/zerolog/log"
)

// mapTo copies matching fields from src into dst; copy problems are logged
// and leave dst partially filled.
func mapTo(dst, src interface{}) {
	if err := copier.Copy(dst, src); err != nil {
		log.Error().Err(err).Msgf("mapper: copy %T into %T failed", src, dst)
	}
}

func toDirectionResponse(d *model.Direction) dto.DirectionResponse {
	var resp dto.DirectionResponse
	mapTo(&resp, d)
	return resp
}

func toMaterialResponse(m *model.Material) dto.MaterialResponse {
	var resp dto.MaterialResponse
	mapTo(&resp, m)
	if resp.KeyPoints == nil {
		resp.KeyPoints = []model.KeyPoint{}
	}
	return resp
}

func toQuestionResponse(q *model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	mapTo(&resp, q)
	return resp
}

func toQuestionResponses(qs []model.Question) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, len(qs))
	for i := range qs {
		out[i] = toQuestionResponse(&qs[i])
	}
	return out
}

func toExamResponse(e *model.Exam) dto.ExamResponse {
	var resp dto.ExamResponse
	mapTo(&resp, e)
	return resp
}

func toExamDetailResponse(e *model.Exam, questions []model.Question) *dto.ExamDetailResponse {
	var resp dto.ExamDetailResponse
	mapTo(&resp, e)
	resp.Questions = toQuestionResponses(questions)
	return &resp
}

func toAnswerResponse(a *model.Answer) dto.AnswerResponse {
	var resp dto.AnswerResponse
	mapTo(&resp, a)
	return resp
}

func toMistakeResponse(m *model.Mistake) dto.MistakeResponse {
	resp := dto.MistakeResponse{
		ID:          m.ID,
		QuestionID:  m.QuestionID,
		AnswerID:    m.AnswerID,
		ReviewCount: m.ReviewCount,
		Mastered:    m.Mastered,
		CreatedAt:   m.CreatedAt,
	}
	if m.Question.ID != 0 {
		q := toQuestionResponse(&m.Question)
		resp.Question = &q
	}
	return resp
}

func toTaskListResponse(t *model.ParseTask) dto.TaskListResponse {
	var resp dto.TaskListResponse
	mapTo(&resp, t)
	return resp
}

func toParseTaskResponse(t *model.ParseTask) *dto.ParseTaskResponse {
	var resp dto.ParseTaskResponse
	mapTo(&resp, t)
	resp.KnowledgePoints = make([]dto.KnowledgePointResponse, len(t.KnowledgePoints))
	for i := range t.KnowledgePoints {
		mapTo(&resp.KnowledgePoints[i], &t.KnowledgePoints[i])
	}
	resp.BestPractices = make([]dto.BestPracticeResponse, len(t.BestPractices))
	for i := range t.BestPractices {
		mapTo(&resp.BestPractices[i], &t.BestPractices[i])
	}
	return &resp
}
