package model

// All lists every table for migration.
func All() []interface{} {
	return []interface{}{
		&Direction{},
		&Material{},
		&Question{},
		&Exam{},
		&ExamQuestion{},
		&Answer{},
		&Mistake{},
		&ParseTask{},
		&KnowledgePoint{},
		&BestPractice{},
	}
}
