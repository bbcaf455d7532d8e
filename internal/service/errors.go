package service

import "errors"

var (
	// ErrNotFound is the family every "<thing> not found" error belongs to.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRequest is the family of errors caused by the request itself
	// or by the current state of the resource.
	ErrInvalidRequest = errors.New("invalid request")

	ErrDirectionNotFound = newKindError("direction not found", ErrNotFound)
	ErrMaterialNotFound  = newKindError("material not found", ErrNotFound)
	ErrQuestionNotFound  = newKindError("question not found", ErrNotFound)
	ErrExamNotFound      = newKindError("exam not found", ErrNotFound)
	ErrMistakeNotFound   = newKindError("mistake not found", ErrNotFound)
	ErrTaskNotFound      = newKindError("parse task not found", ErrNotFound)

	ErrDirectionExists      = newKindError("direction already exists", ErrInvalidRequest)
	ErrNoQuestionsAvailable = newKindError("no questions available for this direction, upload materials first", ErrInvalidRequest)
	ErrExamAlreadySubmitted = newKindError("exam already submitted", ErrInvalidRequest)
	ErrExamNotCompleted     = newKindError("exam not completed yet", ErrInvalidRequest)
	ErrEmptySubmission      = newKindError("submission must contain at least one answer", ErrInvalidRequest)
	ErrTaskNotCompleted     = newKindError("only completed parse tasks can generate questions", ErrInvalidRequest)
	ErrTaskNoText           = newKindError("parse task has no raw text", ErrInvalidRequest)
	ErrTaskNoDirection      = newKindError("assign a direction to the parse task first", ErrInvalidRequest)
	ErrEmptyContent         = newKindError("content is empty", ErrInvalidRequest)
	ErrUnsupportedFileType  = newKindError("unsupported file type, only .pdf .docx .md .txt are accepted", ErrInvalidRequest)
	ErrFileTooLarge         = newKindError("file exceeds the upload size limit", ErrInvalidRequest)

	// ErrAIUnavailable means no oracle credentials are configured.
	ErrAIUnavailable = errors.New("AI service is not configured, set QWEN_API_KEY or GEMINI_API_KEY")
	// ErrOracleUnparsable means the oracle answered but not with the
	// requested JSON.
	ErrOracleUnparsable = errors.New("oracle response could not be parsed")
)

type kindError struct {
	msg  string
	kind error
}

func newKindError(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
