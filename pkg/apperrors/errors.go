package apperrors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrKnowledgeInvalid   = errors.New("knowledge base invalid")
	ErrGenerationDisabled = errors.New("generation capability disabled")
)
