package services

import "errors"

// Workflow errors. Handlers translate these into HTTP statuses at a single
// point; everything else surfaces as an internal error.
var (
	// Conflict
	ErrEmailTaken      = errors.New("email already exists")
	ErrNicknameTaken   = errors.New("nickname already exists")
	ErrQuestionTaken   = errors.New("question already exists")
	ErrAlreadyAnswered = errors.New("already answered this question")

	// Unauthorized
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotOwner           = errors.New("not the owner of this resource")

	// NotFound
	ErrCodeNotFound     = errors.New("confirm code not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
	ErrCommentNotFound  = errors.New("comment not found")
)
