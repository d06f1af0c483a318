package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelfDeletion       = errors.New("cannot delete your own account")
	ErrWordNotFound       = errors.New("word not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrNoQuizQuestions    = errors.New("no questions available for this topic")
	ErrNoActiveQuiz       = errors.New("no quiz in progress")
	ErrQuizStateCorrupt   = errors.New("quiz state corrupt")
	ErrMessageNotFound    = errors.New("message not found")
)
