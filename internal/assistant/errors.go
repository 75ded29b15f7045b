package assistant

import "errors"

var (
	ErrNotInitialized     = errors.New("assistant: provider not initialized")
	ErrAlreadyInitialized = errors.New("assistant: provider already initialized")
	ErrNilUseCase         = errors.New("assistant: use case is nil")
)
