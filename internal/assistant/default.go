package assistant

import "sync"

var (
	defaultMu sync.RWMutex
	defaultUC UseCase
)

// Init installs uc as the process-wide provider. It must be called once, explicitly,
// after configuration is loaded; later calls return ErrAlreadyInitialized.
func Init(uc UseCase) error {
	if uc == nil {
		return ErrNilUseCase
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultUC != nil {
		return ErrAlreadyInitialized
	}
	defaultUC = uc
	return nil
}

// Default returns the provider installed by Init.
func Default() (UseCase, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	if defaultUC == nil {
		return nil, ErrNotInitialized
	}
	return defaultUC, nil
}

// reset clears the provider. Tests only.
func reset() {
	defaultMu.Lock()
	defaultUC = nil
	defaultMu.Unlock()
}
