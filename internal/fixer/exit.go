package fixer

// php-cs-fixer exit statuses (see the tool's documented exit codes).
const (
	ExitOK               = 0
	ExitGeneralError     = 1
	ExitAppConfigError   = 16
	ExitFixerConfigError = 32
	ExitException        = 64
)

// exitMessages maps php-cs-fixer exit codes to user-facing messages.
var exitMessages = map[int]string{
	ExitGeneralError:     "PHP CS Fixer: General error (or PHP minimal requirement not matched).",
	ExitAppConfigError:   "PHP CS Fixer: Configuration error of the application.",
	ExitFixerConfigError: "PHP CS Fixer: Configuration error of a Fixer.",
	ExitException:        "PHP CS Fixer: Exception raised within the application.",
}

const exitUnknownMessage = "PHP CS Fixer: Unknown error."

// ExitCodeError is the failure reason for a nonzero php-cs-fixer exit.
type ExitCodeError struct {
	// Code is the raw exit code.
	Code int

	// Message is the mapped user-facing message.
	Message string
}

// Error implements error.
func (e *ExitCodeError) Error() string {
	return e.Message
}

// newExitCodeError maps an exit code through the fixed message table.
func newExitCodeError(code int) *ExitCodeError {
	msg, ok := exitMessages[code]
	if !ok {
		msg = exitUnknownMessage
	}
	return &ExitCodeError{Code: code, Message: msg}
}

// notifiable reports whether the failure should raise a notification.
// An application configuration error (16) is expected when the user has
// no usable configuration yet, so it stays silent.
func (e *ExitCodeError) notifiable() bool {
	return e.Code != ExitAppConfigError
}
