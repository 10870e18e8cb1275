package fixer

import "testing"

func TestNewExitCodeError(t *testing.T) {
	tests := []struct {
		code    int
		message string
		notify  bool
	}{
		{1, "PHP CS Fixer: General error (or PHP minimal requirement not matched).", true},
		{16, "PHP CS Fixer: Configuration error of the application.", false},
		{32, "PHP CS Fixer: Configuration error of a Fixer.", true},
		{64, "PHP CS Fixer: Exception raised within the application.", true},
		{8, "PHP CS Fixer: Unknown error.", true},
		{255, "PHP CS Fixer: Unknown error.", true},
	}

	for _, tt := range tests {
		err := newExitCodeError(tt.code)

		if err.Code != tt.code {
			t.Errorf("code %d: unexpected Code %d", tt.code, err.Code)
		}

		if err.Error() != tt.message {
			t.Errorf("code %d: expected %q, got %q", tt.code, tt.message, err.Error())
		}

		if err.notifiable() != tt.notify {
			t.Errorf("code %d: expected notifiable=%v", tt.code, tt.notify)
		}
	}
}
