package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitErrorConstructors(t *testing.T) {
	cause := errors.New("exit status 128")
	tests := []struct {
		name      string
		err       *ExitError
		wantCode  int
		wantCause error
	}{
		{name: "user", err: NewUserError("bad flag"), wantCode: ExitUserError},
		{name: "user with cause", err: NewUserErrorWithCause("bad manifest", cause), wantCode: ExitUserError, wantCause: cause},
		{name: "system", err: NewSystemError("git not found"), wantCode: ExitSystemError},
		{name: "system with cause", err: NewSystemErrorWithCause("git failed", cause), wantCode: ExitSystemError, wantCause: cause},
		{name: "conflict", err: NewConflictError("tag exists"), wantCode: ExitConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.err.Message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.err.Message)
			}
			if !errors.Is(tt.err.Unwrap(), tt.wantCause) {
				t.Errorf("Unwrap() = %v, want %v", tt.err.Unwrap(), tt.wantCause)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "plain error", err: errors.New("x"), want: ExitUserError},
		{name: "conflict", err: NewConflictError("dirty"), want: ExitConflict},
		{name: "wrapped system", err: fmt.Errorf("tagging: %w", NewSystemError("git failed")), want: ExitSystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
