package output

import (
	"errors"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUserError", ExitUserError, 1},
		{"ExitSystemError", ExitSystemError, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
	}{
		{
			name:        "user error",
			err:         NewUserError("RESCUETIME_API_KEY environment variable not set"),
			wantCode:    ExitUserError,
			wantMessage: "RESCUETIME_API_KEY environment variable not set",
		},
		{
			name:        "system error",
			err:         NewSystemError("health check failed: HTTP 503"),
			wantCode:    ExitSystemError,
			wantMessage: "health check failed: HTTP 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.wantMessage)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestNewSystemErrorWithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewSystemErrorWithCause("getting distractions", cause)

	if err.Code != ExitSystemError {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystemError)
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to match errors.Is")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "user error",
			err:  NewUserError("bad input"),
			want: ExitUserError,
		},
		{
			name: "system error",
			err:  NewSystemError("API failure"),
			want: ExitSystemError,
		},
		{
			name: "untyped error defaults to user error",
			err:  errors.New("something went wrong"),
			want: ExitUserError,
		},
		{
			name: "wrapped exit error",
			err:  NewSystemErrorWithCause("outer", errors.New("inner")),
			want: ExitSystemError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
