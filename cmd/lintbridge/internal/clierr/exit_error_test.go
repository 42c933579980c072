package clierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	cause := errors.New("tslint.json missing")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"exit error", New(ExitScanError, "scan failed"), ExitScanError},
		{"wrapped exit error", fmt.Errorf("outer: %w", Wrap(ExitConfig, "loading", cause)), ExitConfig},
		{"zero code normalized", New(0, "bad"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeOf(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	cause := errors.New("tslint.json missing")
	err := Wrap(ExitConfig, "loading preferences", cause)

	assert.EqualError(t, err, "loading preferences: tslint.json missing")
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, Wrap(ExitConfig, "no cause", nil), "no cause")
	assert.EqualError(t, Newf(ExitProblems, "%d problems", 3), "3 problems")
}

func TestSilent(t *testing.T) {
	assert.True(t, Silent(New(ExitProblems, "")))
	assert.False(t, Silent(New(ExitProblems, "3 problems")))
	assert.False(t, Silent(errors.New("plain")))
}
