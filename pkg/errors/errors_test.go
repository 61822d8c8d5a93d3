package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"app error", New(ErrInvalidArgument, ExitUsage, "bad flag"), ExitUsage},
		{"wrapped app error", fmt.Errorf("loading: %w", InputNotFound("a.txt", fs.ErrNotExist)), ExitInput},
		{"bare sentinel", fmt.Errorf("parse: %w", ErrInvalidArgument), ExitUsage},
		{"encoding sentinel", ErrInvalidEncoding, ExitInput},
		{"unknown", errors.New("boom"), ExitInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := InputNotFound("words.txt", fs.ErrNotExist)
	assert.ErrorIs(t, err, ErrInputNotFound)
	assert.Equal(t, "input not found: words.txt: file does not exist", err.Error())

	arg := InvalidArgument("top must be an integer, got %q", "x")
	assert.ErrorIs(t, arg, ErrInvalidArgument)
	assert.Equal(t, ExitUsage, arg.ExitCode)
}
