package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	gkerrors "stackit.dev/gitkit/internal/errors"
)

func TestValidationError(t *testing.T) {
	err := gkerrors.NewValidationError("invalid object id", "ABC")
	require.ErrorIs(t, err, gkerrors.ErrValidation)
	require.NotErrorIs(t, err, gkerrors.ErrNotFound)
	require.Contains(t, err.Error(), `"ABC"`)

	wrapped := fmt.Errorf("decoding row: %w", err)
	var ve *gkerrors.ValidationError
	require.True(t, errors.As(wrapped, &ve))
	require.Equal(t, "ABC", ve.Input)
}

func TestExternalToolError(t *testing.T) {
	t.Run("message is the diagnostic verbatim", func(t *testing.T) {
		err := gkerrors.NewExternalToolError("git", []string{"checkout", "nope"}, "", "", nil)
		err.Message = "error: pathspec 'nope' did not match any file(s) known to git"
		require.Equal(t, "error: pathspec 'nope' did not match any file(s) known to git", err.Error())
		require.ErrorIs(t, err, gkerrors.ErrExternalTool)
	})

	t.Run("falls back to command and stderr", func(t *testing.T) {
		cause := errors.New("exit status 128")
		err := gkerrors.NewExternalToolError("git", []string{"status"}, "", "boom\n", cause)
		require.Contains(t, err.Error(), "git command failed: status")
		require.Contains(t, err.Error(), "stderr: boom")
		require.ErrorIs(t, err, cause)
	})
}

func TestNotFoundError(t *testing.T) {
	err := gkerrors.NewNotFoundError("ref", "refs/heads/missing")
	require.ErrorIs(t, err, gkerrors.ErrNotFound)
	require.Equal(t, "ref refs/heads/missing does not exist", err.Error())
}
