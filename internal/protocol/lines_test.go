package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	gkerrors "stackit.dev/gitkit/internal/errors"
	"stackit.dev/gitkit/internal/protocol"
)

func TestLines(t *testing.T) {
	require.Nil(t, protocol.Lines(""))
	require.Nil(t, protocol.Lines("\n"))
	require.Equal(t, []string{"a", "b"}, protocol.Lines("a\nb\n"))
	require.Equal(t, []string{"a", "b"}, protocol.Lines("a\r\n\nb\r\n"))
	require.Equal(t, []string{"  keep leading"}, protocol.Lines("  keep leading\n"))
}

func TestRecords(t *testing.T) {
	require.Nil(t, protocol.Records("", "\x00"))
	require.Equal(t, []string{"one", "two words"}, protocol.Records("one\x00two words\x00", "\x00"))
}

func TestFields(t *testing.T) {
	fields, err := protocol.Fields("a b c", " ", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b c"}, fields)

	_, err = protocol.Fields("abc", " ", 2)
	require.ErrorIs(t, err, gkerrors.ErrValidation)
	require.Contains(t, err.Error(), "abc")
}
