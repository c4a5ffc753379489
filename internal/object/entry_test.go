package object_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	gkerrors "stackit.dev/gitkit/internal/errors"
	"stackit.dev/gitkit/internal/object"
)

const (
	emptyBlob = "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"
	someTree  = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"
)

func TestParseEntry(t *testing.T) {
	t.Run("decodes a blob row", func(t *testing.T) {
		e, err := object.ParseEntry("100644 blob " + emptyBlob + "\tREADME.md")
		require.NoError(t, err)
		require.Equal(t, object.TreeEntry{
			Mode: "100644",
			Kind: object.KindBlob,
			ID:   emptyBlob,
			Name: "README.md",
		}, e)
	})

	t.Run("name keeps spaces and later tabs", func(t *testing.T) {
		e, err := object.ParseEntry("040000 tree " + someTree + "\tmy dir\twith tab\n")
		require.NoError(t, err)
		require.Equal(t, "my dir\twith tab", e.Name)
		require.Equal(t, object.KindTree, e.Kind)
	})

	t.Run("rejects malformed rows whole", func(t *testing.T) {
		for _, row := range []string{
			"",
			"100644 blob " + emptyBlob + " README.md",
			"10644 blob " + emptyBlob + "\tREADME.md",
			"100644 BLOB " + emptyBlob + "\tREADME.md",
			"100644 blob " + strings.ToUpper(emptyBlob) + "\tREADME.md",
			"100644 blob " + emptyBlob[:39] + "\tREADME.md",
			"100644  blob " + emptyBlob + "\tREADME.md",
			"100648 blob " + emptyBlob + "\tREADME.md",
			"100644 blob " + emptyBlob + "\tsplit\nname",
		} {
			_, err := object.ParseEntry(row)
			require.ErrorIs(t, err, gkerrors.ErrValidation, row)
		}
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := object.ParseEntry("100644 file " + emptyBlob + "\tREADME.md")
		require.ErrorIs(t, err, gkerrors.ErrValidation)
		require.Contains(t, err.Error(), "invalid object type")
	})
}

func TestFormatEntry(t *testing.T) {
	t.Run("uses explicit mode", func(t *testing.T) {
		row, err := object.FormatEntry(object.TreeEntry{Mode: "100755", Kind: object.KindBlob, ID: emptyBlob, Name: "run.sh"})
		require.NoError(t, err)
		require.Equal(t, "100755 blob "+emptyBlob+"\trun.sh\n", row)
	})

	t.Run("defaults mode by kind", func(t *testing.T) {
		row, err := object.FormatEntry(object.TreeEntry{Kind: object.KindBlob, ID: emptyBlob, Name: "a"})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(row, "100644 blob "))

		row, err = object.FormatEntry(object.TreeEntry{Kind: object.KindTree, ID: someTree, Name: "d"})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(row, "040000 tree "))
	})

	t.Run("rejects invalid kind id and name", func(t *testing.T) {
		_, err := object.FormatEntry(object.TreeEntry{Kind: "file", ID: emptyBlob, Name: "a"})
		require.ErrorIs(t, err, gkerrors.ErrValidation)
		require.Contains(t, err.Error(), "invalid object type")

		_, err = object.FormatEntry(object.TreeEntry{Kind: object.KindBlob, ID: "abc", Name: "a"})
		require.ErrorIs(t, err, gkerrors.ErrValidation)

		_, err = object.FormatEntry(object.TreeEntry{Kind: object.KindBlob, ID: emptyBlob, Name: "a\nb"})
		require.ErrorIs(t, err, gkerrors.ErrValidation)
	})

	t.Run("rejects modes that are not six octal digits", func(t *testing.T) {
		for _, mode := range []string{"abc", "10064", "1006444", "100648", "100 44"} {
			_, err := object.FormatEntry(object.TreeEntry{Mode: mode, Kind: object.KindBlob, ID: emptyBlob, Name: "a"})
			require.ErrorIs(t, err, gkerrors.ErrValidation, mode)
			require.Contains(t, err.Error(), "invalid mode")

			_, err = object.FormatRecord(object.TreeEntry{Mode: mode, Kind: object.KindBlob, ID: emptyBlob, Name: "a"})
			require.ErrorIs(t, err, gkerrors.ErrValidation, mode)
		}
	})
}

func TestEntryRoundTrip(t *testing.T) {
	entries := []object.TreeEntry{
		{Mode: "100644", Kind: object.KindBlob, ID: emptyBlob, Name: "README.md"},
		{Mode: "100755", Kind: object.KindBlob, ID: emptyBlob, Name: "bin/run me"},
		{Mode: "040000", Kind: object.KindTree, ID: someTree, Name: "docs"},
		{Mode: "160000", Kind: object.KindCommit, ID: emptyBlob, Name: "vendor\tlib"},
		{Mode: "120000", Kind: object.KindBlob, ID: emptyBlob, Name: "link"},
	}

	for _, e := range entries {
		row, err := object.FormatEntry(e)
		require.NoError(t, err)
		decoded, err := object.ParseEntry(row)
		require.NoError(t, err)
		require.Equal(t, e, decoded)

		again, err := object.FormatEntry(decoded)
		require.NoError(t, err)
		require.Equal(t, row, again)
	}
}

func TestTreeRoundTrip(t *testing.T) {
	entries := []object.TreeEntry{
		{Mode: "100644", Kind: object.KindBlob, ID: emptyBlob, Name: "a"},
		{Mode: "040000", Kind: object.KindTree, ID: someTree, Name: "b"},
	}

	text, err := object.FormatTree(entries)
	require.NoError(t, err)
	require.Equal(t, "100644 blob "+emptyBlob+"\ta\n040000 tree "+someTree+"\tb\n", text)

	decoded, err := object.ParseTree(text)
	require.NoError(t, err)
	if diff := cmp.Diff(entries, decoded); diff != "" {
		t.Errorf("ParseTree() mismatch (-want +got):\n%s", diff)
	}

	empty, err := object.ParseTree("")
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = object.ParseTree(text + "garbage\n")
	require.ErrorIs(t, err, gkerrors.ErrValidation)
}

func TestRecordRoundTrip(t *testing.T) {
	entries := []object.TreeEntry{
		{Mode: "100644", Kind: object.KindBlob, ID: emptyBlob, Name: "\"quoted\""},
		{Mode: "100644", Kind: object.KindBlob, ID: emptyBlob, Name: "café.txt"},
		{Mode: "100644", Kind: object.KindBlob, ID: emptyBlob, Name: "tab\there"},
		{Mode: "040000", Kind: object.KindTree, ID: someTree, Name: "new\nline"},
	}

	payload, err := object.FormatRecords(entries)
	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(payload, "\x00"))
	require.True(t, strings.HasSuffix(payload, "\x00"))

	decoded := make([]object.TreeEntry, 0, len(entries))
	for _, rec := range strings.Split(strings.TrimSuffix(payload, "\x00"), "\x00") {
		e, err := object.ParseRecord(rec)
		require.NoError(t, err)
		decoded = append(decoded, e)
	}
	if diff := cmp.Diff(entries, decoded); diff != "" {
		t.Errorf("ParseRecord() mismatch (-want +got):\n%s", diff)
	}

	t.Run("rejects NUL in names", func(t *testing.T) {
		_, err := object.FormatRecord(object.TreeEntry{Kind: object.KindBlob, ID: emptyBlob, Name: "a\x00b"})
		require.ErrorIs(t, err, gkerrors.ErrValidation)

		_, err = object.ParseRecord("100644 blob " + emptyBlob + "\ta\x00b")
		require.ErrorIs(t, err, gkerrors.ErrValidation)
	})

	t.Run("rejects malformed records", func(t *testing.T) {
		_, err := object.ParseRecord("100644 blob " + emptyBlob + " a")
		require.ErrorIs(t, err, gkerrors.ErrValidation)
	})
}
