package object

import (
	"fmt"
	"regexp"
	"strings"

	gkerrors "stackit.dev/gitkit/internal/errors"
)

// Tree mode constants in the six-digit form ls-tree prints.
const (
	ModeFile       = "100644"
	ModeExecutable = "100755"
	ModeSymlink    = "120000"
	ModeDir        = "040000"
	ModeSubmodule  = "160000"
)

// entryPattern matches one ls-tree row. The name is everything after the
// first tab, so it must be captured in the same pass as the other fields.
// (?s) lets NUL-terminated records carry newlines in the name.
var (
	entryPattern = regexp.MustCompile(`(?s)^([0-7]{6}) ([a-z]+) ([0-9a-f]{40})\t(.*)$`)
	modePattern  = regexp.MustCompile(`^[0-7]{6}$`)
)

// TreeEntry is one row of a tree listing.
type TreeEntry struct {
	// Mode is the six-digit octal mode. Empty means DefaultMode(Kind).
	Mode string
	Kind ObjectKind
	ID   string
	Name string
}

// EffectiveMode returns Mode, or the kind-dependent default when Mode is empty.
func (e TreeEntry) EffectiveMode() string {
	if e.Mode != "" {
		return e.Mode
	}
	return DefaultMode(e.Kind)
}

// ParseEntry decodes a single row of the form
//
//	MODE SP KIND SP OBJECTID TAB NAME
//
// A trailing newline is tolerated. There is no partial recovery: a row that
// does not match the grammar exactly is rejected whole.
func ParseEntry(line string) (TreeEntry, error) {
	row := strings.TrimSuffix(line, "\n")
	if strings.ContainsRune(row, '\n') {
		return TreeEntry{}, gkerrors.NewValidationError("malformed tree entry", line)
	}
	return decodeEntry(row, line)
}

// ParseRecord decodes one NUL-terminated record as written by ls-tree -z,
// with the terminator already removed. Git does not quote names in this
// form, so the name is taken byte for byte and may contain tabs or newlines.
func ParseRecord(record string) (TreeEntry, error) {
	if strings.ContainsRune(record, 0) {
		return TreeEntry{}, gkerrors.NewValidationError("malformed tree entry", record)
	}
	return decodeEntry(record, record)
}

func decodeEntry(row, input string) (TreeEntry, error) {
	m := entryPattern.FindStringSubmatch(row)
	if m == nil {
		return TreeEntry{}, gkerrors.NewValidationError("malformed tree entry", input)
	}
	kind, err := ParseKind(m[2])
	if err != nil {
		return TreeEntry{}, err
	}
	return TreeEntry{Mode: m[1], Kind: kind, ID: m[3], Name: m[4]}, nil
}

// FormatEntry encodes e as a newline-terminated row, the shape ls-tree
// prints and ParseEntry reads.
func FormatEntry(e TreeEntry) (string, error) {
	if err := validateEntry(e); err != nil {
		return "", err
	}
	if strings.ContainsRune(e.Name, '\n') {
		return "", gkerrors.NewValidationError("invalid entry name", e.Name)
	}
	return fmt.Sprintf("%s %s %s\t%s\n", e.EffectiveMode(), e.Kind, e.ID, e.Name), nil
}

// FormatRecord encodes e as a NUL-terminated record, the exact shape
// mktree -z reads on stdin. The name is written unquoted.
func FormatRecord(e TreeEntry) (string, error) {
	if err := validateEntry(e); err != nil {
		return "", err
	}
	if strings.ContainsRune(e.Name, 0) {
		return "", gkerrors.NewValidationError("invalid entry name", e.Name)
	}
	return fmt.Sprintf("%s %s %s\t%s\x00", e.EffectiveMode(), e.Kind, e.ID, e.Name), nil
}

func validateEntry(e TreeEntry) error {
	if e.Mode != "" && !modePattern.MatchString(e.Mode) {
		return gkerrors.NewValidationError("invalid mode", e.Mode)
	}
	if !e.Kind.Valid() {
		return gkerrors.NewValidationError("invalid object type", string(e.Kind))
	}
	if _, err := ValidateID(e.ID); err != nil {
		return err
	}
	if e.Name == "" {
		return gkerrors.NewValidationError("invalid entry name", e.Name)
	}
	return nil
}

// ParseTree decodes every row of a tree listing. Empty input yields no
// entries; the first malformed row aborts the decode.
func ParseTree(text string) ([]TreeEntry, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	rows := strings.Split(text, "\n")
	entries := make([]TreeEntry, 0, len(rows))
	for _, row := range rows {
		e, err := ParseEntry(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// FormatTree encodes entries as rows concatenated in order with no separator
// beyond each row's newline.
func FormatTree(entries []TreeEntry) (string, error) {
	var b strings.Builder
	for _, e := range entries {
		row, err := FormatEntry(e)
		if err != nil {
			return "", err
		}
		b.WriteString(row)
	}
	return b.String(), nil
}

// FormatRecords encodes entries as mktree -z input.
func FormatRecords(entries []TreeEntry) (string, error) {
	var b strings.Builder
	for _, e := range entries {
		rec, err := FormatRecord(e)
		if err != nil {
			return "", err
		}
		b.WriteString(rec)
	}
	return b.String(), nil
}
