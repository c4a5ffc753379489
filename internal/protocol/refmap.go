package protocol

// RefMapping maps a ref name to the object id it points at.
type RefMapping map[string]string

// ReverseIndex builds a RefMapping from "VALUE KEY" rows, the native order of
// show-ref and ls-remote. Each row is split at its first space only and the
// halves are swapped. Later rows overwrite earlier ones with the same key. A
// row without a space is rejected.
func ReverseIndex(text string) (RefMapping, error) {
	refs := RefMapping{}
	for _, line := range Lines(text) {
		fields, err := Fields(line, " ", 2)
		if err != nil {
			return nil, err
		}
		refs[fields[1]] = fields[0]
	}
	return refs, nil
}
