package kwargs

import "strings"

// MissingKeywordError reports a required keyword absent from the mapping.
// It carries only the first missing key found in schema order; the required
// pass stops at the first miss.
type MissingKeywordError struct {
	Keys []Key // the missing key(s), in the order discovered
}

// Error implements the error interface.
func (e *MissingKeywordError) Error() string {
	return keywordMessage("missing", e.Keys)
}

// UnknownKeywordError reports keys left in the mapping that the schema does
// not declare, raised when the schema does not allow rest keys.
type UnknownKeywordError struct {
	Keys []Key // the unrecognized keys, in mapping order
}

// Error implements the error interface.
func (e *UnknownKeywordError) Error() string {
	return keywordMessage("unknown", e.Keys)
}

// NewMissingKeywordError creates a new MissingKeywordError for a single key.
func NewMissingKeywordError(key Key) *MissingKeywordError {
	return &MissingKeywordError{Keys: []Key{key}}
}

// NewUnknownKeywordError creates a new UnknownKeywordError.
func NewUnknownKeywordError(keys []Key) *UnknownKeywordError {
	return &UnknownKeywordError{Keys: keys}
}

// keywordMessage builds "<kind> keyword<s>: k1, k2". The trailing "s"
// appears only when there is more than one key; the colon and list are
// omitted entirely when keys is empty.
func keywordMessage(kind string, keys []Key) string {
	var sb strings.Builder
	sb.WriteString(kind)
	sb.WriteString(" keyword")
	if len(keys) > 1 {
		sb.WriteByte('s')
	}
	for i, k := range keys {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(string(k))
	}
	return sb.String()
}
