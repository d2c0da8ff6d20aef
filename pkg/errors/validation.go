package errors

import (
	"unicode"
	"unicode/utf8"
)

// MaxStateID bounds state identifiers accepted from external input.
const MaxStateID = 1<<31 - 1

// ValidateStateID checks that id can identify a state.
func ValidateStateID(id int64) error {
	if id < 0 {
		return New(ErrCodeInvalidState, "state %d: identifiers must be non-negative", id)
	}
	if id > MaxStateID {
		return New(ErrCodeInvalidState, "state %d: identifier too large (max %d)", id, MaxStateID)
	}
	return nil
}

// ValidateWord rejects words containing control characters. Whitespace and
// symbols outside an alphabet are accepted: they are simply not matched.
func ValidateWord(word string) error {
	if !utf8.ValidString(word) {
		return New(ErrCodeInvalidInput, "word %q is not valid UTF-8", word)
	}
	for _, r := range word {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "word %q contains control characters", word)
		}
	}
	return nil
}
