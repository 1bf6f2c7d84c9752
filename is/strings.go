package is

import (
	"strings"

	"github.com/Neumenon/typeguard/value"
)

// EmptyString reports whether v is a string of white space only.
func EmptyString(v *value.Value) bool {
	s, err := v.AsString()
	return err == nil && value.TrimSpace(s) == ""
}

// Substring reports whether substr occurs in the string v at or after
// offset. A negative offset counts back from the end. Offsets outside the
// string after that adjustment never match. Offsets count characters.
func Substring(substr string, v *value.Value, offset int) bool {
	s, err := v.AsString()
	if err != nil {
		return false
	}
	runes := []rune(s)
	if offset < 0 {
		offset += len(runes)
	}
	if offset < 0 || offset >= len(runes) {
		return false
	}
	return strings.Contains(string(runes[offset:]), substr)
}

// Prefix reports whether the string or String wrapper v starts with
// prefix.
func Prefix(prefix string, v *value.Value) bool {
	s, ok := stringOf(v)
	return ok && strings.HasPrefix(s, prefix)
}

// Suffix reports whether the string or String wrapper v ends with suffix.
func Suffix(suffix string, v *value.Value) bool {
	s, ok := stringOf(v)
	return ok && strings.HasSuffix(s, suffix)
}

func stringOf(v *value.Value) (string, bool) {
	if s, err := v.AsString(); err == nil {
		return s, true
	}
	if o := v.Object(); o != nil && o.Class() == value.ClassString {
		s, err := o.Primitive().AsString()
		return s, err == nil
	}
	return "", false
}
