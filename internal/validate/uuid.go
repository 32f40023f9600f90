package validate

import "regexp"

// uuidPattern is the canonical 8-4-4-4-12 hexadecimal form. The
// upstream rejects every other UUID spelling (braced, urn-prefixed,
// undashed), so a strict pattern is used instead of a parser that
// accepts those variants.
var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// IsUUID reports whether s is a canonical UUID, case-insensitively.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	return uuidPattern.MatchString(lowerASCII(s))
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// UUIDField validates a single required UUID field.
func UUIDField(field, value string) *Result {
	res := newResult()
	if value == "" {
		res.errorf("%s is required", field)
		return res
	}
	if !IsUUID(value) {
		res.errorf("%s is not a valid UUID: %s", field, value)
	}
	return res
}

// UUIDList validates a required UUID array: non-empty, at most max
// entries, no duplicates, every entry canonical.
func UUIDList(field string, values []string, max int) *Result {
	res := newResult()
	if len(values) == 0 {
		res.errorf("%s must contain at least one UUID", field)
		return res
	}
	if len(values) > max {
		res.errorf("%s must not contain more than %d UUIDs", field, max)
	}
	seen := make(map[string]bool, len(values))
	for i, v := range values {
		if !IsUUID(v) {
			res.errorf("%s[%d] is not a valid UUID: %s", field, i, v)
			continue
		}
		key := lowerASCII(v)
		if seen[key] {
			res.errorf("%s contains duplicate UUID: %s", field, v)
		}
		seen[key] = true
	}
	return res
}
