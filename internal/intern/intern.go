// Package intern provides allocation-free single-character strings.
// Tokenizing clustered short flags slices one byte at a time; serving
// those slices from a precomputed table keeps the hot path off the
// allocator.
package intern

// Pre-allocated one-byte strings, one per possible byte value.
var chars [256]string

//nolint:gochecknoinits // the table must exist before any tokenizing
func init() {
	for i := range chars {
		chars[i] = string(rune(i))
	}
}

// Char returns the interned one-byte string for b.
func Char(b byte) string {
	return chars[b]
}
