// Package fixedstr
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity strings over caller- or constructor-provided byte storage.
// A String never grows past its capacity; text that does not fit is
// truncated on a UTF-8 rune boundary.

package fixedstr

import (
	"unicode/utf8"
)

// String is a byte string with fixed capacity. Copies of a String share
// storage.
type String struct {
	buf []byte
}

// New returns an empty String with its own storage of capacity bytes.
func New(capacity int) String {
	return String{buf: make([]byte, 0, capacity)}
}

// From returns a String of the given capacity holding text, truncated.
func From(capacity int, text string) String {
	s := New(capacity)
	s.Set(text)
	return s
}

// Wrap returns an empty String using storage as backing memory. The
// capacity is len(storage); its bytes are left untouched until written.
func Wrap(storage []byte) String {
	return String{buf: storage[:0:len(storage)]}
}

// Set replaces the content with text and reports whether text had to be
// truncated.
func (s *String) Set(text string) bool {
	n := fit(text, cap(s.buf))
	s.buf = append(s.buf[:0], text[:n]...)
	return n < len(text)
}

// fit returns the longest prefix length of text that holds in limit bytes
// without splitting a rune.
func fit(text string, limit int) int {
	if len(text) <= limit {
		return len(text)
	}
	n := limit
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return n
}

// String returns the content.
func (s String) String() string { return string(s.buf) }

// Bytes returns the content without copying.
func (s String) Bytes() []byte { return s.buf }

// Len returns the content length in bytes.
func (s String) Len() int { return len(s.buf) }

// Cap returns the capacity in bytes.
func (s String) Cap() int { return cap(s.buf) }

// IsEmpty reports whether Len() == 0.
func (s String) IsEmpty() bool { return len(s.buf) == 0 }

// Equal compares contents, ignoring capacity.
func (s String) Equal(o String) bool { return string(s.buf) == string(o.buf) }
