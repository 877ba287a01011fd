package mounts

import (
	"bytes"
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	errInvalidUTF8  = errors.New("invalid utf-8 sequence")
	errInvalidUTF16 = errors.New("unpaired utf-16 surrogate")
)

// cString returns the bytes of a fixed-size C string field up to the first
// NUL, or the whole field when it has no terminator.
func cString(field []byte) []byte {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		return field[:i]
	}
	return field
}

// decodeUTF8 turns a fixed-size C string field into a Go string
func decodeUTF8(field []byte) (string, error) {
	s := cString(field)
	if !utf8.Valid(s) {
		return "", newError(KindUTF8, "", errInvalidUTF8)
	}
	return string(s), nil
}

// wideString returns the UTF-16 units of buf up to the first NUL
func wideString(buf []uint16) []uint16 {
	for i, c := range buf {
		if c == 0 {
			return buf[:i]
		}
	}
	return buf
}

// decodeUTF16 converts UTF-16 text to a string, rejecting unpaired
// surrogates instead of substituting U+FFFD.
func decodeUTF16(s []uint16) (string, error) {
	for i := 0; i < len(s); i++ {
		c := rune(s[i])
		if !utf16.IsSurrogate(c) {
			continue
		}
		// high surrogates are 0xD800-0xDBFF and need a low one after them
		if c >= 0xDC00 || i+1 >= len(s) || utf16.DecodeRune(c, rune(s[i+1])) == utf8.RuneError {
			return "", newError(KindUTF16, "", errInvalidUTF16)
		}
		i++
	}
	return string(utf16.Decode(s)), nil
}

// splitMultiString splits a list of NUL-terminated strings ended by an
// empty string, as returned by the Win32 multi-string APIs.
func splitMultiString(buf []uint16) [][]uint16 {
	var out [][]uint16
	for len(buf) > 0 {
		s := wideString(buf)
		if len(s) == 0 {
			break
		}
		out = append(out, s)
		if len(s) == len(buf) {
			break
		}
		buf = buf[len(s)+1:]
	}
	return out
}

// sizedQuery fills buf, or fails and stores the buffer length it needs
// in *need.
type sizedQuery func(buf []uint16, need *uint32) error

// queryGrowable runs q with an initial buffer and, when q reports the buffer
// is too small via tooSmall, runs it once more with a buffer of the length q
// asked for.
func queryGrowable(initial int, tooSmall error, q sizedQuery) ([]uint16, error) {
	buf := make([]uint16, initial)
	need := uint32(len(buf))
	err := q(buf, &need)
	if err != nil && errors.Is(err, tooSmall) && int(need) > len(buf) {
		buf = make([]uint16, need)
		err = q(buf, &need)
	}
	if err != nil {
		return nil, err
	}
	return buf, nil
}
