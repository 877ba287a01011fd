package mounts

import (
	"bytes"
	"errors"
	"fmt"
)

var errTruncatedEscape = errors.New("escape sequence truncated")

// unescape decodes the octal escapes the kernel writes into mount table
// fields. Every backslash must be followed by exactly three octal digits
// encoding a byte (000-377). Other bytes are copied as they are, and the
// result is not required to be valid UTF-8.
func unescape(raw []byte) ([]byte, error) {
	first := bytes.IndexByte(raw, '\\')
	if first < 0 {
		return raw, nil
	}

	out := make([]byte, 0, len(raw))
	out = append(out, raw[:first]...)
	for i := first; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		if len(raw)-i-1 < 3 {
			return nil, newError(KindPathParse, string(raw), errTruncatedEscape)
		}
		d0, d1, d2 := raw[i+1], raw[i+2], raw[i+3]
		if d0 < '0' || d0 > '3' || !isOctal(d1) || !isOctal(d2) {
			return nil, newError(KindPathParse, string(raw),
				fmt.Errorf("invalid escape %q", raw[i:i+4]))
		}
		out = append(out, (d0-'0')<<6|(d1-'0')<<3|(d2-'0'))
		i += 3
	}
	return out, nil
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
