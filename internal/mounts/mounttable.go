package mounts

import (
	"bufio"
	"bytes"
	"io"
)

// tableEntry is one line of a mount table after decoding
type tableEntry struct {
	device string
	path   string
	fstype string // "" when the line has no type field
}

// parseMountTable reads a mount table in the /proc/mounts text format and
// calls fn for every usable line in order. Comment lines, blank lines and
// lines with fewer than two fields are skipped. An error from fn stops the
// walk and is returned as is.
func parseMountTable(r io.Reader, fn func(tableEntry) error) error {
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			return newError(KindIO, "", readErr)
		}
		if err := parseMountLine(line, fn); err != nil {
			return err
		}
		if readErr == io.EOF {
			return nil
		}
	}
}

func parseMountLine(line []byte, fn func(tableEntry) error) error {
	line = bytes.TrimRight(line, "\r\n")
	if len(line) == 0 || line[0] == '#' {
		return nil
	}
	fields := bytes.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
	if len(fields) < 2 {
		return nil
	}

	path, err := unescape(fields[1])
	if err != nil {
		return err
	}
	entry := tableEntry{path: string(path)}

	// The device is informational, so a badly escaped one is kept verbatim.
	if dev, err := unescape(fields[0]); err == nil {
		entry.device = string(dev)
	} else {
		entry.device = string(fields[0])
	}
	if len(fields) > 2 {
		entry.fstype = string(fields[2])
	}
	return fn(entry)
}
