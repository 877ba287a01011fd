package mounts

import (
	"errors"
	"fmt"
	"syscall"
)

// Kind identifies which step of an enumeration failed
type Kind int

const (
	// KindIO means the mount table could not be read
	KindIO Kind = iota
	// KindPathParse means a mount path carried a malformed escape sequence
	KindPathParse
	// KindStat means a filesystem statistics query failed
	KindStat
	// KindGetMntInfo means the batch statistics call failed
	KindGetMntInfo
	// KindUTF8 means a native byte string was not valid UTF-8
	KindUTF8
	// KindUTF16 means a native wide string was not valid UTF-16
	KindUTF16
	// KindVolumeIter means volume iteration failed
	KindVolumeIter
	// KindMountIter means listing the mount paths of a volume failed
	KindMountIter
)

var kindNames = map[Kind]string{
	KindIO:         "io",
	KindPathParse:  "path parse",
	KindStat:       "stat",
	KindGetMntInfo: "getmntinfo",
	KindUTF8:       "utf8",
	KindUTF16:      "utf16",
	KindVolumeIter: "volume iteration",
	KindMountIter:  "mount iteration",
}

// String returns a short name for the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error categories. Every *Error matches exactly one of these with errors.Is.
var (
	ErrSourceRead      = errors.New("mount source unreadable")
	ErrPathDecode      = errors.New("mount path undecodable")
	ErrStatisticsQuery = errors.New("filesystem statistics query failed")

	// ErrUnsupported is returned on targets without an enumeration engine.
	ErrUnsupported = errors.New("mount enumeration not supported on this platform")
)

// Category returns the category sentinel the kind belongs to
func (k Kind) Category() error {
	switch k {
	case KindIO, KindVolumeIter, KindMountIter, KindGetMntInfo:
		return ErrSourceRead
	case KindPathParse, KindUTF8, KindUTF16:
		return ErrPathDecode
	case KindStat:
		return ErrStatisticsQuery
	default:
		return nil
	}
}

// Error is the single error type returned by Paths and Infos.
type Error struct {
	Kind Kind
	// Path is the mount path or source the failure relates to, if any.
	Path string
	// Code is the raw errno or Win32 status, zero when not applicable.
	Code syscall.Errno
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	} else if e.Code != 0 {
		msg += fmt.Sprintf(": code %d", uintptr(e.Code))
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the category sentinel of e.
func (e *Error) Is(target error) bool {
	cat := e.Kind.Category()
	return cat != nil && target == cat
}

// newError builds an *Error, lifting an errno out of err when there is one.
func newError(kind Kind, path string, err error) *Error {
	e := &Error{Kind: kind, Path: path, Err: err}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		e.Code = errno
	}
	return e
}
