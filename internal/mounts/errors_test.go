package mounts

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		kind Kind
		want error
	}{
		{KindIO, ErrSourceRead},
		{KindVolumeIter, ErrSourceRead},
		{KindMountIter, ErrSourceRead},
		{KindGetMntInfo, ErrSourceRead},
		{KindPathParse, ErrPathDecode},
		{KindUTF8, ErrPathDecode},
		{KindUTF16, ErrPathDecode},
		{KindStat, ErrStatisticsQuery},
	}

	all := []error{ErrSourceRead, ErrPathDecode, ErrStatisticsQuery}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := error(&Error{Kind: tt.kind})
			for _, cat := range all {
				assert.Equal(t, cat == tt.want, errors.Is(err, cat), "category %v", cat)
			}
			assert.False(t, errors.Is(err, ErrUnsupported))
		})
	}
}

func TestNewErrorKeepsErrno(t *testing.T) {
	err := newError(KindStat, "/mnt/gone", syscall.ENOENT)
	assert.Equal(t, syscall.ENOENT, err.Code)
	assert.ErrorIs(t, err, syscall.ENOENT)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorIs(t, err, ErrStatisticsQuery)

	wrapped := newError(KindIO, "/proc/mounts", &fs.PathError{Op: "open", Path: "/proc/mounts", Err: syscall.EACCES})
	assert.Equal(t, syscall.EACCES, wrapped.Code)
}

func TestNewErrorWithoutErrno(t *testing.T) {
	err := newError(KindPathParse, `/mnt/\9`, errTruncatedEscape)
	assert.Zero(t, err.Code)
	assert.Equal(t, `path parse /mnt/\9: escape sequence truncated`, err.Error())
}

func TestErrorMessageWithCodeOnly(t *testing.T) {
	err := &Error{Kind: KindVolumeIter, Code: 21}
	assert.Equal(t, "volume iteration: code 21", err.Error())
}

func TestErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("list mounts: %w", newError(KindGetMntInfo, "", syscall.EFAULT))
	var merr *Error
	assert.True(t, errors.As(err, &merr))
	assert.Equal(t, KindGetMntInfo, merr.Kind)
	assert.ErrorIs(t, err, ErrSourceRead)
}

func TestUnknownKind(t *testing.T) {
	assert.Equal(t, "kind(99)", Kind(99).String())
	assert.Nil(t, Kind(99).Category())
	assert.False(t, errors.Is(&Error{Kind: Kind(99)}, ErrSourceRead))
}
