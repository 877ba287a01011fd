//go:build !linux && !darwin && !windows

package mounts

func paths(_ *config) ([]string, error) {
	return nil, ErrUnsupported
}

func infos(_ *config) ([]MountInfo, error) {
	return nil, ErrUnsupported
}
