package filesystem

import (
	"io"
	"os"
)

// GacheFs satisfies gache.FileSystem on top of the active afero backend,
// so the on-disk caches follow whatever filesystem is currently selected.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
