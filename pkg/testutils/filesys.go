package testutils

import (
	"github.com/mandelsoft/vfs/pkg/layerfs"
	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/projectionfs"
	"github.com/mandelsoft/vfs/pkg/readonlyfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

// TestFileSystem provides a filesystem rooted at the given
// os directory. Write operations are kept in memory, so
// the test data is never modified.
// If readonly is set, writes are rejected.
func TestFileSystem(path string, readonly bool) (vfs.FileSystem, error) {
	base, err := projectionfs.New(osfs.OsFs, path)
	if err != nil {
		return nil, err
	}
	if readonly {
		return readonlyfs.New(base), nil
	}
	return layerfs.New(memoryfs.New(), base), nil
}

// MemoryFileSystem provides an empty in-memory filesystem.
func MemoryFileSystem() vfs.FileSystem {
	return memoryfs.New()
}
