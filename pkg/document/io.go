package document

import (
	"fmt"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/vfs"
)

// Write encodes a document and stores it in a file.
// Missing parent directories are created.
func Write(fs vfs.FileSystem, path string, doc *Document, format Format) error {
	data, err := Encode(doc, format)
	if err != nil {
		return err
	}
	err = fs.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return err
	}
	err = vfs.WriteFile(fs, path, data, 0o644)
	if err != nil {
		return err
	}
	log.Debug("document written to {{path}}", "path", path, "format", format)
	return nil
}

// Read decodes the document stored in a file.
func Read(fs vfs.FileSystem, path string) (*Document, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
