// Package export writes a site document as JSON and reads exported files back.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/log"
)

// Encode renders doc as indented JSON with a trailing newline.
func Encode(doc document.Website) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode site %s: %w", doc.ID(), err)
	}
	return buf.Bytes(), nil
}

// Write encodes doc to w.
func Write(w io.Writer, doc document.Website) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile encodes doc to path. The file is replaced atomically, so a
// watcher or a browser reloading it never sees a partial write.
func WriteFile(path string, doc document.Website) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	temp, err := os.CreateTemp(dir, ".pagesmith-export.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()
	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	log.Info(log.CatExport, "exported", "path", path, "blocks", doc.Len(), "bytes", len(data))
	return nil
}

// Read decodes an exported document. Blocks are renumbered by their order
// field and the result is validated.
func Read(r io.Reader) (document.Website, error) {
	var doc document.Website
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return document.Website{}, err
	}
	if err := doc.Validate(); err != nil {
		return document.Website{}, fmt.Errorf("invalid site: %w", err)
	}
	return doc, nil
}

// ReadFile decodes the exported document at path.
func ReadFile(path string) (document.Website, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return document.Website{}, err
	}
	defer func() { _ = f.Close() }()

	doc, err := Read(f)
	if err != nil {
		return document.Website{}, fmt.Errorf("read %s: %w", path, err)
	}
	return doc, nil
}

// BlockJSON renders one block as indented JSON, for copying to the system
// clipboard.
func BlockJSON(b document.Block) (string, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
