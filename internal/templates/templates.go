// Package templates loads site templates: YAML descriptions of a starting
// website (settings plus an ordered list of blocks). Built-in templates are
// embedded; users can point the editor at their own file.
package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/pagesmith/internal/blocks"
	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/shared"
)

// ErrTemplateNotFound is returned when no built-in template has the
// requested id.
var ErrTemplateNotFound = errors.New("template not found")

// DefaultTemplate is used when no template is configured.
const DefaultTemplate = "blank"

//go:embed sites/*.yaml
var builtinSites embed.FS

// Source records where a template came from.
type Source string

const (
	SourceBuiltIn Source = "builtin"
	SourceFile    Source = "file"
)

// BlockSpec is one block of a template. Content and Style are partial maps
// merged over the block type's defaults.
type BlockSpec struct {
	Type    string         `yaml:"type"`
	Content map[string]any `yaml:"content"`
	Style   map[string]any `yaml:"style"`
}

// Template describes a starting website.
type Template struct {
	ID          string         `yaml:"-"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Category    string         `yaml:"category"`
	SiteName    string         `yaml:"site_name"`
	Slug        string         `yaml:"slug"`
	Settings    map[string]any `yaml:"settings"`
	Blocks      []BlockSpec    `yaml:"blocks"`

	Source   Source `yaml:"-"`
	FilePath string `yaml:"-"`
}

// Parse decodes a template. id names it when the file does not carry a slug.
func Parse(data []byte, id string) (Template, error) {
	var tpl Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tpl); err != nil {
		return Template{}, fmt.Errorf("parsing template %s: %w", id, err)
	}
	if tpl.Name == "" {
		return Template{}, fmt.Errorf("template %s: missing required field: name", id)
	}
	for i, spec := range tpl.Blocks {
		if _, err := document.ParseBlockType(spec.Type); err != nil {
			return Template{}, fmt.Errorf("template %s: block %d: %w", id, i, err)
		}
	}
	tpl.ID = id
	if tpl.Slug == "" {
		tpl.Slug = id
	}
	if tpl.SiteName == "" {
		tpl.SiteName = tpl.Name
	}
	return tpl, nil
}

// List returns the built-in templates sorted by id.
func List() ([]Template, error) {
	entries, err := fs.ReadDir(builtinSites, "sites")
	if err != nil {
		return nil, fmt.Errorf("reading templates: %w", err)
	}

	var out []Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		tpl, err := loadBuiltin(strings.TrimSuffix(entry.Name(), ".yaml"))
		if err != nil {
			return nil, err
		}
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Load returns the built-in template with the given id.
func Load(id string) (Template, error) {
	if id == "" {
		id = DefaultTemplate
	}
	tpl, err := loadBuiltin(id)
	if errors.Is(err, fs.ErrNotExist) {
		return Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return tpl, err
}

func loadBuiltin(id string) (Template, error) {
	// path.Join, not filepath.Join: embedded paths always use forward slashes.
	data, err := fs.ReadFile(builtinSites, path.Join("sites", id+".yaml"))
	if err != nil {
		return Template{}, err
	}
	tpl, err := Parse(data, id)
	if err != nil {
		return Template{}, err
	}
	tpl.Source = SourceBuiltIn
	return tpl, nil
}

// LoadFile reads a user template from disk.
func LoadFile(filePath string) (Template, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: path comes from the --file flag
	if err != nil {
		return Template{}, fmt.Errorf("reading template: %w", err)
	}
	id := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	tpl, err := Parse(data, id)
	if err != nil {
		return Template{}, err
	}
	tpl.Source = SourceFile
	tpl.FilePath = filePath
	return tpl, nil
}

// Build creates a fresh website from tpl. Every block starts from the
// registry defaults for its type with the template's content and style
// merged on top.
func Build(tpl Template, reg *blocks.Registry, ids shared.IDGenerator) (document.Website, error) {
	doc := document.New(ids.NewID(), tpl.Slug, tpl.SiteName)

	if len(tpl.Settings) > 0 {
		next, _, err := doc.UpdateSettings(tpl.Settings)
		if err != nil {
			return document.Website{}, fmt.Errorf("template %s: settings: %w", tpl.ID, err)
		}
		doc = next
	}

	for i, spec := range tpl.Blocks {
		bt, err := document.ParseBlockType(spec.Type)
		if err != nil {
			return document.Website{}, fmt.Errorf("template %s: block %d: %w", tpl.ID, i, err)
		}
		b := reg.NewBlock(bt, ids.NewID())
		if b.Content, err = document.MergeContent(b.Content, spec.Content); err != nil {
			return document.Website{}, fmt.Errorf("template %s: block %d content: %w", tpl.ID, i, err)
		}
		if b.Style, err = document.MergeStyle(b.Style, spec.Style); err != nil {
			return document.Website{}, fmt.Errorf("template %s: block %d style: %w", tpl.ID, i, err)
		}
		doc, _ = doc.Append(b)
	}

	log.Debug(log.CatTemplate, "built template", "template", tpl.ID, "blocks", doc.Len())
	return doc, nil
}
