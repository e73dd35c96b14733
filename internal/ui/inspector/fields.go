package inspector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/zjrosen/pagesmith/internal/document"
)

// Section says which part of the subject a row edits.
type Section int

const (
	SectionContent Section = iota
	SectionStyle
	SectionSite
)

func (s Section) String() string {
	switch s {
	case SectionContent:
		return "Content"
	case SectionStyle:
		return "Style"
	default:
		return "Site"
	}
}

// row is one editable (or read-only) field.
type row struct {
	section Section
	key     string
	// group is the settings section ("theme", "fonts", "seo") for site
	// rows, empty for the site name and for block rows.
	group string
	value any
}

func (r row) label() string {
	if r.group != "" {
		return r.group + "." + r.key
	}
	return r.key
}

// kind reports how the row is edited.
func (r row) kind() fieldKind {
	switch v := r.value.(type) {
	case string:
		if r.key == "body" || strings.Contains(v, "\n") {
			return kindMultiline
		}
		return kindText
	case int:
		return kindText
	case bool:
		return kindToggle
	default:
		return kindReadOnly
	}
}

// partial builds the merge map that sets this row to v.
func (r row) partial(v any) map[string]any {
	if r.group != "" {
		return map[string]any{r.group: map[string]any{r.key: v}}
	}
	return map[string]any{r.key: v}
}

type fieldKind int

const (
	kindText fieldKind = iota
	kindMultiline
	kindToggle
	kindReadOnly
)

func blockRows(b document.Block) []row {
	var rows []row
	for _, f := range document.Fields(b.Content) {
		rows = append(rows, row{section: SectionContent, key: f.Key, value: f.Value})
	}
	for _, f := range document.StyleFields(b.Style) {
		rows = append(rows, row{section: SectionStyle, key: f.Key, value: f.Value})
	}
	return rows
}

func siteRows(w document.Website) []row {
	s := w.Settings()
	rows := []row{{section: SectionSite, key: "name", value: w.Name()}}
	add := func(group, key string, v any) {
		rows = append(rows, row{section: SectionSite, group: group, key: key, value: v})
	}
	add("theme", "preset", s.Theme.Preset)
	add("theme", "mode", s.Theme.Mode)
	add("theme", "primary_color", s.Theme.PrimaryColor)
	add("theme", "secondary_color", s.Theme.SecondaryColor)
	add("fonts", "heading", s.Fonts.Heading)
	add("fonts", "body", s.Fonts.Body)
	add("seo", "title", s.SEO.Title)
	add("seo", "description", s.SEO.Description)
	add("seo", "keywords", s.SEO.Keywords)
	add("seo", "og_image", s.SEO.OGImage)
	return rows
}

// formatValue renders a field value on one line.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		if x == "" {
			return "-"
		}
		if i := strings.IndexByte(x, '\n'); i >= 0 {
			return x[:i] + " ..."
		}
		return x
	case int:
		return strconv.Itoa(x)
	case bool:
		if x {
			return "yes"
		}
		return "no"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		if rv.Len() == 1 {
			return "1 item"
		}
		return fmt.Sprintf("%d items", rv.Len())
	}
	return fmt.Sprint(v)
}

// editValue is the initial text of an input for v.
func editValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(v)
	}
}
