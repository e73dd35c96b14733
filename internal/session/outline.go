package session

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/pagesmith/internal/document"
)

// Outline renders a document as stable plain text, one line per field, for
// diffing.
func Outline(w document.Website) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "site %s (%s)\n", w.Name(), w.Slug())

	settings := w.Settings()
	fmt.Fprintf(&sb, "  theme: %s %s %s %s\n",
		settings.Theme.Preset, settings.Theme.Mode, settings.Theme.PrimaryColor, settings.Theme.SecondaryColor)
	fmt.Fprintf(&sb, "  fonts: %s / %s\n", settings.Fonts.Heading, settings.Fonts.Body)
	if settings.SEO.Title != "" || settings.SEO.Description != "" {
		fmt.Fprintf(&sb, "  seo: %s | %s\n", settings.SEO.Title, settings.SEO.Description)
	}

	for _, b := range w.Blocks() {
		fmt.Fprintf(&sb, "#%d %s %s\n", b.Order+1, b.Type, b.ID)
		for _, f := range document.Fields(b.Content) {
			if isZero(f.Value) {
				continue
			}
			fmt.Fprintf(&sb, "  %s: %v\n", f.Key, f.Value)
		}
		var style []string
		for _, f := range document.StyleFields(b.Style) {
			if isZero(f.Value) {
				continue
			}
			style = append(style, fmt.Sprintf("%s=%v", f.Key, f.Value))
		}
		if len(style) > 0 {
			fmt.Fprintf(&sb, "  style: %s\n", strings.Join(style, " "))
		}
	}
	return sb.String()
}

// DiffOutlines returns the changed lines between from and to, prefixed with
// "- " or "+ ". Unchanged lines are omitted.
func DiffOutlines(from, to string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
		}
	}
	return sb.String()
}

func isZero(v any) bool {
	switch x := v.(type) {
	case string:
		return x == ""
	case int:
		return x == 0
	case bool:
		return !x
	case nil:
		return true
	default:
		return fmt.Sprint(v) == "[]"
	}
}
