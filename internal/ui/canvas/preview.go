package canvas

import (
	"context"
	"fmt"
	"hash/fnv"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/pagesmith/internal/cachemanager"
	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/ui/markdown"
	"github.com/zjrosen/pagesmith/internal/ui/styles"
)

// PreviewTTL is how long a rendered card body stays cached without use.
const PreviewTTL = 10 * time.Minute

type previewInput struct {
	block document.Block
	width int
}

// previewer renders the body lines of block cards. Results are cached by
// content fingerprint and width, so unchanged blocks are not re-rendered on
// every frame.
type previewer struct {
	style string
	cache *cachemanager.ReadThroughCache[string, string, previewInput]

	mu        sync.Mutex
	renderers map[int]*markdown.Renderer
}

func newPreviewer(cache cachemanager.CacheManager[string, string], style string) *previewer {
	p := &previewer{style: style, renderers: make(map[int]*markdown.Renderer)}
	// Sliding expiry keeps on-screen cards warm.
	p.cache = cachemanager.NewReadThroughCache[string, string, previewInput](cache, p.render, true)
	return p
}

// Body returns the card body for b at the given inner width.
func (p *previewer) Body(b document.Block, width int) string {
	in := previewInput{block: b, width: width}
	out, err := p.cache.Get(context.Background(), previewKey(b, width, p.style), in, PreviewTTL)
	if err != nil {
		log.ErrorErr(log.CatUI, "preview render failed", err, "block", b.ID)
		return summary(b, width)
	}
	return out
}

// Invalidate drops every cached preview.
func (p *previewer) Invalidate() {
	if err := p.cache.Invalidate(context.Background()); err != nil {
		log.ErrorErr(log.CatCache, "preview cache flush failed", err)
	}
}

func (p *previewer) render(_ context.Context, in previewInput) (string, error) {
	text, ok := in.block.Content.(*document.TextContent)
	if !ok || strings.TrimSpace(text.Body) == "" {
		return summary(in.block, in.width), nil
	}
	r, err := p.renderer(in.width)
	if err != nil {
		return "", err
	}
	out, err := r.Render(text.Body)
	if err != nil {
		return "", fmt.Errorf("render text block %s: %w", in.block.ID, err)
	}
	return clip(out, bodyLines, in.width), nil
}

func (p *previewer) renderer(width int) (*markdown.Renderer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if r, ok := p.renderers[width]; ok {
		return r, nil
	}
	r, err := markdown.New(width, p.style)
	if err != nil {
		return nil, err
	}
	p.renderers[width] = r
	return r, nil
}

// previewKey fingerprints everything a card body depends on.
func previewKey(b document.Block, width int, style string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%v", b.Type, document.Fields(b.Content))
	return fmt.Sprintf("%s:%d:%s:%016x", style, width, b.Type, h.Sum64())
}

// summary describes non-markdown content: the first text field as a headline,
// then the remaining populated fields.
func summary(b document.Block, width int) string {
	var headline string
	var details []string
	for _, f := range document.Fields(b.Content) {
		switch v := f.Value.(type) {
		case string:
			if v == "" {
				continue
			}
			if headline == "" {
				headline = styles.FirstLine(v)
				continue
			}
			details = append(details, fmt.Sprintf("%s: %s", f.Key, styles.FirstLine(v)))
		case bool:
			if v {
				details = append(details, f.Key)
			}
		case int:
			if v != 0 {
				details = append(details, fmt.Sprintf("%s: %d", f.Key, v))
			}
		default:
			rv := reflect.ValueOf(v)
			if rv.Kind() == reflect.Slice && rv.Len() > 0 {
				details = append(details, fmt.Sprintf("%d %s", rv.Len(), f.Key))
			}
		}
	}
	if headline == "" && len(details) == 0 {
		return "(empty)"
	}

	var lines []string
	if headline != "" {
		lines = append(lines, headline)
	}
	if len(details) > 0 {
		lines = append(lines, wordwrap.String(strings.Join(details, " · "), width))
	}
	return clip(strings.Join(lines, "\n"), bodyLines, width)
}

// clip keeps at most n lines, each truncated to width.
func clip(s string, n, width int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for i, line := range lines {
		lines[i] = styles.TruncateString(line, width)
	}
	return strings.Join(lines, "\n")
}

// styleLine summarizes a block's style on one line.
func styleLine(s document.Style) string {
	var parts []string
	for _, f := range document.StyleFields(s) {
		if v, ok := f.Value.(string); ok && v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " · ")
}
