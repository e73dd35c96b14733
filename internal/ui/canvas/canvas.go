// Package canvas draws the document as a vertical stack of block cards and
// maps mouse positions back to blocks.
package canvas

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/pagesmith/internal/blocks"
	"github.com/zjrosen/pagesmith/internal/cachemanager"
	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/ui/styles"
)

const (
	// bodyLines is the number of content lines inside a card.
	bodyLines = 2
	// CardHeight is the outer height of a card: borders, body, style line.
	CardHeight = bodyLines + 3

	zonePrefix = "block:"
)

// ZoneID is the bubblezone id of the card for blockID.
func ZoneID(blockID string) string {
	return zonePrefix + blockID
}

// Model holds the canvas state. Block data is pushed in with SetBlocks; the
// canvas never mutates the document.
type Model struct {
	registry *blocks.Registry
	preview  *previewer

	blocks     []document.Block
	selectedID string
	dropTarget string
	clipboard  string
	dragging   string

	width  int
	height int
	offset int
}

// New creates a canvas. cache stores rendered card bodies and may be nil to
// render every frame. markdownStyle is a glamour style name.
func New(reg *blocks.Registry, cache cachemanager.CacheManager[string, string], markdownStyle string) Model {
	return Model{
		registry: reg,
		preview:  newPreviewer(cache, markdownStyle),
	}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	if width != m.width {
		// Bodies are cached per width; old widths are dead weight.
		m.preview.Invalidate()
	}
	m.width = width
	m.height = height
	return m.ensureVisible()
}

// SetBlocks replaces the displayed blocks.
func (m Model) SetBlocks(bs []document.Block) Model {
	m.blocks = bs
	return m.ensureVisible()
}

// SetSelected highlights id and scrolls it into view.
func (m Model) SetSelected(id string) Model {
	m.selectedID = id
	return m.ensureVisible()
}

// SetDropTarget highlights the block a drag would drop onto.
func (m Model) SetDropTarget(id string) Model {
	m.dropTarget = id
	return m
}

// SetClipboard marks the block whose copy sits in the clipboard.
func (m Model) SetClipboard(id string) Model {
	m.clipboard = id
	return m
}

// SetDragging marks the block being dragged.
func (m Model) SetDragging(id string) Model {
	m.dragging = id
	return m
}

// Offset returns the index of the first visible block.
func (m Model) Offset() int { return m.offset }

// VisibleCount returns how many cards fit in the viewport.
func (m Model) VisibleCount() int {
	// One line is reserved for the scroll indicator.
	return max((m.height-1)/CardHeight, 1)
}

// ScrollBy moves the viewport by delta cards.
func (m Model) ScrollBy(delta int) Model {
	m.offset += delta
	return m.clampOffset()
}

// Update handles mouse wheel scrolling. Clicks and drags are resolved by the
// caller through BlockAt.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if mouse, ok := msg.(tea.MouseMsg); ok && mouse.Action == tea.MouseActionPress {
		switch mouse.Button {
		case tea.MouseButtonWheelUp:
			return m.ScrollBy(-1), nil
		case tea.MouseButtonWheelDown:
			return m.ScrollBy(1), nil
		}
	}
	return m, nil
}

// BlockAt returns the id of the visible block under the mouse.
func (m Model) BlockAt(msg tea.MouseMsg) (string, bool) {
	end := min(m.offset+m.VisibleCount(), len(m.blocks))
	for _, b := range m.blocks[min(m.offset, end):end] {
		if z := zone.Get(ZoneID(b.ID)); z != nil && z.InBounds(msg) {
			return b.ID, true
		}
	}
	return "", false
}

func (m Model) ensureVisible() Model {
	if idx := m.indexOf(m.selectedID); idx >= 0 {
		visible := m.VisibleCount()
		if idx < m.offset {
			m.offset = idx
		} else if idx >= m.offset+visible {
			m.offset = idx - visible + 1
		}
	}
	return m.clampOffset()
}

func (m Model) clampOffset() Model {
	m.offset = max(min(m.offset, len(m.blocks)-m.VisibleCount()), 0)
	return m
}

func (m Model) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, b := range m.blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// View renders the visible cards. Each card is wrapped in a zone mark; the
// root view must pass the frame through zone.Scan.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if len(m.blocks) == 0 {
		hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
			Render("No blocks yet. Press a to add one.")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, hint)
	}

	end := min(m.offset+m.VisibleCount(), len(m.blocks))
	lines := make([]string, 0, m.height)
	for _, b := range m.blocks[m.offset:end] {
		lines = append(lines, zone.Mark(ZoneID(b.ID), m.renderCard(b)))
	}

	out := strings.Join(lines, "\n")
	used := (end - m.offset) * CardHeight
	if pad := m.height - used - 1; pad > 0 {
		out += strings.Repeat("\n", pad)
	}
	return out + "\n" + m.scrollIndicator(end)
}

func (m Model) renderCard(b document.Block) string {
	label := b.Type.Label()
	var category blocks.Category
	if def, ok := m.registry.Lookup(b.Type); ok {
		label = def.Label
		category = def.Category
	}

	title := fmt.Sprintf("%d %s", b.Order+1, label)
	if b.ID == m.dragging {
		title = "↕ " + title
	}
	if b.ID == m.clipboard {
		title += " (copied)"
	}

	panel := styles.Panel{
		Title:      title,
		Width:      m.width,
		Height:     CardHeight,
		TitleColor: styles.CategoryColor(category),
	}
	switch {
	case b.ID == m.dropTarget && b.ID != m.dragging:
		panel.Focused = true
		panel.FocusColor = styles.BlockDropTargetColor
	case b.ID == m.selectedID:
		panel.Focused = true
		panel.FocusColor = styles.BlockSelectedColor
	case b.ID == m.clipboard:
		panel.Focused = true
		panel.FocusColor = styles.BlockClipboardColor
	}

	inner := max(m.width-2, 1)
	body := m.preview.Body(b, inner)
	if n := strings.Count(body, "\n") + 1; n < bodyLines {
		body += strings.Repeat("\n", bodyLines-n)
	}
	meta := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render(styles.TruncateString(styleLine(b.Style), inner))
	return panel.Render(body + "\n" + meta)
}

func (m Model) scrollIndicator(end int) string {
	above := m.offset
	below := len(m.blocks) - end
	if above == 0 && below == 0 {
		return ""
	}
	var parts []string
	if above > 0 {
		parts = append(parts, fmt.Sprintf("▲ %d above", above))
	}
	if below > 0 {
		parts = append(parts, fmt.Sprintf("▼ %d below", below))
	}
	return lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render(strings.Join(parts, "  "))
}
