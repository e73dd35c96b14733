package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/pagesmith/internal/command"
	"github.com/zjrosen/pagesmith/internal/ui/toaster"
)

// handleMouse selects blocks on click and reorders them on drag.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.view == ViewPicker || m.view == ViewHelp || m.view == ViewHistory {
		return m, nil
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.canvas, cmd = m.canvas.Update(msg)
		return m, cmd
	}

	id, onBlock := m.canvas.BlockAt(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onBlock {
			return m, nil
		}
		m.sess.Select(id)
		m.drag.Press(id)
		return m.sync(), nil

	case tea.MouseActionMotion:
		if m.drag.State() != command.DragDragging {
			return m, nil
		}
		if !onBlock {
			id = ""
		}
		m.drag.Over(id)
		target := id
		if target == m.drag.Source() {
			target = ""
		}
		m.canvas = m.canvas.SetDragging(m.drag.Source()).SetDropTarget(target)
		return m, nil

	case tea.MouseActionRelease:
		if !onBlock {
			id = ""
		}
		drop, ok := m.drag.Release(id)
		m.canvas = m.canvas.SetDragging("").SetDropTarget("")
		if !ok {
			return m, nil
		}
		if !m.sess.ReorderBlocks(drop.MovedID, drop.TargetID) {
			return m.sync(), nil
		}
		m.sess.Select(drop.MovedID)
		return m.sync(), toast("Moved block", toaster.StyleSuccess)
	}
	return m, nil
}

// cancelDrag abandons a drag in progress.
func (m Model) cancelDrag() Model {
	m.drag.Cancel()
	m.canvas = m.canvas.SetDragging("").SetDropTarget("")
	return m
}
