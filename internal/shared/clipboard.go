package shared

import (
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/x/ansi"
)

// Clipboard defines the interface for system clipboard operations. The editor
// uses it to hand a block's JSON to other programs; it is unrelated to the
// in-editor block clipboard.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard implements Clipboard with the platform copy tool, falling
// back to an OSC 52 escape sequence over SSH or inside multiplexers.
type SystemClipboard struct {
	// Out receives OSC 52 sequences. Defaults to os.Stderr.
	Out io.Writer
}

// MockClipboard records the last copied text.
type MockClipboard struct {
	Text string
}

// Copy stores text.
func (m *MockClipboard) Copy(text string) error {
	m.Text = text
	return nil
}

// Copy copies text to the system clipboard.
func (c SystemClipboard) Copy(text string) error {
	if shouldUseOSC52() {
		out := c.Out
		if out == nil {
			out = os.Stderr
		}
		_, err := io.WriteString(out, ansi.SetSystemClipboard(text))
		return err
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "windows":
		cmd = exec.Command("clip")
	default:
		cmd = exec.Command("xclip", "-selection", "clipboard")
	}

	pipe, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	if _, err := pipe.Write([]byte(text)); err != nil {
		return err
	}
	if err := pipe.Close(); err != nil {
		return err
	}
	return cmd.Wait()
}

// shouldUseOSC52 reports whether the local copy tools are likely unreachable.
func shouldUseOSC52() bool {
	for _, env := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}
