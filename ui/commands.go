package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeDuration = 3 * time.Second

// Message types for side effects

type linkOpenedMsg struct {
	url string
	err error
}

type linkCopiedMsg struct {
	url string
	err error
}

type noticeExpiredMsg struct {
	id int
}

// openURL launches the platform browser. Tests replace it.
var openURL = func(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return cmd.Process.Release()
}

// clipboardOut receives OSC 52 sequences. Tests replace it.
var clipboardOut io.Writer = os.Stderr

// openLink returns a tea.Cmd that opens url in the browser
func openLink(url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: openURL(url)}
	}
}

// copyLink returns a tea.Cmd that copies url to the system clipboard
func copyLink(url string) tea.Cmd {
	return func() tea.Msg {
		seq := osc52.New(url)
		if os.Getenv("TMUX") != "" {
			seq = seq.Tmux()
		} else if strings.HasPrefix(os.Getenv("TERM"), "screen") {
			seq = seq.Screen()
		}
		_, err := seq.WriteTo(clipboardOut)
		return linkCopiedMsg{url: url, err: err}
	}
}

// expireNotice returns a tea.Cmd that clears notice id after a delay
func expireNotice(id int) tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}
