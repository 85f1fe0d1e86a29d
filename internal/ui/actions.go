package ui

import (
	"io"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

// Swappable for tests.
var (
	clipboardWriteAll = clipboard.WriteAll
	openURL           = browser.OpenURL
)

func copyCmd(text, done string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriteAll(text); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{text: done}
	}
}

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := openURL(url); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{text: "Opened " + url}
	}
}

// silenceBrowser stops the opener from writing into the alt screen.
func silenceBrowser() {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}
