package ui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// DetailOps pages full-screen day content through ov while the bubbletea
// program temporarily gives up the terminal.
type DetailOps struct {
	program *tea.Program
}

func NewDetailOps(program *tea.Program) *DetailOps {
	return &DetailOps{program: program}
}

// ShowInPager suspends the TUI, runs ov over the content, and hands the
// terminal back once the pager exits. The pager is configured before the
// terminal is released so a construction failure never leaves the TUI
// suspended.
func (d *DetailOps) ShowInPager(content string) error {
	if d.program == nil {
		return errors.New("detail: no program attached")
	}

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}
	cfg := oviewer.NewConfig()
	// ov must not repaint over our alt screen on exit.
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	if err := d.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov a moment to finish tearing down its screen first.
		time.Sleep(100 * time.Millisecond)
		_ = d.program.RestoreTerminal()
	}()

	return root.Run()
}
