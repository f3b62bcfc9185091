package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"memegrip/internal/domain"
)

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages content with ov, handing the terminal over while it runs
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// RenderPagerContent lays templates out as an aligned table for the pager
func RenderPagerContent(title string, templates []domain.Template, isFavorite func(string) bool) string {
	nameWidth := len("NAME")
	for _, t := range templates {
		if n := len([]rune(t.Name)); n > nameWidth {
			nameWidth = n
		}
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  %-*s  %-11s  %-5s  %s\n", nameWidth, "NAME", "SIZE", "BOXES", "URL")
	for _, t := range templates {
		heart := " "
		if isFavorite != nil && isFavorite(t.ID) {
			heart = "♥"
		}
		pad := nameWidth - len([]rune(t.Name))
		fmt.Fprintf(&b, "%s %s%s  %-11s  %-5d  %s\n", heart, t.Name, strings.Repeat(" ", pad), t.Size(), t.BoxCount, t.URL)
	}
	return b.String()
}
