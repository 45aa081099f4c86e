package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/c3nk/cli-standard-kit/scaffold"
	"github.com/c3nk/cli-standard-kit/tui"
)

func main() {
	cmd := &scaffold.InitProjectCmd{TimeoutSeconds: 3}

	if err := cmd.AfterApply(); err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(tui.InitialInitModel(cmd))

	final, err := p.Run()
	if err != nil {
		log.Fatal(err)
	}

	if m, ok := final.(tui.InitModel); ok && m.Err() != nil {
		log.Fatal(m.Err())
	}
}
