// Runs the init form with every bubbletea message dumped to messages.log,
// for debugging key handling without a working terminal recorder.
package main

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/c3nk/cli-standard-kit/scaffold"
	"github.com/c3nk/cli-standard-kit/tui"
)

type dumper struct {
	inner tea.Model
	dump  io.Writer
}

func (d dumper) Init() tea.Cmd {
	return d.inner.Init()
}

func (d dumper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	spew.Fdump(d.dump, msg)

	inner, cmd := d.inner.Update(msg)
	d.inner = inner

	return d, cmd
}

func (d dumper) View() string {
	return d.inner.View()
}

func main() {
	dump, err := os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		log.Fatal("failed to open log file messages.log")
	}

	defer func() { _ = dump.Close() }()

	cmd := &scaffold.InitProjectCmd{SkipVersionCheck: true, TimeoutSeconds: 1}

	cmd.ApplyConfig(scaffold.Config{})

	p := tea.NewProgram(dumper{inner: tui.InitialInitModel(cmd), dump: dump})
	if _, err = p.Run(); err != nil {
		log.Fatal(err)
	}
}
