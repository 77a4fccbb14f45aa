package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	want := []string{"generate", "digits", "layout", "serve", "fonts", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommandName(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	if root.Use != appName {
		t.Errorf("root use = %q", root.Use)
	}
	if !root.SilenceUsage {
		t.Error("usage not silenced on errors")
	}
}
