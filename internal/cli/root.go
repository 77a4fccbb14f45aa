package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
)

// Execute runs the piposter CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	c := New(os.Stderr, log.InfoLevel)
	return c.RootCommand().ExecuteContext(ctx)
}
