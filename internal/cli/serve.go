package cli

import (
	"github.com/spf13/cobra"

	"github.com/piposter/piposter/internal/server"
)

// serveCommand creates the serve command for the local preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve live poster previews over HTTP",
		Long: `Serve live poster previews over HTTP.

Endpoints:

  /healthz            liveness probe
  /poster.svg         full-size SVG
  /poster.png         full-size PNG
  /poster.pdf         PDF (requires rsvg-convert)
  /poster/thumb.png   downscaled PNG preview (?w=480)

SVG and PNG accept ?labels=0|1 and ?overlay=0|1 to tweak the poster
without editing the config. The server is for local use while tuning a
configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			runner := c.newRunner(noCache)
			defer runner.Close()

			printInfo("Serving previews on http://%s", addr)
			srv := server.New(runner, cfg, c.Logger)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "localhost:8418", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the digit cache")

	return cmd
}
