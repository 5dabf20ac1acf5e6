package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pvoronin/newsgauge/internal/analyze"
	"github.com/pvoronin/newsgauge/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP API",
	Long: `Serve exposes the analyzer over HTTP. One endpoint per signal plus
the full report:

  GET  /            health check
  POST /analyze     full report
  POST /sentiment   sentiment only
  POST /entities    named entities only
  POST /classify    category scores only
  POST /geographic  geographic footprint only
  POST /summarize   summary only
  POST /bias        bias analysis only

All POST endpoints accept {"text": ..., "title": ..., "source": ...}
with "content" and "siteName" as accepted aliases.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	logw := io.Discard
	if cfg.Output.Verbose {
		logw = os.Stderr
	}
	service, err := analyze.NewService(cfg, logw)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "newsgauge listening on %s\n", cfg.Server.Addr)
	return api.NewServer(service.Analyzer(), cfg.Server).Run()
}
