package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/larek/internal/config"
	"github.com/Iron-Ham/larek/internal/logging"
	"github.com/Iron-Ham/larek/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the demo shop API",
	Long: `Run a local shop API serving GET /products and POST /order.

Without --catalog the built-in catalog is served. With --watch the
catalog file is reloaded whenever it changes; a broken edit keeps the
previous catalog.

Examples:
  larek serve
  larek serve --addr :9090 --catalog ./products.yaml --watch`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default from server.addr)")
	serveCmd.Flags().String("catalog", "", "YAML or JSON catalog file (default: built-in catalog)")
	serveCmd.Flags().Bool("watch", false, "reload the catalog file when it changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The server owns the terminal, so it logs to stderr.
	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), cfg.Logging.Level)

	catalog, err := openCatalog(cfg.Server.Catalog)
	if err != nil {
		return err
	}

	if cfg.Server.Watch && cfg.Server.Catalog != "" {
		watcher, err := server.NewWatcher(catalog, cfg.Server.Catalog, logger)
		if err != nil {
			return fmt.Errorf("failed to watch catalog: %w", err)
		}
		watcher.Start()
		defer watcher.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %d products on %s%s\n", catalog.Len(), cfg.Server.Addr, server.DefaultBasePath)
	return server.New(catalog, server.WithLogger(logger)).Run(ctx, cfg.Server.Addr)
}

// openCatalog loads path, or the built-in catalog when path is empty.
func openCatalog(path string) (*server.Catalog, error) {
	if path == "" {
		return server.DefaultCatalog()
	}
	products, err := server.LoadCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return server.NewCatalog(products)
}
