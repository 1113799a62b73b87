package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/larek/internal/api"
	"github.com/Iron-Ham/larek/internal/config"
	"github.com/Iron-Ham/larek/internal/tui"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Open the storefront (default command)",
	Long: `Open the terminal storefront against the configured shop API.

Keys: arrows or hjkl to move, enter to preview, b for the basket,
c to check out, / to filter by title, q to quit.`,
	RunE: runShop,
}

func init() {
	rootCmd.AddCommand(shopCmd)
}

func runShop(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := fileLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	client := api.NewClient(cfg.API.BaseURL, cfg.API.CDNURL,
		api.WithTimeout(cfg.API.Timeout()),
		api.WithLogger(logger),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("opening shop", "api", cfg.API.BaseURL, "theme", cfg.TUI.Theme)
	app := tui.New(ctx, tui.Options{
		Shop:      client,
		Logger:    logger,
		CardWidth: cfg.TUI.CardWidth,
		Theme:     cfg.TUI.Theme,
	})
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
