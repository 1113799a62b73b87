package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/larek/internal/api"
	"github.com/Iron-Ham/larek/internal/config"
	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/tui/view"
	"github.com/Iron-Ham/larek/internal/util"
)

// defaultListWidth is used when stdout is not a terminal.
const defaultListWidth = 80

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List products without opening the shop",
	Long: `List the catalog as plain text, one product per line.

Products come from the shop API unless --file names a local catalog.

Examples:
  larek catalog
  larek catalog --match '*bug*'
  larek catalog --file ./products.yaml --match lolli`,
	RunE: runCatalog,
}

var (
	catalogMatch string
	catalogFile  string
)

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogMatch, "match", "m", "", "only list titles matching this glob (case-insensitive)")
	catalogCmd.Flags().StringVarP(&catalogFile, "file", "f", "", "read a YAML or JSON catalog file instead of the API")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	var matcher *util.TitleMatcher
	if catalogMatch != "" {
		m, err := util.CompileTitleMatcher(catalogMatch)
		if err != nil {
			return fmt.Errorf("invalid --match pattern: %w", err)
		}
		matcher = m
	}

	products, err := fetchCatalog(cmd.Context())
	if err != nil {
		return err
	}

	var shown []model.Product
	for _, p := range products {
		if matcher == nil || matcher.Match(p.Title) {
			shown = append(shown, p)
		}
	}

	printCatalog(cmd.OutOrStdout(), shown, listWidth())
	return nil
}

func fetchCatalog(ctx context.Context) ([]model.Product, error) {
	if catalogFile != "" {
		return openCatalogProducts(catalogFile)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := api.NewClient(cfg.API.BaseURL, cfg.API.CDNURL, api.WithTimeout(cfg.API.Timeout()))
	products, err := client.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	return products, nil
}

func openCatalogProducts(path string) ([]model.Product, error) {
	c, err := openCatalog(path)
	if err != nil {
		return nil, err
	}
	return c.List(), nil
}

// listWidth returns the terminal width, or a fixed width when piped.
func listWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultListWidth
}

// printCatalog writes one aligned line per product: title, category, price.
func printCatalog(w io.Writer, products []model.Product, width int) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}

	const categoryWidth = 16
	priceWidth := 0
	for _, p := range products {
		priceWidth = max(priceWidth, len(view.FormatPrice(p.Price)))
	}
	titleWidth := max(10, width-categoryWidth-priceWidth-4)

	for _, p := range products {
		fmt.Fprintf(w, "%s  %s  %s\n",
			util.PadRight(util.Truncate(p.Title, titleWidth), titleWidth),
			util.PadRight(util.Truncate(p.Category, categoryWidth), categoryWidth),
			view.FormatPrice(p.Price),
		)
	}
	fmt.Fprintf(w, "\n%d products\n", len(products))
}
