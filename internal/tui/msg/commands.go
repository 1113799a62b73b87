package msg

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/larek/internal/api"
	"github.com/Iron-Ham/larek/internal/model"
)

// LoadProducts returns a command that fetches the catalog.
func LoadProducts(ctx context.Context, shop api.Shop) tea.Cmd {
	return func() tea.Msg {
		products, err := shop.GetProducts(ctx)
		return ProductsMsg{Products: products, Err: err}
	}
}

// SubmitOrder returns a command that posts an order.
func SubmitOrder(ctx context.Context, shop api.Shop, req model.OrderRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := shop.OrderProducts(ctx, req)
		return OrderResultMsg{Request: req, Result: result, Err: err}
	}
}

// RingBell returns a command that writes a terminal bell when tui.bell is
// enabled. Used to flag a failed request.
func RingBell() tea.Cmd {
	return func() tea.Msg {
		if !viper.GetBool("tui.bell") {
			return nil
		}
		// Works in alt-screen mode too
		_, _ = os.Stdout.Write([]byte{'\a'})
		return nil
	}
}
