package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/testutil"
)

func TestPreview_ToggleCart(t *testing.T) {
	rec := testutil.NewRecorder()
	p := testutil.Products()[0]
	preview := NewPreview(rec, 40)

	out := preview.Render(PreviewProps{Product: p})
	if !strings.Contains(out, LabelBuy) {
		t.Fatalf("expected %q button, got:\n%s", LabelBuy, out)
	}

	preview.HandleKey(specialKey(tea.KeyEnter))
	ev, ok := rec.Last(event.CardAddToCart).(event.CardEvent)
	if !ok {
		t.Fatalf("expected %s, got %v", event.CardAddToCart, rec.Names())
	}
	if ev.Product.ID != p.ID {
		t.Errorf("added product = %q, want %q", ev.Product.ID, p.ID)
	}
	if preview.ButtonLabel() != LabelRemove {
		t.Errorf("label after add = %q, want %q", preview.ButtonLabel(), LabelRemove)
	}

	preview.HandleKey(specialKey(tea.KeyEnter))
	if rec.Count(event.CardDeleteFromCart) != 1 {
		t.Errorf("expected one %s, got %v", event.CardDeleteFromCart, rec.Names())
	}
	if preview.ButtonLabel() != LabelBuy {
		t.Errorf("label after remove = %q, want %q", preview.ButtonLabel(), LabelBuy)
	}
}

func TestPreview_InBasketShowsRemove(t *testing.T) {
	preview := NewPreview(testutil.NewRecorder(), 40)
	out := preview.Render(PreviewProps{Product: testutil.Products()[1], InBasket: true})

	if !strings.Contains(out, LabelRemove) {
		t.Errorf("expected %q button, got:\n%s", LabelRemove, out)
	}
}

func TestPreview_UnpricedIsDisabled(t *testing.T) {
	rec := testutil.NewRecorder()
	preview := NewPreview(rec, 40)
	preview.Render(PreviewProps{Product: testutil.Products()[2]})

	if preview.ButtonEnabled() {
		t.Error("button should be disabled for an unpriced product")
	}

	preview.HandleKey(specialKey(tea.KeyEnter))
	preview.HandleKey(specialKey(tea.KeySpace))
	if names := rec.Names(); len(names) != 0 {
		t.Errorf("disabled button published %v", names)
	}
}

func TestPreview_IgnoresOtherKeys(t *testing.T) {
	rec := testutil.NewRecorder()
	preview := NewPreview(rec, 40)
	preview.Render(PreviewProps{Product: testutil.Products()[0]})

	preview.HandleKey(runeKey('x'))
	if names := rec.Names(); len(names) != 0 {
		t.Errorf("unexpected events %v", names)
	}
}
