package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/testutil"
	"github.com/Iron-Ham/larek/internal/tui/keymap"
)

func newTestPage(t *testing.T) (*Page, *testutil.Recorder) {
	t.Helper()
	rec := testutil.NewRecorder()
	page := NewPage(rec, 30)
	page.SetSize(100, 40)
	page.SetGallery(testutil.Products())
	return page, rec
}

func TestPage_LoadingState(t *testing.T) {
	page := NewPage(testutil.NewRecorder(), 30)
	if out := page.View(); !strings.Contains(out, "Loading products") {
		t.Errorf("expected loading message, got:\n%s", out)
	}
}

func TestPage_SelectPublishesCardSelect(t *testing.T) {
	page, rec := newTestPage(t)

	page.HandleKey(runeKey('l'))
	page.HandleKey(specialKey(tea.KeyEnter))

	ev, ok := rec.Last(event.CardSelect).(event.CardEvent)
	if !ok {
		t.Fatalf("expected %s, got %v", event.CardSelect, rec.Names())
	}
	if ev.Product.ID != "p2" {
		t.Errorf("selected %q, want p2", ev.Product.ID)
	}
}

func TestPage_CursorStaysInBounds(t *testing.T) {
	page, _ := newTestPage(t)

	page.HandleKey(specialKey(tea.KeyLeft))
	if p, _ := page.Selected(); p.ID != "p1" {
		t.Errorf("cursor moved before the first product: %q", p.ID)
	}

	page.HandleKey(runeKey('G'))
	if p, _ := page.Selected(); p.ID != "p3" {
		t.Errorf("G selected %q, want p3", p.ID)
	}
	page.HandleKey(specialKey(tea.KeyRight))
	if p, _ := page.Selected(); p.ID != "p3" {
		t.Errorf("cursor moved past the last product: %q", p.ID)
	}
}

func TestPage_BasketAndCheckout(t *testing.T) {
	page, rec := newTestPage(t)

	page.HandleKey(runeKey('b'))
	if rec.Count(event.BasketOpen) != 1 {
		t.Errorf("expected %s, got %v", event.BasketOpen, rec.Names())
	}

	page.HandleKey(runeKey('c'))
	if rec.Count(event.OrderStart) != 0 {
		t.Error("checkout with an empty basket should do nothing")
	}

	page.SetCounter(2)
	page.HandleKey(runeKey('c'))
	if rec.Count(event.OrderStart) != 1 {
		t.Errorf("expected %s, got %v", event.OrderStart, rec.Names())
	}
	out := page.View()
	if !strings.Contains(out, "Basket 2") {
		t.Errorf("expected counter in header, got:\n%s", out)
	}
	if header, _, _ := strings.Cut(out, "\n"); !strings.Contains(header, "Basket 2 [b]") {
		t.Errorf("expected basket key hint in header, got:\n%s", header)
	}
}

func TestPage_LockedIgnoresKeys(t *testing.T) {
	page, rec := newTestPage(t)
	page.SetLocked(true)

	page.HandleKey(specialKey(tea.KeyEnter))
	page.HandleKey(runeKey('b'))
	if cmd := page.HandleKey(runeKey('q')); cmd != nil {
		t.Error("locked page should not quit")
	}
	if names := rec.Names(); len(names) != 0 {
		t.Errorf("locked page published %v", names)
	}
}

func TestPage_Quit(t *testing.T) {
	page, _ := newTestPage(t)

	cmd := page.HandleKey(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestPage_Filter(t *testing.T) {
	page, _ := newTestPage(t)

	page.HandleKey(runeKey('/'))
	if page.Mode() != keymap.ModeFilter {
		t.Fatalf("mode = %s, want %s", page.Mode(), keymap.ModeFilter)
	}

	typeText(page, "BUG")
	gallery := page.Gallery()
	if len(gallery) != 1 || gallery[0].ID != "p3" {
		t.Fatalf("filter BUG matched %v", gallery)
	}

	page.HandleKey(specialKey(tea.KeyEnter))
	if page.Mode() != keymap.ModeGallery {
		t.Errorf("mode after apply = %s, want %s", page.Mode(), keymap.ModeGallery)
	}
	if page.Filter() != "BUG" {
		t.Errorf("filter = %q, want BUG", page.Filter())
	}

	// esc in the gallery clears the filter
	page.HandleKey(specialKey(tea.KeyEsc))
	if got := len(page.Gallery()); got != 3 {
		t.Errorf("gallery after clear has %d products, want 3", got)
	}
}

func TestPage_FilterGlob(t *testing.T) {
	page, _ := newTestPage(t)

	page.HandleKey(runeKey('/'))
	typeText(page, "h*")
	gallery := page.Gallery()
	if len(gallery) != 1 || gallery[0].ID != "p2" {
		t.Errorf("glob h* matched %v", gallery)
	}

	page.HandleKey(specialKey(tea.KeyEsc))
	if got := len(page.Gallery()); got != 3 {
		t.Errorf("cancel kept filter, gallery has %d products", got)
	}
}

func TestPage_FilterNoMatch(t *testing.T) {
	page, _ := newTestPage(t)

	page.HandleKey(runeKey('/'))
	typeText(page, "zzz")
	if _, ok := page.Selected(); ok {
		t.Error("nothing should be selected in an empty gallery")
	}
	if out := page.View(); !strings.Contains(out, `No products match "zzz"`) {
		t.Errorf("expected no-match message, got:\n%s", out)
	}
}

func TestPage_ErrorBanner(t *testing.T) {
	page, _ := newTestPage(t)

	page.SetError("Shop is unreachable, try again later")
	if out := page.View(); !strings.Contains(out, "Shop is unreachable") {
		t.Errorf("expected banner, got:\n%s", out)
	}

	page.HandleKey(specialKey(tea.KeyEsc))
	if page.Error() != "" {
		t.Errorf("esc should dismiss the banner, got %q", page.Error())
	}
}
