package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/testutil"
)

func TestSuccess(t *testing.T) {
	rec := testutil.NewRecorder()
	success := NewSuccess(rec)

	out := success.Render(SuccessProps{OrderID: "abc", Total: decimal.NewFromInt(1950)})
	for _, want := range []string{"Order placed", "Charged 1950 synapses", "abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q, got:\n%s", want, out)
		}
	}

	success.HandleKey(runeKey('x'))
	if names := rec.Names(); len(names) != 0 {
		t.Errorf("unexpected events %v", names)
	}

	success.HandleKey(specialKey(tea.KeyEnter))
	if rec.Count(event.SuccessClose) != 1 {
		t.Errorf("expected %s, got %v", event.SuccessClose, rec.Names())
	}
}
