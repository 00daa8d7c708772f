package moneta

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney(t *testing.T) {
	m := M(decimal.NewFromFloat(10.5), "EUR")
	n := M(decimal.NewFromFloat(2.5), "EUR")

	if got := m.Add(n); !got.Equal(M(decimal.NewFromInt(13), "EUR")) {
		t.Errorf("10.5 + 2.5 = %s, want 13", got)
	}
	if m.Currency() != "EUR" {
		t.Errorf("currency %q, want EUR", m.Currency())
	}
	if m.IsZero() || !M(decimal.Zero, "EUR").IsZero() {
		t.Error("IsZero mismatch")
	}
	if m.Equal(M(decimal.NewFromFloat(10.5), "USD")) {
		t.Error("moneys in different currencies must not be equal")
	}
}

// formatting goes through the currency's own fraction and symbol rules, so
// only check stable parts of the output.
func TestMoneyString(t *testing.T) {
	s := M(decimal.NewFromFloat(1234.56), "USD").String()
	if s == "" {
		t.Fatal("empty formatted value")
	}
	for _, part := range []string{"234", "56"} {
		if !strings.Contains(s, part) {
			t.Errorf("formatted %q missing %q", s, part)
		}
	}
}
