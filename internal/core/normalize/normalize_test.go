package normalize

import "testing"

func TestInput_CollapsesAndTrimsWhitespace(t *testing.T) {
	if got := Input("  New   York  "); got != "New York" {
		t.Fatalf("got %q", got)
	}
	if got := Input("   "); got != "" {
		t.Fatalf("whitespace only should normalize to empty, got %q", got)
	}
}

func TestInput_StripsFormatCharacters(t *testing.T) {
	// zero width joiner inside a word
	if got := Input("Te‍xas"); got != "Texas" {
		t.Fatalf("got %q", got)
	}
}

func TestInput_KeepsCase(t *testing.T) {
	if got := Input("TEXAS"); got != "TEXAS" {
		t.Fatalf("case must be preserved, got %q", got)
	}
}

func TestInput_NFCComposition(t *testing.T) {
	// e + combining acute composes to a single rune
	if got := Input("Montréal"); got != "Montréal" {
		t.Fatalf("got %q", got)
	}
}
