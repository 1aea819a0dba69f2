package segment

import "testing"

func TestLookupDigits(t *testing.T) {
	want := map[rune]Pattern{
		'0': 0x7E,
		'1': 0x30,
		'2': 0x6D,
		'3': 0x79,
		'4': 0x33,
		'5': 0x5B,
		'6': 0x5F,
		'7': 0x70,
		'8': 0x7F,
		'9': 0x7B,
	}
	for r, p := range want {
		if got := Lookup(r); got != p {
			t.Errorf("Lookup(%q) = 0x%02X, want 0x%02X", r, byte(got), byte(p))
		}
	}
}

func TestLookupPunctuation(t *testing.T) {
	if got := Lookup('-'); got != 0x01 {
		t.Errorf("Lookup('-') = 0x%02X, want 0x01", byte(got))
	}
	if got := Lookup('.'); got != Dot {
		t.Errorf("Lookup('.') = 0x%02X, want 0x80", byte(got))
	}
}

func TestLookupCaseFolding(t *testing.T) {
	for lower := 'a'; lower <= 'z'; lower++ {
		upper := lower - ('a' - 'A')
		if Lookup(lower) != Lookup(upper) {
			t.Errorf("Lookup(%q) != Lookup(%q)", lower, upper)
		}
	}
}

func TestLookupOutOfRangeIsBlank(t *testing.T) {
	for _, r := range []rune{0, '\n', ' ', '!', '*', ',', '[', '`', '{', '~', 0x7F, 'é', '日'} {
		if got := Lookup(r); got != Blank {
			t.Errorf("Lookup(%q) = 0x%02X, want Blank", r, byte(got))
		}
	}
}

func TestLookupIllegibleLettersAreBlank(t *testing.T) {
	for _, r := range []rune{'K', 'M', 'Q', 'W', 'X', 'Z'} {
		if got := Lookup(r); got != Blank {
			t.Errorf("Lookup(%q) = 0x%02X, want Blank", r, byte(got))
		}
	}
}

func TestTableCoversDashThroughZ(t *testing.T) {
	if got, want := len(patterns), int('Z'-'-')+1; got != want {
		t.Errorf("table has %d entries, want %d", got, want)
	}
}

func TestWithDot(t *testing.T) {
	if got := Lookup('3').WithDot(); got != Lookup('3')|Dot {
		t.Errorf("WithDot() = 0x%02X", byte(got))
	}
	if got := Blank.WithDot(); got != Dot {
		t.Errorf("Blank.WithDot() = 0x%02X, want 0x80", byte(got))
	}
	// Idempotent.
	if got := Dot.WithDot(); got != Dot {
		t.Errorf("Dot.WithDot() = 0x%02X, want 0x80", byte(got))
	}
}
