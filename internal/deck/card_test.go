package deck

import "testing"

func TestRankValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rank  Rank
		value int
		label string
	}{
		{Two, 2, "2"},
		{Nine, 9, "9"},
		{Ten, 10, "10"},
		{Jack, 11, "J"},
		{Queen, 12, "Q"},
		{King, 13, "K"},
		{Ace, 14, "A"},
	}

	for _, tt := range tests {
		card := NewCard(Spades, tt.rank)
		if card.Value() != tt.value {
			t.Errorf("%s: expected value %d, got %d", tt.label, tt.value, card.Value())
		}
		if tt.rank.String() != tt.label {
			t.Errorf("expected label %q, got %q", tt.label, tt.rank.String())
		}
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()

	if got := NewCard(Spades, Ace).String(); got != "A♠" {
		t.Errorf("expected A♠, got %s", got)
	}
	if got := NewCard(Hearts, Ten).String(); got != "10♥" {
		t.Errorf("expected 10♥, got %s", got)
	}
}

func TestSuitIsRed(t *testing.T) {
	t.Parallel()

	if !Hearts.IsRed() || !Diamonds.IsRed() {
		t.Error("hearts and diamonds should be red")
	}
	if Spades.IsRed() || Clubs.IsRed() {
		t.Error("spades and clubs should not be red")
	}
}

func TestIsAce(t *testing.T) {
	t.Parallel()

	if !NewCard(Clubs, Ace).IsAce() {
		t.Error("ace should report IsAce")
	}
	if NewCard(Clubs, King).IsAce() {
		t.Error("king should not report IsAce")
	}
}
