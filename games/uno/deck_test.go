package uno

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/random"
)

func TestNewCardsComposition(t *testing.T) {
	cards := NewCards()
	if len(cards) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(cards))
	}
	counts := make(map[Card]int)
	for _, c := range cards {
		counts[c]++
	}
	tests := []struct {
		card Card
		want int
	}{
		{Card{Color: Red, Text: Zero}, 1},
		{Card{Color: Blue, Text: Nine}, 2},
		{Card{Color: Green, Text: DrawTwo}, 2},
		{Card{Color: Yellow, Text: Reverse}, 2},
		{Card{Color: Black, Text: Wild}, 4},
		{Card{Color: Black, Text: DrawFour}, 4},
		{Card{Color: Red, Text: Wild}, 0},
	}
	for _, tt := range tests {
		if got := counts[tt.card]; got != tt.want {
			t.Fatalf("card %+v: expected %d, got %d", tt.card, tt.want, got)
		}
	}
}

func TestDeckRefillsFromDiscard(t *testing.T) {
	d := NewDeck(random.NewSource(1))
	drawn, err := d.DrawN(DeckSize)
	if err != nil {
		t.Fatalf("draw all: %v", err)
	}
	if d.PileLen() != 0 {
		t.Fatalf("expected empty pile, got %d", d.PileLen())
	}
	if _, err = d.Draw(); !errors.Is(err, define.ErrIllegalOperation) {
		t.Fatalf("expected illegal operation, got %v", err)
	}

	for _, c := range drawn[:3] {
		d.Discard(c)
	}
	if _, err = d.DrawN(4); !errors.Is(err, define.ErrIllegalOperation) {
		t.Fatalf("expected illegal operation, got %v", err)
	}
	if d.DiscardLen() != 3 {
		t.Fatalf("failed draw changed the discard pile: %d", d.DiscardLen())
	}
	got, err := d.DrawN(2)
	if err != nil {
		t.Fatalf("draw after refill: %v", err)
	}
	if len(got) != 2 || d.PileLen() != 1 || d.DiscardLen() != 0 {
		t.Fatalf("unexpected piles after refill: drew %d pile %d discard %d", len(got), d.PileLen(), d.DiscardLen())
	}
}

func TestDealFlipsColouredCard(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		state, err := NewGameState(1, []uint32{1, 2, 3, 4}, StartGameSettings{}, random.NewSource(seed))
		if err != nil {
			t.Fatalf("new game: %v", err)
		}
		start, err := state.Deal()
		if err != nil {
			t.Fatalf("deal: %v", err)
		}
		if start.Flipped.Color == Black {
			t.Fatalf("seed %d: flipped a black card", seed)
		}
		if start.Flipped.Text == DrawTwo || start.Flipped.Text == DrawFour {
			t.Fatalf("seed %d: flipped card keeps draw text", seed)
		}
		if start.FirstPlayer >= 4 {
			t.Fatalf("seed %d: first player %d out of roster", seed, start.FirstPlayer)
		}
		for i, hand := range start.Hands {
			if len(hand) != HandSize {
				t.Fatalf("seed %d: hand %d has %d cards", seed, i, len(hand))
			}
		}
		//flipped card is out of the pile, black ones went back under it
		if got := state.Deck().PileLen(); got != DeckSize-4*HandSize-1 {
			t.Fatalf("seed %d: expected pile %d, got %d", seed, DeckSize-4*HandSize-1, got)
		}
	}
}

func TestNewGameStateRejectsBadRoster(t *testing.T) {
	if _, err := NewGameState(1, nil, StartGameSettings{}, random.NewSource(1)); !errors.Is(err, define.ErrIllegalOperation) {
		t.Fatalf("expected illegal operation, got %v", err)
	}
	if _, err := NewGameState(1, []uint32{1, 1}, StartGameSettings{}, random.NewSource(1)); !errors.Is(err, define.ErrInvariantViolation) {
		t.Fatalf("expected invariant violation, got %v", err)
	}
	for _, id := range []uint32{0, 1 << 31, math.MaxUint32} {
		_, err := NewGameState(1, []uint32{id, 2, 3}, StartGameSettings{}, random.NewSource(1))
		if !errors.Is(err, define.ErrInvariantViolation) {
			t.Fatalf("player %d: expected invariant violation, got %v", id, err)
		}
	}
}

func TestNewGameStatePlayerBound(t *testing.T) {
	roster := func(n int) []uint32 {
		ids := make([]uint32, n)
		for i := range ids {
			ids[i] = uint32(i + 1)
		}
		return ids
	}
	//15 players leave 3 cards, possibly all black
	if _, err := NewGameState(1, roster(15), StartGameSettings{}, random.NewSource(1151)); !errors.Is(err, define.ErrIllegalOperation) {
		t.Fatalf("expected illegal operation for 15 players, got %v", err)
	}
	state, err := NewGameState(1, roster(14), StartGameSettings{}, random.NewSource(1151))
	if err != nil {
		t.Fatalf("14 players: %v", err)
	}
	start, err := state.Deal()
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	if start.Flipped.Color == Black {
		t.Fatal("flipped a black card")
	}
}

func TestFlipStopsOnAllBlackPile(t *testing.T) {
	state, err := NewGameState(1, []uint32{1, 2}, StartGameSettings{}, random.NewSource(3))
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	state.deck.pile = []Card{
		{Color: Black, Text: DrawFour},
		{Color: Black, Text: DrawFour},
		{Color: Black, Text: Wild},
	}
	done := make(chan error, 1)
	go func() {
		_, err := state.flip()
		done <- err
	}()
	select {
	case err = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("flip did not return")
	}
	if !errors.Is(err, define.ErrIllegalOperation) {
		t.Fatalf("expected illegal operation, got %v", err)
	}
	if state.Deck().PileLen() != 3 {
		t.Fatalf("expected black cards kept in pile, got %d", state.Deck().PileLen())
	}
}
