package uno

import (
	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/random"
)

/*
 * draw pile and discard pile.
 * the pile top is its first element.
 * an empty pile is refilled by shuffling the discards.
 */

//face info
type Deck struct {
	pile    []Card
	discard []Card
	rng     *random.Source
}

//construct, shuffled
func NewDeck(rng *random.Source) *Deck {
	this := &Deck{
		pile: NewCards(),
		rng:  rng,
	}
	this.shuffle(this.pile)
	return this
}

func (f *Deck) PileLen() int {
	return len(f.pile)
}

func (f *Deck) DiscardLen() int {
	return len(f.discard)
}

//Draw takes the top card
func (f *Deck) Draw() (Card, error) {
	if len(f.pile) == 0 {
		f.refill()
	}
	if len(f.pile) == 0 {
		return Card{}, define.IllegalOperation("draw and discard piles are empty")
	}
	card := f.pile[0]
	f.pile = f.pile[1:]
	return card, nil
}

//DrawN takes n cards, fails without change if both piles hold fewer
func (f *Deck) DrawN(n int) ([]Card, error) {
	if n < 0 {
		return nil, define.IllegalOperation("draw count %d is negative", n)
	}
	if n > len(f.pile)+len(f.discard) {
		return nil, define.IllegalOperation("cannot draw %d from %d cards", n, len(f.pile)+len(f.discard))
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, err := f.Draw()
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (f *Deck) PutToBottom(card Card) {
	f.pile = append(f.pile, card)
}

func (f *Deck) Discard(card Card) {
	f.discard = append(f.discard, card)
}

func (f *Deck) refill() {
	f.pile, f.discard = f.discard, nil
	f.shuffle(f.pile)
}

func (f *Deck) shuffle(cards []Card) {
	f.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
