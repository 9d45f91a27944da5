package splendor

import (
	"github.com/andyzhou/gamehost/define"
)

/*
 * one card tier.
 * deck is a stack, its top is the last element.
 * window holds the face up cards.
 */

//face info
type Tier struct {
	deck   []Development
	window []Development
}

//construct, the final windowSize cards become the window
func NewTier(cards []Development, windowSize int) *Tier {
	if windowSize > len(cards) {
		windowSize = len(cards)
	}
	split := len(cards) - windowSize
	this := &Tier{
		deck:   append([]Development(nil), cards[:split]...),
		window: append([]Development(nil), cards[split:]...),
	}
	return this
}

func (f *Tier) DeckLen() int {
	return len(f.deck)
}

func (f *Tier) WindowLen() int {
	return len(f.window)
}

//Window returns a copy of the face up cards
func (f *Tier) Window() []Development {
	return append([]Development(nil), f.window...)
}

//Peek returns the face up card at index
func (f *Tier) Peek(index int) (Development, error) {
	if index < 0 || index >= len(f.window) {
		return Development{}, define.IllegalOperation("window index %d out of range [0,%d)", index, len(f.window))
	}
	return f.window[index], nil
}

//PeekTop returns the top of the deck without removing it
func (f *Tier) PeekTop() (Development, error) {
	if len(f.deck) == 0 {
		return Development{}, define.IllegalOperation("deck is empty")
	}
	return f.deck[len(f.deck)-1], nil
}

//ReplaceOrRemove takes the face up card at index.
//the deck top fills the slot, once the deck is empty the window shrinks.
func (f *Tier) ReplaceOrRemove(index int) (Development, error) {
	card, err := f.Peek(index)
	if err != nil {
		return Development{}, err
	}
	if len(f.deck) == 0 {
		f.window = append(f.window[:index], f.window[index+1:]...)
		return card, nil
	}
	f.window[index] = f.deck[len(f.deck)-1]
	f.deck = f.deck[:len(f.deck)-1]
	return card, nil
}

//PopTop removes the top of the deck
func (f *Tier) PopTop() (Development, error) {
	card, err := f.PeekTop()
	if err != nil {
		return Development{}, err
	}
	f.deck = f.deck[:len(f.deck)-1]
	return card, nil
}

func (f *Tier) view() *LevelView {
	return &LevelView{
		DeckNum: int32(len(f.deck)),
		Cards:   f.Window(),
	}
}
