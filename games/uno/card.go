// Package uno hosts the colour matching card game. Hands are private, the
// engine only tracks hand sizes and the shared draw and discard piles.
package uno

import (
	"github.com/andyzhou/gamehost/pb"
)

//card colour, black marks the wild cards
type CardColor int32

const (
	Red CardColor = iota
	Yellow
	Green
	Blue
	Black
)

//card text
type CardText int32

const (
	Zero CardText = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	DrawFour
	Empty
)

const (
	DeckSize     = 108
	HandSize     = 7
	wildPerKind  = 4
	coloredKinds = 4
	BlackCards   = 2 * wildPerKind
)

//face info
type Card struct {
	Color CardColor
	Text  CardText
}

func (c *Card) EncodeWire(b []byte) []byte {
	b = pb.AppendInt32(b, 1, int32(c.Color))
	return pb.AppendInt32(b, 2, int32(c.Text))
}

func (c *Card) DecodeWire(b []byte) error {
	*c = Card{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			c.Color = CardColor(f.Int32())
		case 2:
			c.Text = CardText(f.Int32())
		}
		return nil
	})
}

//NewCards lists a full deck in a fixed order.
//every colour has one zero and two of each other coloured text,
//plus four wilds and four draw fours.
func NewCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for color := Red; color < Black; color++ {
		for text := Zero; text <= DrawTwo; text++ {
			cards = append(cards, Card{Color: color, Text: text})
			if text != Zero {
				cards = append(cards, Card{Color: color, Text: text})
			}
		}
	}
	for i := 0; i < wildPerKind; i++ {
		cards = append(cards,
			Card{Color: Black, Text: Wild},
			Card{Color: Black, Text: DrawFour},
		)
	}
	return cards
}
