package splendor

import (
	"github.com/andyzhou/gamehost/pb"
	"github.com/andyzhou/gamehost/random"
)

/*
 * development cards.
 * a template lists price quantities followed by the point value,
 * its length is the number of distinct gem types the card involves.
 */

const (
	WindowSize = 4
	TierCount  = 3
)

//cards per tier
var tierTotals = [TierCount]int{40, 30, 20}

var tierTemplates = [TierCount][][]int32{
	{
		{1, 1, 1, 1, 0},
		{1, 1, 2, 0},
		{2, 2, 0},
	},
	{
		{2, 2, 2, 1},
		{1, 4, 1},
		{2, 3, 1},
		{5, 2},
		{2, 4, 2},
		{3, 3, 1, 2},
		{2, 2, 2, 2, 2},
		{3, 2, 2, 2},
	},
	{
		{6, 3},
		{2, 5, 3},
		{2, 3, 4, 3},
		{3, 3, 3, 3, 3},
		{7, 4},
		{2, 6, 4},
		{3, 3, 5, 4},
		{4, 4, 4, 4, 4},
		{8, 5},
		{2, 7, 5},
		{4, 4, 6, 5},
		{4, 5, 5, 5, 5},
	},
}

//face info
type Development struct {
	Price  ResourceMap
	Color  ResourceType
	Points int32
}

//buildCard draws len(template) distinct gem types, the last one is the colour
func buildCard(rng *random.Source, template []int32) Development {
	types := rng.Distinct(len(template), int(Agate), int(Agate)+GemTypes)
	last := len(template) - 1
	card := Development{
		Color:  ResourceType(types[last]),
		Points: template[last],
	}
	for i := 0; i < last; i++ {
		card.Price[types[i]] = template[i]
	}
	return card
}

//buildTier builds the cards of one tier, the final WindowSize cards face up
func buildTier(rng *random.Source, level int) *Tier {
	templates := tierTemplates[level]
	cards := make([]Development, 0, tierTotals[level])
	for i := 0; i < tierTotals[level]; i++ {
		cards = append(cards, buildCard(rng, templates[rng.Intn(len(templates))]))
	}
	return NewTier(cards, WindowSize)
}

func (d *Development) EncodeWire(b []byte) []byte {
	b = pb.AppendMessage(b, 1, &d.Price)
	b = pb.AppendInt32(b, 2, int32(d.Color))
	return pb.AppendInt32(b, 3, d.Points)
}

func (d *Development) DecodeWire(b []byte) error {
	*d = Development{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			return f.Decode(&d.Price)
		case 2:
			d.Color = ResourceType(f.Int32())
		case 3:
			d.Points = f.Int32()
		}
		return nil
	})
}
