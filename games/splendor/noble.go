package splendor

import (
	"github.com/andyzhou/gamehost/pb"
	"github.com/andyzhou/gamehost/random"
)

const (
	NobleCount  = 5
	NoblePoints = 3
)

//capital shapes, three nobles of 3x3 then two of 2x4
var nobleShapes = [NobleCount][]int32{
	{3, 3, 3},
	{3, 3, 3},
	{3, 3, 3},
	{4, 4},
	{4, 4},
}

//face info
type Noble struct {
	Capital ResourceMap
	Points  int32
}

//GenerateNobles draws NobleCount nobles with pairwise distinct capitals
func GenerateNobles(rng *random.Source) []Noble {
	nobles := make([]Noble, 0, NobleCount)
	for _, shape := range nobleShapes {
		for {
			noble := Noble{Points: NoblePoints}
			for i, t := range rng.Distinct(len(shape), int(Agate), int(Agate)+GemTypes) {
				noble.Capital[t] = shape[i]
			}
			if !containsCapital(nobles, noble.Capital) {
				nobles = append(nobles, noble)
				break
			}
		}
	}
	return nobles
}

func containsCapital(nobles []Noble, capital ResourceMap) bool {
	for _, n := range nobles {
		if n.Capital == capital {
			return true
		}
	}
	return false
}

//SatisfiedBy reports whether a production meets the whole capital
func (n *Noble) SatisfiedBy(production ResourceMap) bool {
	return production.Covers(n.Capital)
}

func (n *Noble) EncodeWire(b []byte) []byte {
	b = pb.AppendMessage(b, 1, &n.Capital)
	return pb.AppendInt32(b, 2, n.Points)
}

func (n *Noble) DecodeWire(b []byte) error {
	*n = Noble{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			return f.Decode(&n.Capital)
		case 2:
			n.Points = f.Int32()
		}
		return nil
	})
}
