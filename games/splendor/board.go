package splendor

import (
	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/random"
)

const (
	GemsPerType = 7
	GoldTokens  = 5
)

//InitialPool is the token allocation of a fresh board
func InitialPool() ResourceMap {
	var m ResourceMap
	for t := Agate; t < Gold; t++ {
		m[t] = GemsPerType
	}
	m[Gold] = GoldTokens
	return m
}

/*
 * board state of one room
 */

//face info
type Board struct {
	tiers  [TierCount]*Tier
	pool   ResourceMap
	nobles []Noble
}

//construct
func NewBoard(rng *random.Source) *Board {
	this := &Board{
		pool: InitialPool(),
	}
	for level := range this.tiers {
		this.tiers[level] = buildTier(rng, level)
	}
	this.nobles = GenerateNobles(rng)
	return this
}

//Tier returns the tier of a zero based level
func (f *Board) Tier(level int32) (*Tier, error) {
	if level < 0 || int(level) >= TierCount {
		return nil, define.IllegalOperation("development level %d out of range", level)
	}
	return f.tiers[level], nil
}

func (f *Board) Pool() ResourceMap {
	return f.pool
}

func (f *Board) Nobles() []Noble {
	return append([]Noble(nil), f.nobles...)
}

func (f *Board) TakeOne(t ResourceType) error {
	return f.pool.TakeOne(t)
}

func (f *Board) ReturnMany(m ResourceMap) {
	f.pool.Add(m)
}

//claimNobles removes and returns every noble the production satisfies
func (f *Board) claimNobles(production ResourceMap) []Noble {
	var matched []int
	for i := range f.nobles {
		if f.nobles[i].SatisfiedBy(production) {
			matched = append(matched, i)
		}
	}
	claimed := make([]Noble, 0, len(matched))
	//descending so earlier indexes stay valid
	for i := len(matched) - 1; i >= 0; i-- {
		idx := matched[i]
		claimed = append(claimed, f.nobles[idx])
		f.nobles = append(f.nobles[:idx], f.nobles[idx+1:]...)
	}
	return claimed
}
