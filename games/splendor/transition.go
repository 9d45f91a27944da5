package splendor

import (
	"github.com/andyzhou/gamehost/define"
)

/*
 * operation transitions.
 * every check runs before the first mutation,
 * so a failed operation leaves the room as it was.
 * turn order and take combinations are not checked here.
 */

//Outcome of one transition, Revealed is set for a deck reservation only
type Outcome struct {
	State    *StateView
	Revealed *Development
}

//Take moves one token per entry from the board to the player
func (f *GameState) Take(playerId uint32, op *Take) (*Outcome, error) {
	player, err := f.Player(playerId)
	if err != nil {
		return nil, err
	}
	var want ResourceMap
	for _, t := range op.Resources {
		if !t.Valid() {
			return nil, define.IllegalOperation("unknown resource type %d", int32(t))
		}
		want[t]++
	}
	if !f.board.pool.Covers(want) {
		return nil, define.InvariantViolation("board %v cannot supply %v", f.board.pool, want)
	}
	for _, t := range op.Resources {
		if err = f.board.TakeOne(t); err != nil {
			return nil, err
		}
		player.TakeOne(t)
	}
	return &Outcome{State: f.PublicState()}, nil
}

//Purchase buys a window card or, with a negative level, a reserved card.
//the full price is paid from tokens, then every satisfied noble is claimed.
func (f *GameState) Purchase(playerId uint32, op *Purchase) (*Outcome, error) {
	player, err := f.Player(playerId)
	if err != nil {
		return nil, err
	}

	var (
		card Development
		tier *Tier
	)
	if op.DevelopmentLevel >= 0 {
		if tier, err = f.board.Tier(op.DevelopmentLevel); err != nil {
			return nil, err
		}
		card, err = tier.Peek(int(op.Index))
	} else {
		card, err = player.peekReserved(int(op.Index))
	}
	if err != nil {
		return nil, err
	}
	if !player.tokens.Covers(card.Price) {
		return nil, define.InvariantViolation("player %d tokens %v cannot pay %v", playerId, player.tokens, card.Price)
	}

	//mutate
	if tier != nil {
		if card, err = tier.ReplaceOrRemove(int(op.Index)); err != nil {
			return nil, err
		}
	} else {
		card = player.removeReserved(int(op.Index))
	}
	if err = player.Spend(card.Price); err != nil {
		return nil, err
	}
	f.board.ReturnMany(card.Price)
	player.AddCard(card)

	for _, noble := range f.board.claimNobles(player.Production()) {
		player.AddNoble(noble)
	}
	return &Outcome{State: f.PublicState()}, nil
}

//Reserve takes a window card or, with a negative index, the deck top.
//one gold goes along while the board still has some.
func (f *GameState) Reserve(playerId uint32, op *Reserve) (*Outcome, error) {
	player, err := f.Player(playerId)
	if err != nil {
		return nil, err
	}
	tier, err := f.board.Tier(op.DevelopmentLevel)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}
	var card Development
	if op.Index >= 0 {
		card, err = tier.ReplaceOrRemove(int(op.Index))
	} else {
		card, err = tier.PopTop()
		out.Revealed = &card
	}
	if err != nil {
		return nil, err
	}
	player.Reserve(card)

	if f.board.pool[Gold] > 0 {
		if err = f.board.TakeOne(Gold); err != nil {
			return nil, err
		}
		player.TakeOne(Gold)
	}
	out.State = f.PublicState()
	return out, nil
}
