package uno

import (
	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/engine"
	"github.com/andyzhou/gamehost/random"
)

/*
 * game state of one room
 */

//face info
type GameState struct {
	roomId   int32
	roster   []uint32
	settings StartGameSettings
	deck     *Deck
	hands    map[uint32]int32
	rng      *random.Source
}

//start result, hands follow roster order
type Start struct {
	Hands       [][]Card
	Flipped     Card
	FirstPlayer uint32
}

//construct
func NewGameState(
	roomId int32,
	roster []uint32,
	settings StartGameSettings,
	rng *random.Source,
) (*GameState, error) {
	if len(roster) == 0 {
		return nil, define.IllegalOperation("room %d has no players", roomId)
	}
	//the pile left after dealing must hold a coloured card to flip
	if DeckSize-len(roster)*HandSize <= BlackCards {
		return nil, define.IllegalOperation("room %d has too many players: %d", roomId, len(roster))
	}
	hands := make(map[uint32]int32, len(roster))
	for _, id := range roster {
		if !engine.Addressable(id) {
			return nil, define.InvariantViolation("player id %d not addressable", id)
		}
		if _, ok := hands[id]; ok {
			return nil, define.InvariantViolation("player %d listed twice", id)
		}
		hands[id] = 0
	}
	this := &GameState{
		roomId:   roomId,
		roster:   append([]uint32(nil), roster...),
		settings: settings,
		deck:     NewDeck(rng),
		hands:    hands,
		rng:      rng,
	}
	return this, nil
}

func (f *GameState) RoomId() int32 {
	return f.roomId
}

func (f *GameState) Roster() []uint32 {
	return append([]uint32(nil), f.roster...)
}

func (f *GameState) Settings() StartGameSettings {
	return f.settings
}

func (f *GameState) Deck() *Deck {
	return f.deck
}

//HandSize returns the card count of a player
func (f *GameState) HandSize(playerId uint32) (int32, error) {
	n, ok := f.hands[playerId]
	if !ok {
		return 0, define.NotFound("player %d not in room %d", playerId, f.roomId)
	}
	return n, nil
}

//Deal hands out HandSize cards round robin and flips the first card.
//black cards go to the bottom, a flipped draw card loses its text.
func (f *GameState) Deal() (*Start, error) {
	start := &Start{
		Hands: make([][]Card, len(f.roster)),
	}
	for round := 0; round < HandSize; round++ {
		for i := range f.roster {
			card, err := f.deck.Draw()
			if err != nil {
				return nil, err
			}
			start.Hands[i] = append(start.Hands[i], card)
		}
	}
	for i, id := range f.roster {
		f.hands[id] = int32(len(start.Hands[i]))
	}

	flipped, err := f.flip()
	if err != nil {
		return nil, err
	}
	start.Flipped = flipped
	start.FirstPlayer = uint32(f.rng.Intn(len(f.roster)))
	return start, nil
}

//flip turns the first coloured card of the pile.
//black cards go to the bottom, one pass over the pile at most.
func (f *GameState) flip() (Card, error) {
	for tries := f.deck.PileLen(); tries > 0; tries-- {
		card, err := f.deck.Draw()
		if err != nil {
			return Card{}, err
		}
		if card.Color == Black {
			f.deck.PutToBottom(card)
			continue
		}
		if card.Text == DrawTwo || card.Text == DrawFour {
			card.Text = Empty
		}
		return card, nil
	}
	return Card{}, define.IllegalOperation("room %d has no coloured card to flip", f.roomId)
}

//Draw gives n cards to a player
func (f *GameState) Draw(playerId uint32, n int32) ([]Card, error) {
	if _, err := f.HandSize(playerId); err != nil {
		return nil, err
	}
	cards, err := f.deck.DrawN(int(n))
	if err != nil {
		return nil, err
	}
	f.hands[playerId] += n
	return cards, nil
}

//Skip only checks the player belongs to the room
func (f *GameState) Skip(playerId uint32) error {
	_, err := f.HandSize(playerId)
	return err
}

//Play discards a card, reports whether the hand is now empty
func (f *GameState) Play(playerId uint32, card Card) (bool, error) {
	n, err := f.HandSize(playerId)
	if err != nil {
		return false, err
	}
	if n <= 0 {
		return false, define.InvariantViolation("player %d has no card to play", playerId)
	}
	f.deck.Discard(card)
	f.hands[playerId] = n - 1
	return n-1 == 0, nil
}
