package splendor

import (
	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/engine"
	"github.com/andyzhou/gamehost/random"
)

/*
 * game state of one room.
 * roster order is fixed at creation and drives every view.
 */

//face info
type GameState struct {
	roomId   int32
	roster   []uint32
	settings StartGameSettings
	board    *Board
	players  map[uint32]*Player
	rng      *random.Source
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
	players := make(map[uint32]*Player, len(roster))
	for _, id := range roster {
		if !engine.Addressable(id) {
			return nil, define.InvariantViolation("player id %d not addressable", id)
		}
		if _, ok := players[id]; ok {
			return nil, define.InvariantViolation("player %d listed twice", id)
		}
		players[id] = NewPlayer(id)
	}
	this := &GameState{
		roomId:   roomId,
		roster:   append([]uint32(nil), roster...),
		settings: settings,
		board:    NewBoard(rng),
		players:  players,
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

func (f *GameState) Board() *Board {
	return f.board
}

//get player
func (f *GameState) Player(id uint32) (*Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, define.NotFound("player %d not in room %d", id, f.roomId)
	}
	return p, nil
}

//GameStart picks the first player uniformly over the roster
func (f *GameState) GameStart() *GameStart {
	return &GameStart{
		FirstPlayer: int32(f.rng.Intn(len(f.roster))),
		State:       f.PublicState(),
	}
}

//PublicState builds the redacted snapshot, players in roster order
func (f *GameState) PublicState() *StateView {
	v := &StateView{
		ResourcesOnBoard: f.board.pool,
		NoblesOnBoard:    f.board.Nobles(),
		PlayerStates:     make([]*PlayerView, 0, len(f.roster)),
	}
	for i, t := range f.board.tiers {
		v.Levels[i] = t.view()
	}
	for _, id := range f.roster {
		v.PlayerStates = append(v.PlayerStates, f.players[id].view())
	}
	return v
}
