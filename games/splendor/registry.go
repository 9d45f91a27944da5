package splendor

import (
	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/iface"
	"github.com/andyzhou/gamehost/random"
	"github.com/andyzhou/gamehost/room"
)

/*
 * room registry of the game.
 * every room draws its own source from the registry seed,
 * so a replayed sequence of calls yields the same rooms.
 */

//face info
type GlobalState struct {
	rooms iface.IManager[*GameState]
	rng   *random.Source
}

//construct
func NewGlobalState(seed int64) *GlobalState {
	this := &GlobalState{
		rooms: room.NewManager[*GameState](),
		rng:   random.NewSource(seed),
	}
	return this
}

//NewGame creates a room once and returns its start view
func (f *GlobalState) NewGame(
	roomId int32,
	userIds []uint32,
	settings StartGameSettings,
) (*GameStart, error) {
	if _, err := f.rooms.GetRoom(roomId); err == nil {
		return nil, define.RoomExists(roomId)
	}
	state, err := NewGameState(roomId, userIds, settings, random.NewSource(f.rng.Int63()))
	if err != nil {
		return nil, err
	}
	if err = f.rooms.AddRoom(roomId, state); err != nil {
		return nil, err
	}
	return state.GameStart(), nil
}

func (f *GlobalState) Room(roomId int32) (*GameState, error) {
	return f.rooms.GetRoom(roomId)
}

func (f *GlobalState) CloseRoom(roomId int32) bool {
	return f.rooms.CloseRoom(roomId)
}

func (f *GlobalState) Rooms() int32 {
	return f.rooms.GetRooms()
}

func (f *GlobalState) Take(roomId int32, playerId uint32, op *Take) (*Outcome, error) {
	state, err := f.Room(roomId)
	if err != nil {
		return nil, err
	}
	return state.Take(playerId, op)
}

func (f *GlobalState) Purchase(roomId int32, playerId uint32, op *Purchase) (*Outcome, error) {
	state, err := f.Room(roomId)
	if err != nil {
		return nil, err
	}
	return state.Purchase(playerId, op)
}

func (f *GlobalState) Reserve(roomId int32, playerId uint32, op *Reserve) (*Outcome, error) {
	state, err := f.Room(roomId)
	if err != nil {
		return nil, err
	}
	return state.Reserve(playerId, op)
}
