package uno

import (
	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/iface"
	"github.com/andyzhou/gamehost/random"
	"github.com/andyzhou/gamehost/room"
)

//room registry, each room seeded from the registry source
type GlobalState struct {
	rooms iface.IManager[*GameState]
	rng   *random.Source
}

//construct
func NewGlobalState(seed int64) *GlobalState {
	return &GlobalState{
		rooms: room.NewManager[*GameState](),
		rng:   random.NewSource(seed),
	}
}

//NewGame creates and deals a room
func (f *GlobalState) NewGame(
	roomId int32,
	userIds []uint32,
	settings StartGameSettings,
) (*Start, error) {
	if _, err := f.rooms.GetRoom(roomId); err == nil {
		return nil, define.RoomExists(roomId)
	}
	state, err := NewGameState(roomId, userIds, settings, random.NewSource(f.rng.Int63()))
	if err != nil {
		return nil, err
	}
	start, err := state.Deal()
	if err != nil {
		return nil, err
	}
	if err = f.rooms.AddRoom(roomId, state); err != nil {
		return nil, err
	}
	return start, nil
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

//Play discards a card and drops the room once a hand empties
func (f *GlobalState) Play(roomId int32, playerId uint32, card Card) (bool, error) {
	state, err := f.Room(roomId)
	if err != nil {
		return false, err
	}
	finished, err := state.Play(playerId, card)
	if err != nil {
		return false, err
	}
	if finished {
		f.rooms.CloseRoom(roomId)
	}
	return finished, nil
}
