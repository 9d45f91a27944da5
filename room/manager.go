package room

import (
	"github.com/andyzhou/gamehost/define"
)

/*
 * manager face, implement of IManager
 * - room id -> game state registry
 * - owned by a single engine, no locking
 */

//face info
type Manager[S any] struct {
	roomCount int32
	rooms     map[int32]S
}

//construct
func NewManager[S any]() *Manager[S] {
	//self init
	this := &Manager[S]{
		rooms: make(map[int32]S),
	}
	return this
}

//close
func (f *Manager[S]) Close() {
	f.rooms = make(map[int32]S)
	f.roomCount = 0
}

//get rooms
func (f *Manager[S]) GetRooms() int32 {
	return f.roomCount
}

//close room
func (f *Manager[S]) CloseRoom(id int32) bool {
	if _, ok := f.rooms[id]; !ok {
		return false
	}
	delete(f.rooms, id)
	f.roomCount--
	return true
}

//get room
func (f *Manager[S]) GetRoom(id int32) (S, error) {
	room, ok := f.rooms[id]
	if !ok {
		var zero S
		return zero, define.NotFound("room %d not found", id)
	}
	return room, nil
}

//add room, a room id is created exactly once
func (f *Manager[S]) AddRoom(id int32, room S) error {
	if _, ok := f.rooms[id]; ok {
		return define.RoomExists(id)
	}
	f.rooms[id] = room
	f.roomCount++
	return nil
}

//range rooms, stop when fn returns false
func (f *Manager[S]) Range(fn func(id int32, room S) bool) {
	for id, room := range f.rooms {
		if !fn(id, room) {
			return
		}
	}
}
