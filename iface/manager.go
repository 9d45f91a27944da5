package iface

/*
 * interface of room manager
 */

type IManager[S any] interface {
	Close()
	GetRooms() int32
	CloseRoom(id int32) bool
	GetRoom(id int32) (S, error)
	AddRoom(id int32, room S) error
	Range(fn func(id int32, room S) bool)
}
