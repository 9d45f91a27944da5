package engine

import "github.com/andyzhou/gamehost/pb"

//one game operation, room and actor explicit
type OpHandler[O any] func(roomId int32, playerId uint32, op O) ([]*pb.ProviderMsg, error)

//routes the user operation union of a game
type OpTable[K comparable, O any] map[K]OpHandler[O]

//unknown kind has no output
func (t OpTable[K, O]) Dispatch(kind K, roomId int32, playerId uint32, op O) ([]*pb.ProviderMsg, error) {
	h, ok := t[kind]
	if !ok {
		return nil, nil
	}
	return h(roomId, playerId, op)
}
