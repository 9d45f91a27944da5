package engine

import (
	"math"

	"github.com/andyzhou/gamehost/pb"
	"google.golang.org/protobuf/types/known/anypb"
)

/*
 * notify target inside a room
 * - id > 0, one player
 * - 0, whole room
 * - -id, whole room except id
 */

type Target int32

//whole room
const Room Target = 0

//Addressable reports whether a player id fits a private target.
//0 collides with Room and ids above MaxInt32 wrap negative.
func Addressable(id uint32) bool {
	return id != 0 && id <= math.MaxInt32
}

func ToPlayer(id uint32) Target {
	return Target(id)
}

func ToOthers(id uint32) Target {
	return -Target(id)
}

//check player is reached by target
func (t Target) Includes(player uint32) bool {
	switch {
	case t == Room:
		return true
	case t > 0:
		return uint32(t) == player
	default:
		return uint32(-t) != player
	}
}

//filter roster by target
func (t Target) Recipients(roster []uint32) []uint32 {
	out := make([]uint32, 0, len(roster))
	for _, id := range roster {
		if t.Includes(id) {
			out = append(out, id)
		}
	}
	return out
}

//addressed notify with game payload
func Notify(roomId int32, target Target, custom *anypb.Any) *pb.ProviderMsg {
	return &pb.ProviderMsg{
		Msg: &pb.NotifyMsgArgs{
			Err:    pb.ErrorNumber_Ok,
			RoomId: roomId,
			UserId: int32(target),
			Custom: custom,
		},
	}
}

//room ended
func CloseGame(roomId int32) *pb.ProviderMsg {
	return &pb.ProviderMsg{
		Msg: &pb.CloseGameArgs{RoomId: roomId},
	}
}

//register request of engine
func Register(id, gameName string, setting *pb.GameSetting) *pb.ProviderMsg {
	return &pb.ProviderMsg{
		Msg: &pb.RegisterArgs{
			Id:          id,
			GameName:    gameName,
			GameSetting: setting,
		},
	}
}
