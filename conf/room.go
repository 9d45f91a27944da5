package conf

import (
	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/pb"
	"google.golang.org/protobuf/types/known/anypb"
)

/*
 * conf for room created by the host itself
 */

type RoomConf struct {
	RoomId   int32
	Players  []uint32
	Settings *anypb.Any //game start settings, nil for defaults
}

//Check validates the room before it reaches an engine
func (c *RoomConf) Check() error {
	if c.RoomId <= 0 {
		return define.ErrorOfInvalidPara
	}
	if len(c.Players) == 0 {
		return define.ErrorOfInvalidPara
	}
	return nil
}

//StartArgs converts the conf into a start game request
func (c *RoomConf) StartArgs() *pb.StartGameArgs {
	return &pb.StartGameArgs{
		RoomId: c.RoomId,
		UserId: append([]uint32(nil), c.Players...),
		Custom: c.Settings,
	}
}
