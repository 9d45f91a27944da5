// Package engine holds the dispatch contract shared by hosted games.
package engine

import (
	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/iface"
	"github.com/andyzhou/gamehost/pb"
)

//inbound message handler
type Handler func(msg *pb.ProviderMsg) ([]*pb.ProviderMsg, error)

//payload tag -> handler
type Table map[pb.Tag]Handler

//default table over the engine handlers, faults get room and player
func TableOf(e iface.IEngine) Table {
	return Table{
		pb.TagRegisterRet: func(msg *pb.ProviderMsg) ([]*pb.ProviderMsg, error) {
			return nil, e.OnRegisterRet(msg.Msg.(*pb.RegisterRet))
		},
		pb.TagStartGameArgs: func(msg *pb.ProviderMsg) ([]*pb.ProviderMsg, error) {
			args := msg.Msg.(*pb.StartGameArgs)
			out, err := e.OnStartGame(args)
			return out, annotate(err, define.OpCreateRoom, args.RoomId, 0)
		},
		pb.TagQueryStateArgs: func(msg *pb.ProviderMsg) ([]*pb.ProviderMsg, error) {
			args := msg.Msg.(*pb.QueryStateArgs)
			out, err := e.OnQueryState(args)
			return out, annotate(err, define.OpQueryState, args.RoomId, args.UserId)
		},
		pb.TagUserOperationArgs: func(msg *pb.ProviderMsg) ([]*pb.ProviderMsg, error) {
			args := msg.Msg.(*pb.UserOperationArgs)
			out, err := e.OnUserOperation(args)
			return out, annotate(err, define.OpOperation, args.RoomId, args.UserId)
		},
	}
}

//route msg, empty or unknown tag has no output
func Dispatch(msg *pb.ProviderMsg, table Table) ([]*pb.ProviderMsg, error) {
	if msg == nil || msg.Msg == nil {
		return nil, nil
	}
	h, ok := table[msg.Tag()]
	if !ok {
		return nil, nil
	}
	return h(msg)
}

//check register result
func CheckRegisterRet(msg *pb.RegisterRet) error {
	if msg.Err != pb.ErrorNumber_Ok {
		return &define.RegisterError{Code: int32(msg.Err)}
	}
	return nil
}

func annotate(err error, op string, room int32, player uint32) error {
	if err == nil {
		return nil
	}
	if f, ok := define.AsFault(err); ok {
		return f.At(op, room, player)
	}
	return err
}
