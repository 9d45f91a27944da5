package iface

import "github.com/andyzhou/gamehost/pb"

/*
 * interface of game engine
 * the four handlers are routed by engine.Dispatch
 */

type IEngine interface {
	Name() string
	Setting() *pb.GameSetting
	OnRegisterRet(msg *pb.RegisterRet) error
	OnStartGame(msg *pb.StartGameArgs) ([]*pb.ProviderMsg, error)
	OnQueryState(msg *pb.QueryStateArgs) ([]*pb.ProviderMsg, error)
	OnUserOperation(msg *pb.UserOperationArgs) ([]*pb.ProviderMsg, error)
	CloseRoom(roomId int32) bool
}
