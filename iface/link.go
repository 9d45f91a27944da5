package iface

import "github.com/andyzhou/gamehost/pb"

/*
 * interface of duplex link to core service
 */

type ILink interface {
	Send(msg *pb.ProviderMsg) error
	Inbound() <-chan *pb.ProviderMsg
	Err() error //reason inbound was closed
	Close() error
}
