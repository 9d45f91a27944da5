package iface

import (
	"net"
	"time"
)

/*
 * interface of framed stream connect
 */

//callback for connect
type IConnCallBack interface {
	OnMessage(conn IConn, packet IPacket) bool //cb for received packet
	OnClose(conn IConn)                        //cb for closed conn
}

type IConn interface {
	Close()
	IsClosed() bool
	Do()
	AsyncWritePacket(packet IPacket, duration time.Duration) error
	GetRawConn() net.Conn
	SetCallBack(cb IConnCallBack)
}
