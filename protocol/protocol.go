package protocol

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/andyzhou/gamehost/iface"
)

/*
 * protocol face, implement of IProtocol
 */

//face info
type Protocol struct {
	maxSize uint32
}

//construct
func NewProtocol() *Protocol {
	//self init
	this := &Protocol{
		maxSize: PacketMaxSize,
	}
	return this
}

//read packet
func (f *Protocol) ReadPacket(reader io.Reader) (iface.IPacket, error) {
	//read header
	header := make([]byte, PacketHeadLen)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, err
	}

	//unpack header
	dataLen := binary.BigEndian.Uint32(header)
	if dataLen > f.maxSize {
		return nil, fmt.Errorf("packet too large, len:%d", dataLen)
	}

	//read real data
	data := make([]byte, dataLen)
	if _, err := io.ReadFull(reader, data); err != nil {
		return nil, err
	}
	return NewPacket(header[DataLen], data), nil
}
