package protocol

import (
	"encoding/binary"

	"github.com/andyzhou/gamehost/pb"
)

/*
 * packet data face, implement of IPacket
 * framing for stream links (kcp)
 */

/*
|--dataLen(uint32)--|--msgID(uint8)--|--------------data--------------|
|---------4---------|-------1--------|-----------(dataLen)------------|
*/

//inter macro define
const (
	DataLen       = 4
	MessageIdLen  = 1
	PacketHeadLen = DataLen + MessageIdLen
	PacketMaxSize = 1 << 20 //1MB
)

//data info
type Packet struct {
	id   uint8 //message id, the provider msg tag
	data []byte
}

//construct
func NewPacket(id uint8, data []byte) *Packet {
	return &Packet{
		id:   id,
		data: data,
	}
}

//construct from provider message
func NewPacketWithMsg(msg *pb.ProviderMsg) (*Packet, error) {
	data, err := msg.Marshal()
	if err != nil {
		return nil, err
	}
	return NewPacket(uint8(msg.Tag()), data), nil
}

//pack data
func (f *Packet) Pack() []byte {
	//init data buff
	dataBuff := make([]byte, PacketHeadLen, PacketHeadLen+len(f.data))

	//write length
	binary.BigEndian.PutUint32(dataBuff, uint32(len(f.data)))

	//write message id
	dataBuff[DataLen] = f.id

	//write data
	return append(dataBuff, f.data...)
}

//unpack provider message
func (f *Packet) UnmarshalMsg() (*pb.ProviderMsg, error) {
	msg := &pb.ProviderMsg{}
	if err := msg.Unmarshal(f.data); err != nil {
		return nil, err
	}
	return msg, nil
}

//get
func (f *Packet) GetData() []byte {
	return f.data
}

func (f *Packet) GetMessageId() uint8 {
	return f.id
}
