package pb

import (
	"fmt"

	"github.com/golang/protobuf/proto"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/anypb"
)

/*
 * messages of the core provider stream, see proto/core.proto
 */

//Tag names the payload variant of a ProviderMsg, equal to its field number
type Tag int32

const (
	TagNone              Tag = 0
	TagRegisterArgs      Tag = 2
	TagRegisterRet       Tag = 3
	TagStartGameArgs     Tag = 4
	TagQueryStateArgs    Tag = 5
	TagUserOperationArgs Tag = 6
	TagNotifyMsgArgs     Tag = 7
	TagCloseGameArgs     Tag = 8
)

func (t Tag) String() string {
	switch t {
	case TagRegisterArgs:
		return "register_args"
	case TagRegisterRet:
		return "register_ret"
	case TagStartGameArgs:
		return "start_game_args"
	case TagQueryStateArgs:
		return "query_state_args"
	case TagUserOperationArgs:
		return "user_operation_args"
	case TagNotifyMsgArgs:
		return "notify_msg_args"
	case TagCloseGameArgs:
		return "close_game_args"
	}
	return fmt.Sprintf("tag(%d)", int32(t))
}

//ErrorNumber of core replies
type ErrorNumber int32

const (
	ErrorNumber_Ok           ErrorNumber = 0
	ErrorNumber_Unknown      ErrorNumber = 1
	ErrorNumber_GameExists   ErrorNumber = 2
	ErrorNumber_InvalidArgs  ErrorNumber = 3
	ErrorNumber_RoomNotFound ErrorNumber = 4
)

//Payload is one variant of ProviderMsg.Msg
type Payload interface {
	Tag() Tag
	encode(b []byte) ([]byte, error)
	decode(b []byte) error
}

//envelope of the provider stream
type ProviderMsg struct {
	SequenceId int32
	Msg        Payload
}

func (m *ProviderMsg) Tag() Tag {
	if m == nil || m.Msg == nil {
		return TagNone
	}
	return m.Msg.Tag()
}

//Marshal encodes the envelope
func (m *ProviderMsg) Marshal() ([]byte, error) {
	b := AppendInt32(nil, 1, m.SequenceId)
	if m.Msg == nil {
		return b, nil
	}
	body, err := m.Msg.encode(nil)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.Msg.Tag(), err)
	}
	b = protowire.AppendTag(b, protowire.Number(m.Msg.Tag()), protowire.BytesType)
	return protowire.AppendBytes(b, body), nil
}

//Unmarshal decodes the envelope, unknown variants leave Msg nil
func (m *ProviderMsg) Unmarshal(b []byte) error {
	*m = ProviderMsg{}
	return Walk(b, func(f Field) error {
		if f.Num == 1 {
			m.SequenceId = f.Int32()
			return nil
		}
		p := newPayload(Tag(f.Num))
		if p == nil {
			return nil
		}
		if err := p.decode(f.Bytes()); err != nil {
			return fmt.Errorf("decode %s: %w", p.Tag(), err)
		}
		m.Msg = p
		return nil
	})
}

func newPayload(t Tag) Payload {
	switch t {
	case TagRegisterArgs:
		return &RegisterArgs{}
	case TagRegisterRet:
		return &RegisterRet{}
	case TagStartGameArgs:
		return &StartGameArgs{}
	case TagQueryStateArgs:
		return &QueryStateArgs{}
	case TagUserOperationArgs:
		return &UserOperationArgs{}
	case TagNotifyMsgArgs:
		return &NotifyMsgArgs{}
	case TagCloseGameArgs:
		return &CloseGameArgs{}
	}
	return nil
}

func appendAny(b []byte, num protowire.Number, a *anypb.Any) ([]byte, error) {
	if a == nil {
		return b, nil
	}
	raw, err := proto.Marshal(a)
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, raw), nil
}

func decodeAny(f Field) (*anypb.Any, error) {
	a := &anypb.Any{}
	if err := proto.Unmarshal(f.Bytes(), a); err != nil {
		return nil, err
	}
	return a, nil
}

//////////////////
//payload variants
//////////////////

type GameSetting struct {
	MaxUsers int32
	MinUsers int32
}

func (m *GameSetting) EncodeWire(b []byte) []byte {
	b = AppendInt32(b, 1, m.MaxUsers)
	return AppendInt32(b, 2, m.MinUsers)
}

func (m *GameSetting) DecodeWire(b []byte) error {
	return Walk(b, func(f Field) error {
		switch f.Num {
		case 1:
			m.MaxUsers = f.Int32()
		case 2:
			m.MinUsers = f.Int32()
		}
		return nil
	})
}

type RegisterArgs struct {
	Id          string
	GameName    string
	GameSetting *GameSetting
}

func (m *RegisterArgs) Tag() Tag { return TagRegisterArgs }

func (m *RegisterArgs) encode(b []byte) ([]byte, error) {
	b = AppendString(b, 1, m.Id)
	b = AppendString(b, 2, m.GameName)
	if m.GameSetting != nil {
		b = AppendMessage(b, 3, m.GameSetting)
	}
	return b, nil
}

func (m *RegisterArgs) decode(b []byte) error {
	return Walk(b, func(f Field) error {
		switch f.Num {
		case 1:
			m.Id = f.String()
		case 2:
			m.GameName = f.String()
		case 3:
			m.GameSetting = &GameSetting{}
			return f.Decode(m.GameSetting)
		}
		return nil
	})
}

type RegisterRet struct {
	Err ErrorNumber
}

func (m *RegisterRet) Tag() Tag { return TagRegisterRet }

func (m *RegisterRet) encode(b []byte) ([]byte, error) {
	return AppendInt32(b, 1, int32(m.Err)), nil
}

func (m *RegisterRet) decode(b []byte) error {
	return Walk(b, func(f Field) error {
		if f.Num == 1 {
			m.Err = ErrorNumber(f.Int32())
		}
		return nil
	})
}

type StartGameArgs struct {
	RoomId int32
	UserId []uint32
	Custom *anypb.Any
}

func (m *StartGameArgs) Tag() Tag { return TagStartGameArgs }

func (m *StartGameArgs) encode(b []byte) ([]byte, error) {
	b = AppendInt32(b, 1, m.RoomId)
	b = AppendPackedUint32(b, 2, m.UserId)
	return appendAny(b, 3, m.Custom)
}

func (m *StartGameArgs) decode(b []byte) error {
	return Walk(b, func(f Field) (err error) {
		switch f.Num {
		case 1:
			m.RoomId = f.Int32()
		case 2:
			var ids []uint32
			if ids, err = f.Uint32s(); err == nil {
				m.UserId = append(m.UserId, ids...)
			}
		case 3:
			m.Custom, err = decodeAny(f)
		}
		return err
	})
}

type QueryStateArgs struct {
	RoomId int32
	UserId uint32
}

func (m *QueryStateArgs) Tag() Tag { return TagQueryStateArgs }

func (m *QueryStateArgs) encode(b []byte) ([]byte, error) {
	b = AppendInt32(b, 1, m.RoomId)
	return AppendUint32(b, 2, m.UserId), nil
}

func (m *QueryStateArgs) decode(b []byte) error {
	return Walk(b, func(f Field) error {
		switch f.Num {
		case 1:
			m.RoomId = f.Int32()
		case 2:
			m.UserId = f.Uint32()
		}
		return nil
	})
}

type UserOperationArgs struct {
	RoomId int32
	UserId uint32
	Custom *anypb.Any
}

func (m *UserOperationArgs) Tag() Tag { return TagUserOperationArgs }

func (m *UserOperationArgs) encode(b []byte) ([]byte, error) {
	b = AppendInt32(b, 1, m.RoomId)
	b = AppendUint32(b, 2, m.UserId)
	return appendAny(b, 3, m.Custom)
}

func (m *UserOperationArgs) decode(b []byte) error {
	return Walk(b, func(f Field) (err error) {
		switch f.Num {
		case 1:
			m.RoomId = f.Int32()
		case 2:
			m.UserId = f.Uint32()
		case 3:
			m.Custom, err = decodeAny(f)
		}
		return err
	})
}

//NotifyMsgArgs is the outbound notification.
//UserId addresses it: >0 one player, 0 whole room, -id everyone but id.
type NotifyMsgArgs struct {
	Err    ErrorNumber
	RoomId int32
	UserId int32
	Custom *anypb.Any
}

func (m *NotifyMsgArgs) Tag() Tag { return TagNotifyMsgArgs }

func (m *NotifyMsgArgs) encode(b []byte) ([]byte, error) {
	b = AppendInt32(b, 1, int32(m.Err))
	b = AppendInt32(b, 2, m.RoomId)
	b = AppendInt32(b, 3, m.UserId)
	return appendAny(b, 4, m.Custom)
}

func (m *NotifyMsgArgs) decode(b []byte) error {
	return Walk(b, func(f Field) (err error) {
		switch f.Num {
		case 1:
			m.Err = ErrorNumber(f.Int32())
		case 2:
			m.RoomId = f.Int32()
		case 3:
			m.UserId = f.Int32()
		case 4:
			m.Custom, err = decodeAny(f)
		}
		return err
	})
}

type CloseGameArgs struct {
	RoomId int32
}

func (m *CloseGameArgs) Tag() Tag { return TagCloseGameArgs }

func (m *CloseGameArgs) encode(b []byte) ([]byte, error) {
	return AppendInt32(b, 1, m.RoomId), nil
}

func (m *CloseGameArgs) decode(b []byte) error {
	return Walk(b, func(f Field) error {
		if f.Num == 1 {
			m.RoomId = f.Int32()
		}
		return nil
	})
}
