package splendor

import (
	"github.com/andyzhou/gamehost/pb"
)

//packed payload names
const (
	TypeUserOperation     = "splendor.UserOperation"
	TypeNotifyMsg         = "splendor.NotifyMsg"
	TypeStartGameSettings = "splendor.StartGameSettings"
)

//settings carried by start game
type StartGameSettings struct {
	RoundTime int32
}

func (m *StartGameSettings) EncodeWire(b []byte) []byte {
	return pb.AppendInt32(b, 1, m.RoundTime)
}

func (m *StartGameSettings) DecodeWire(b []byte) error {
	*m = StartGameSettings{}
	return pb.Walk(b, func(f pb.Field) error {
		if f.Num == 1 {
			m.RoundTime = f.Int32()
		}
		return nil
	})
}

/*
 * user operations
 */

//Take moves one token per entry from board to player
type Take struct {
	Resources []ResourceType
}

func (m *Take) EncodeWire(b []byte) []byte {
	vs := make([]int32, 0, len(m.Resources))
	for _, t := range m.Resources {
		vs = append(vs, int32(t))
	}
	return pb.AppendPackedInt32(b, 1, vs)
}

func (m *Take) DecodeWire(b []byte) error {
	*m = Take{}
	return pb.Walk(b, func(f pb.Field) error {
		if f.Num != 1 {
			return nil
		}
		vs, err := f.Int32s()
		if err != nil {
			return err
		}
		for _, v := range vs {
			m.Resources = append(m.Resources, ResourceType(v))
		}
		return nil
	})
}

//Purchase buys a window card, a negative level buys reserved card Index
type Purchase struct {
	DevelopmentLevel int32
	Index            int32
}

func (m *Purchase) EncodeWire(b []byte) []byte {
	return appendLevelIndex(b, m.DevelopmentLevel, m.Index)
}

func (m *Purchase) DecodeWire(b []byte) error {
	return decodeLevelIndex(b, &m.DevelopmentLevel, &m.Index)
}

//Reserve takes a window card, a negative index takes the deck top
type Reserve struct {
	DevelopmentLevel int32
	Index            int32
}

func (m *Reserve) EncodeWire(b []byte) []byte {
	return appendLevelIndex(b, m.DevelopmentLevel, m.Index)
}

func (m *Reserve) DecodeWire(b []byte) error {
	return decodeLevelIndex(b, &m.DevelopmentLevel, &m.Index)
}

func appendLevelIndex(b []byte, level, index int32) []byte {
	b = pb.AppendInt32(b, 1, level)
	return pb.AppendInt32(b, 2, index)
}

func decodeLevelIndex(b []byte, level, index *int32) error {
	*level, *index = 0, 0
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			*level = f.Int32()
		case 2:
			*index = f.Int32()
		}
		return nil
	})
}

//operation kind, equal to the oneof field number
type OpKind int32

const (
	OpNone OpKind = iota
	OpTake
	OpPurchase
	OpReserve
)

//UserOperation holds exactly one operation
type UserOperation struct {
	Take     *Take
	Purchase *Purchase
	Reserve  *Reserve
}

func (m *UserOperation) Kind() OpKind {
	switch {
	case m.Take != nil:
		return OpTake
	case m.Purchase != nil:
		return OpPurchase
	case m.Reserve != nil:
		return OpReserve
	}
	return OpNone
}

func (m *UserOperation) EncodeWire(b []byte) []byte {
	switch m.Kind() {
	case OpTake:
		b = pb.AppendMessage(b, 1, m.Take)
	case OpPurchase:
		b = pb.AppendMessage(b, 2, m.Purchase)
	case OpReserve:
		b = pb.AppendMessage(b, 3, m.Reserve)
	}
	return b
}

func (m *UserOperation) DecodeWire(b []byte) error {
	*m = UserOperation{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			*m = UserOperation{Take: &Take{}}
			return f.Decode(m.Take)
		case 2:
			*m = UserOperation{Purchase: &Purchase{}}
			return f.Decode(m.Purchase)
		case 3:
			*m = UserOperation{Reserve: &Reserve{}}
			return f.Decode(m.Reserve)
		}
		return nil
	})
}

/*
 * notifications
 */

//private reveal of a card reserved from the deck
type ReserveFromDeckRsp struct {
	Card *Development
}

func (m *ReserveFromDeckRsp) EncodeWire(b []byte) []byte {
	if m.Card != nil {
		b = pb.AppendMessage(b, 1, m.Card)
	}
	return b
}

func (m *ReserveFromDeckRsp) DecodeWire(b []byte) error {
	*m = ReserveFromDeckRsp{}
	return pb.Walk(b, func(f pb.Field) error {
		if f.Num == 1 {
			m.Card = &Development{}
			return f.Decode(m.Card)
		}
		return nil
	})
}

//NotifyMsg holds exactly one notification
type NotifyMsg struct {
	GameStart         *GameStart
	State             *StateView
	LastUserOperation *UserOperation
	ReserveRsp        *ReserveFromDeckRsp
}

func (m *NotifyMsg) EncodeWire(b []byte) []byte {
	switch {
	case m.GameStart != nil:
		b = pb.AppendMessage(b, 1, m.GameStart)
	case m.State != nil:
		b = pb.AppendMessage(b, 2, m.State)
	case m.LastUserOperation != nil:
		b = pb.AppendMessage(b, 3, m.LastUserOperation)
	case m.ReserveRsp != nil:
		b = pb.AppendMessage(b, 4, m.ReserveRsp)
	}
	return b
}

func (m *NotifyMsg) DecodeWire(b []byte) error {
	*m = NotifyMsg{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			*m = NotifyMsg{GameStart: &GameStart{}}
			return f.Decode(m.GameStart)
		case 2:
			*m = NotifyMsg{State: &StateView{}}
			return f.Decode(m.State)
		case 3:
			*m = NotifyMsg{LastUserOperation: &UserOperation{}}
			return f.Decode(m.LastUserOperation)
		case 4:
			*m = NotifyMsg{ReserveRsp: &ReserveFromDeckRsp{}}
			return f.Decode(m.ReserveRsp)
		}
		return nil
	})
}
