package uno

import (
	"github.com/andyzhou/gamehost/pb"
	"google.golang.org/protobuf/encoding/protowire"
)

//packed payload names
const (
	TypeUserOperation     = "uno.UserOperation"
	TypeNotifyMsg         = "uno.NotifyMsg"
	TypeStartGameSettings = "uno.StartGameSettings"
)

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

//private start view of one player, FirstPlayer indexes the roster
type GameStart struct {
	InitHandcards []Card
	FlippedCard   *Card
	FirstPlayer   uint32
}

func (m *GameStart) EncodeWire(b []byte) []byte {
	b = appendCards(b, 1, m.InitHandcards)
	if m.FlippedCard != nil {
		b = pb.AppendMessage(b, 2, m.FlippedCard)
	}
	return pb.AppendUint32(b, 3, m.FirstPlayer)
}

func (m *GameStart) DecodeWire(b []byte) error {
	*m = GameStart{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			return decodeCard(f, &m.InitHandcards)
		case 2:
			m.FlippedCard = &Card{}
			return f.Decode(m.FlippedCard)
		case 3:
			m.FirstPlayer = f.Uint32()
		}
		return nil
	})
}

type Draw struct {
	Number int32
}

func (m *Draw) EncodeWire(b []byte) []byte {
	return pb.AppendInt32(b, 1, m.Number)
}

func (m *Draw) DecodeWire(b []byte) error {
	*m = Draw{}
	return pb.Walk(b, func(f pb.Field) error {
		if f.Num == 1 {
			m.Number = f.Int32()
		}
		return nil
	})
}

//cards drawn, private to the drawing player
type DrawRsp struct {
	Cards []Card
}

func (m *DrawRsp) EncodeWire(b []byte) []byte {
	return appendCards(b, 1, m.Cards)
}

func (m *DrawRsp) DecodeWire(b []byte) error {
	*m = DrawRsp{}
	return pb.Walk(b, func(f pb.Field) error {
		if f.Num == 1 {
			return decodeCard(f, &m.Cards)
		}
		return nil
	})
}

type SkipTurn struct{}

func (m *SkipTurn) EncodeWire(b []byte) []byte { return b }

func (m *SkipTurn) DecodeWire(b []byte) error { return nil }

type Play struct {
	Card      *Card
	NextColor CardColor
}

func (m *Play) EncodeWire(b []byte) []byte {
	if m.Card != nil {
		b = pb.AppendMessage(b, 1, m.Card)
	}
	return pb.AppendInt32(b, 2, int32(m.NextColor))
}

func (m *Play) DecodeWire(b []byte) error {
	*m = Play{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			m.Card = &Card{}
			return f.Decode(m.Card)
		case 2:
			m.NextColor = CardColor(f.Int32())
		}
		return nil
	})
}

//operation kind, equal to the oneof field number
type OpKind int32

const (
	OpNone OpKind = iota
	OpDraw
	OpSkip
	OpPlay
)

type UserOperation struct {
	Draw *Draw
	Skip *SkipTurn
	Play *Play
}

func (m *UserOperation) Kind() OpKind {
	switch {
	case m.Draw != nil:
		return OpDraw
	case m.Skip != nil:
		return OpSkip
	case m.Play != nil:
		return OpPlay
	}
	return OpNone
}

func (m *UserOperation) EncodeWire(b []byte) []byte {
	switch m.Kind() {
	case OpDraw:
		b = pb.AppendMessage(b, 1, m.Draw)
	case OpSkip:
		b = pb.AppendMessage(b, 2, m.Skip)
	case OpPlay:
		b = pb.AppendMessage(b, 3, m.Play)
	}
	return b
}

func (m *UserOperation) DecodeWire(b []byte) error {
	*m = UserOperation{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			*m = UserOperation{Draw: &Draw{}}
			return f.Decode(m.Draw)
		case 2:
			*m = UserOperation{Skip: &SkipTurn{}}
			return f.Decode(m.Skip)
		case 3:
			*m = UserOperation{Play: &Play{}}
			return f.Decode(m.Play)
		}
		return nil
	})
}

type NotifyMsg struct {
	GameStart *GameStart
	Draw      *Draw
	DrawRsp   *DrawRsp
	Skip      *SkipTurn
	Play      *Play
}

func (m *NotifyMsg) EncodeWire(b []byte) []byte {
	switch {
	case m.GameStart != nil:
		b = pb.AppendMessage(b, 1, m.GameStart)
	case m.Draw != nil:
		b = pb.AppendMessage(b, 2, m.Draw)
	case m.DrawRsp != nil:
		b = pb.AppendMessage(b, 3, m.DrawRsp)
	case m.Skip != nil:
		b = pb.AppendMessage(b, 4, m.Skip)
	case m.Play != nil:
		b = pb.AppendMessage(b, 5, m.Play)
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
			*m = NotifyMsg{Draw: &Draw{}}
			return f.Decode(m.Draw)
		case 3:
			*m = NotifyMsg{DrawRsp: &DrawRsp{}}
			return f.Decode(m.DrawRsp)
		case 4:
			*m = NotifyMsg{Skip: &SkipTurn{}}
			return f.Decode(m.Skip)
		case 5:
			*m = NotifyMsg{Play: &Play{}}
			return f.Decode(m.Play)
		}
		return nil
	})
}

func appendCards(b []byte, num protowire.Number, cards []Card) []byte {
	for i := range cards {
		b = pb.AppendMessage(b, num, &cards[i])
	}
	return b
}

func decodeCard(f pb.Field, cards *[]Card) error {
	var c Card
	if err := f.Decode(&c); err != nil {
		return err
	}
	*cards = append(*cards, c)
	return nil
}
