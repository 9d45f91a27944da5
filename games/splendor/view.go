package splendor

import (
	"github.com/andyzhou/gamehost/pb"
	"google.golang.org/protobuf/encoding/protowire"
)

/*
 * public views sent to clients.
 * reserved cards are only counted, deck cards never shown.
 */

//one tier, DevelopmentLevelState on the wire
type LevelView struct {
	DeckNum int32
	Cards   []Development
}

func (v *LevelView) EncodeWire(b []byte) []byte {
	b = pb.AppendInt32(b, 1, v.DeckNum)
	for i := range v.Cards {
		b = pb.AppendMessage(b, 2, &v.Cards[i])
	}
	return b
}

func (v *LevelView) DecodeWire(b []byte) error {
	*v = LevelView{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			v.DeckNum = f.Int32()
		case 2:
			var card Development
			if err := f.Decode(&card); err != nil {
				return err
			}
			v.Cards = append(v.Cards, card)
		}
		return nil
	})
}

//one player, Development holds the production per colour
type PlayerView struct {
	UserId      uint32
	Development ResourceMap
	Resource    ResourceMap
	Nobles      []Noble
	ReservedNum int32
	Points      int32
}

func (v *PlayerView) EncodeWire(b []byte) []byte {
	b = pb.AppendUint32(b, 1, v.UserId)
	b = pb.AppendMessage(b, 2, &v.Development)
	b = pb.AppendMessage(b, 3, &v.Resource)
	for i := range v.Nobles {
		b = pb.AppendMessage(b, 4, &v.Nobles[i])
	}
	b = pb.AppendInt32(b, 5, v.ReservedNum)
	return pb.AppendInt32(b, 6, v.Points)
}

func (v *PlayerView) DecodeWire(b []byte) error {
	*v = PlayerView{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			v.UserId = f.Uint32()
		case 2:
			return f.Decode(&v.Development)
		case 3:
			return f.Decode(&v.Resource)
		case 4:
			var n Noble
			if err := f.Decode(&n); err != nil {
				return err
			}
			v.Nobles = append(v.Nobles, n)
		case 5:
			v.ReservedNum = f.Int32()
		case 6:
			v.Points = f.Int32()
		}
		return nil
	})
}

//public snapshot of a room, GameState on the wire
type StateView struct {
	Levels           [TierCount]*LevelView
	ResourcesOnBoard ResourceMap
	NoblesOnBoard    []Noble
	PlayerStates     []*PlayerView
}

func (v *StateView) EncodeWire(b []byte) []byte {
	for i, level := range v.Levels {
		if level != nil {
			b = pb.AppendMessage(b, protowire.Number(i+1), level)
		}
	}
	b = pb.AppendMessage(b, 4, &v.ResourcesOnBoard)
	for i := range v.NoblesOnBoard {
		b = pb.AppendMessage(b, 5, &v.NoblesOnBoard[i])
	}
	for _, p := range v.PlayerStates {
		b = pb.AppendMessage(b, 6, p)
	}
	return b
}

func (v *StateView) DecodeWire(b []byte) error {
	*v = StateView{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1, 2, 3:
			level := &LevelView{}
			if err := f.Decode(level); err != nil {
				return err
			}
			v.Levels[f.Num-1] = level
		case 4:
			return f.Decode(&v.ResourcesOnBoard)
		case 5:
			var n Noble
			if err := f.Decode(&n); err != nil {
				return err
			}
			v.NoblesOnBoard = append(v.NoblesOnBoard, n)
		case 6:
			p := &PlayerView{}
			if err := f.Decode(p); err != nil {
				return err
			}
			v.PlayerStates = append(v.PlayerStates, p)
		}
		return nil
	})
}

//Player finds the view of one player
func (v *StateView) Player(id uint32) *PlayerView {
	for _, p := range v.PlayerStates {
		if p.UserId == id {
			return p
		}
	}
	return nil
}

//room start view, FirstPlayer indexes the roster
type GameStart struct {
	FirstPlayer int32
	State       *StateView
}

func (v *GameStart) EncodeWire(b []byte) []byte {
	b = pb.AppendInt32(b, 1, v.FirstPlayer)
	if v.State != nil {
		b = pb.AppendMessage(b, 2, v.State)
	}
	return b
}

func (v *GameStart) DecodeWire(b []byte) error {
	*v = GameStart{}
	return pb.Walk(b, func(f pb.Field) error {
		switch f.Num {
		case 1:
			v.FirstPlayer = f.Int32()
		case 2:
			v.State = &StateView{}
			return f.Decode(v.State)
		}
		return nil
	})
}
