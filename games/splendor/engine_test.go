package splendor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/engine"
	"github.com/andyzhou/gamehost/pb"
	"google.golang.org/protobuf/types/known/anypb"
)

func startRoom(t *testing.T, e *Engine) []*pb.ProviderMsg {
	t.Helper()
	out, err := e.OnStartGame(&pb.StartGameArgs{
		RoomId: 1,
		UserId: []uint32{1, 2, 3},
		Custom: pb.Pack(&StartGameSettings{RoundTime: 20}, TypeStartGameSettings),
	})
	if err != nil {
		t.Fatalf("start game: %v", err)
	}
	return out
}

func operate(e *Engine, player uint32, op *UserOperation) ([]*pb.ProviderMsg, error) {
	return e.OnUserOperation(&pb.UserOperationArgs{
		RoomId: 1,
		UserId: player,
		Custom: pb.Pack(op, TypeUserOperation),
	})
}

func decodeNotify(t *testing.T, msg *pb.ProviderMsg) (*pb.NotifyMsgArgs, *NotifyMsg) {
	t.Helper()
	args, ok := msg.Msg.(*pb.NotifyMsgArgs)
	if !ok {
		t.Fatalf("expected notify args, got %T", msg.Msg)
	}
	n := &NotifyMsg{}
	if err := pb.Unpack(args.Custom, n); err != nil {
		t.Fatalf("unpack notify: %v", err)
	}
	return args, n
}

func TestEngineStartGame(t *testing.T) {
	e := NewEngine(WithSeed(10))
	out := startRoom(t, e)
	if len(out) != 1 {
		t.Fatalf("expected 1 message, got %d", len(out))
	}
	args, n := decodeNotify(t, out[0])
	if args.RoomId != 1 || engine.Target(args.UserId) != engine.Room {
		t.Fatalf("expected room broadcast, got %+v", args)
	}
	if n.GameStart == nil || n.GameStart.State == nil || len(n.GameStart.State.PlayerStates) != 3 {
		t.Fatalf("unexpected start view %+v", n.GameStart)
	}
	state, _ := e.State().Room(1)
	if state.Settings().RoundTime != 20 {
		t.Fatalf("expected round time 20, got %d", state.Settings().RoundTime)
	}

	_, err := e.OnStartGame(&pb.StartGameArgs{RoomId: 1, UserId: []uint32{1, 2}})
	if !errors.Is(err, define.ErrInvariantViolation) {
		t.Fatalf("expected invariant violation, got %v", err)
	}
}

func TestEngineReserveFromDeckEnvelopes(t *testing.T) {
	e := NewEngine(WithSeed(10))
	startRoom(t, e)
	state, _ := e.State().Room(1)
	tier, _ := state.Board().Tier(0)
	top, _ := tier.PeekTop()
	deck := tier.DeckLen()

	op := &UserOperation{Reserve: &Reserve{DevelopmentLevel: 0, Index: -1}}
	out, err := operate(e, 2, op)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(out))
	}

	args, n := decodeNotify(t, out[0])
	if engine.Target(args.UserId) != engine.ToPlayer(2) || n.ReserveRsp == nil || *n.ReserveRsp.Card != top {
		t.Fatalf("expected private reveal of %v, got %+v %+v", top, args, n)
	}

	args, n = decodeNotify(t, out[1])
	if engine.Target(args.UserId) != engine.Room || n.State == nil {
		t.Fatalf("expected state broadcast, got %+v", args)
	}
	if v := n.State.Player(2); v.ReservedNum != 1 {
		t.Fatalf("expected one reservation in public state, got %d", v.ReservedNum)
	}
	if got := n.State.Levels[0].DeckNum; got != int32(deck-1) {
		t.Fatalf("expected deck %d, got %d", deck-1, got)
	}

	args, n = decodeNotify(t, out[2])
	if engine.Target(args.UserId) != engine.ToOthers(2) || n.LastUserOperation == nil {
		t.Fatalf("expected echo to others, got %+v", args)
	}
	if got := n.LastUserOperation.Reserve; got == nil || got.Index != -1 {
		t.Fatalf("unexpected echo %+v", n.LastUserOperation)
	}
	for _, id := range []uint32{1, 3} {
		if !engine.Target(args.UserId).Includes(id) {
			t.Fatalf("echo must reach player %d", id)
		}
	}
	if engine.Target(args.UserId).Includes(2) {
		t.Fatal("echo must skip the actor")
	}
}

func TestEngineTakeEnvelopes(t *testing.T) {
	e := NewEngine(WithSeed(3))
	startRoom(t, e)

	out, err := operate(e, 1, &UserOperation{Take: &Take{Resources: []ResourceType{Agate, Diamond, Sapphire}}})
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(out))
	}
	_, n := decodeNotify(t, out[0])
	if n.State.ResourcesOnBoard[Agate] != 6 || n.State.ResourcesOnBoard[Emerald] != 7 {
		t.Fatalf("unexpected board %v", n.State.ResourcesOnBoard)
	}
	_, n = decodeNotify(t, out[1])
	if n.LastUserOperation.Take == nil || len(n.LastUserOperation.Take.Resources) != 3 {
		t.Fatalf("unexpected echo %+v", n.LastUserOperation)
	}
}

func TestEngineQueryState(t *testing.T) {
	e := NewEngine(WithSeed(3))
	startRoom(t, e)

	out, err := e.OnQueryState(&pb.QueryStateArgs{RoomId: 1, UserId: 3})
	if err != nil || len(out) != 1 {
		t.Fatalf("expected one message, got %v, %v", out, err)
	}
	args, n := decodeNotify(t, out[0])
	if engine.Target(args.UserId) != engine.ToPlayer(3) || n.State == nil {
		t.Fatalf("expected private state, got %+v", args)
	}

	if _, err = e.OnQueryState(&pb.QueryStateArgs{RoomId: 8, UserId: 3}); !errors.Is(err, define.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEngineBadOperation(t *testing.T) {
	e := NewEngine(WithSeed(3))
	startRoom(t, e)

	_, err := e.OnUserOperation(&pb.UserOperationArgs{RoomId: 1, UserId: 1})
	if !errors.Is(err, define.ErrIllegalOperation) {
		t.Fatalf("expected illegal operation, got %v", err)
	}
	_, err = e.OnUserOperation(&pb.UserOperationArgs{
		RoomId: 1,
		UserId: 1,
		Custom: &anypb.Any{TypeUrl: pb.TypeUrlPrefix + TypeUserOperation, Value: []byte{0xff}},
	})
	if !errors.Is(err, define.ErrIllegalOperation) {
		t.Fatalf("expected illegal operation, got %v", err)
	}

	//empty union
	out, err := operate(e, 1, &UserOperation{})
	if err != nil || out != nil {
		t.Fatalf("expected no output, got %v, %v", out, err)
	}
}

func TestEngineCloseRoom(t *testing.T) {
	e := NewEngine(WithSeed(3))
	startRoom(t, e)
	if !e.CloseRoom(1) || e.CloseRoom(1) {
		t.Fatal("expected room to close exactly once")
	}
	if _, err := operate(e, 1, &UserOperation{Take: &Take{}}); !errors.Is(err, define.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEngineSeededReplay(t *testing.T) {
	ops := []struct {
		player uint32
		op     *UserOperation
	}{
		{1, &UserOperation{Take: &Take{Resources: []ResourceType{Ruby, Emerald}}}},
		{2, &UserOperation{Reserve: &Reserve{DevelopmentLevel: 1, Index: -1}}},
		{3, &UserOperation{Reserve: &Reserve{DevelopmentLevel: 2, Index: 0}}},
	}
	run := func() [][]byte {
		e := NewEngine(WithSeed(77))
		var encoded [][]byte
		for _, msg := range startRoom(t, e) {
			b, _ := msg.Marshal()
			encoded = append(encoded, b)
		}
		for _, o := range ops {
			out, err := operate(e, o.player, o.op)
			if err != nil {
				t.Fatalf("operate: %v", err)
			}
			for _, msg := range out {
				b, err := msg.Marshal()
				if err != nil {
					t.Fatalf("marshal: %v", err)
				}
				encoded = append(encoded, b)
			}
		}
		return encoded
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("expected %d messages, got %d", len(a), len(b))
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			t.Fatalf("message %d diverged", i)
		}
	}
}
