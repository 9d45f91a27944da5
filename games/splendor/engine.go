package splendor

import (
	"time"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/engine"
	"github.com/andyzhou/gamehost/pb"
	"github.com/andyzhou/gamehost/random"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/anypb"
)

/*
 * splendor engine, implement of IEngine
 */

const GameName = "splendor"

//engine option
type Option func(*Engine)

//WithSeed fixes the random source, zero keeps a crypto seed
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.seed = seed
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

//face info
type Engine struct {
	seed   int64
	logger *zap.Logger
	state  *GlobalState
	ops    engine.OpTable[OpKind, *UserOperation]
}

//construct
func NewEngine(opts ...Option) *Engine {
	//self init
	this := &Engine{
		logger: zap.NewNop(),
	}
	if seed, err := random.NewSeed(); err == nil {
		this.seed = seed
	} else {
		this.seed = time.Now().UnixNano()
	}
	for _, opt := range opts {
		opt(this)
	}
	this.state = NewGlobalState(this.seed)
	this.ops = engine.OpTable[OpKind, *UserOperation]{
		OpTake:     this.onTake,
		OpPurchase: this.onPurchase,
		OpReserve:  this.onReserve,
	}
	return this
}

func (f *Engine) Name() string {
	return GameName
}

func (f *Engine) Setting() *pb.GameSetting {
	return &pb.GameSetting{
		MaxUsers: define.DefaultMaxUsers,
		MinUsers: define.DefaultMinUsers,
	}
}

//State exposes the room registry
func (f *Engine) State() *GlobalState {
	return f.state
}

func (f *Engine) CloseRoom(roomId int32) bool {
	return f.state.CloseRoom(roomId)
}

func (f *Engine) OnRegisterRet(msg *pb.RegisterRet) error {
	if err := engine.CheckRegisterRet(msg); err != nil {
		return err
	}
	f.logger.Info("registered", zap.String("game", GameName))
	return nil
}

func (f *Engine) OnStartGame(msg *pb.StartGameArgs) ([]*pb.ProviderMsg, error) {
	settings := StartGameSettings{}
	if msg.Custom != nil {
		if err := pb.Unpack(msg.Custom, &settings); err != nil {
			return nil, define.IllegalOperation("bad start game settings: %v", err)
		}
	}
	start, err := f.state.NewGame(msg.RoomId, msg.UserId, settings)
	if err != nil {
		return nil, err
	}
	f.logger.Info("room created",
		zap.Int32("room", msg.RoomId),
		zap.Uint32s("players", msg.UserId),
		zap.Int32("first", start.FirstPlayer),
		zap.Int32("roundTime", settings.RoundTime),
	)
	return []*pb.ProviderMsg{
		engine.Notify(msg.RoomId, engine.Room, notify(&NotifyMsg{GameStart: start})),
	}, nil
}

//OnQueryState answers the public snapshot to the asking player only
func (f *Engine) OnQueryState(msg *pb.QueryStateArgs) ([]*pb.ProviderMsg, error) {
	state, err := f.state.Room(msg.RoomId)
	if err != nil {
		return nil, err
	}
	return []*pb.ProviderMsg{
		engine.Notify(msg.RoomId, engine.ToPlayer(msg.UserId), notify(&NotifyMsg{State: state.PublicState()})),
	}, nil
}

func (f *Engine) OnUserOperation(msg *pb.UserOperationArgs) ([]*pb.ProviderMsg, error) {
	op := &UserOperation{}
	if err := pb.Unpack(msg.Custom, op); err != nil {
		return nil, define.IllegalOperation("bad user operation: %v", err)
	}
	return f.ops.Dispatch(op.Kind(), msg.RoomId, msg.UserId, op)
}

////////////////
//private func
////////////////

func (f *Engine) onTake(roomId int32, playerId uint32, op *UserOperation) ([]*pb.ProviderMsg, error) {
	out, err := f.state.Take(roomId, playerId, op.Take)
	if err != nil {
		return nil, err
	}
	return f.envelopes(roomId, playerId, op, out), nil
}

func (f *Engine) onPurchase(roomId int32, playerId uint32, op *UserOperation) ([]*pb.ProviderMsg, error) {
	out, err := f.state.Purchase(roomId, playerId, op.Purchase)
	if err != nil {
		return nil, err
	}
	return f.envelopes(roomId, playerId, op, out), nil
}

func (f *Engine) onReserve(roomId int32, playerId uint32, op *UserOperation) ([]*pb.ProviderMsg, error) {
	out, err := f.state.Reserve(roomId, playerId, op.Reserve)
	if err != nil {
		return nil, err
	}
	return f.envelopes(roomId, playerId, op, out), nil
}

//envelopes of a transition: the private reveal first,
//then the room snapshot and the echo to everyone but the actor.
func (f *Engine) envelopes(roomId int32, playerId uint32, op *UserOperation, out *Outcome) []*pb.ProviderMsg {
	msgs := make([]*pb.ProviderMsg, 0, 3)
	if out.Revealed != nil {
		msgs = append(msgs, engine.Notify(roomId, engine.ToPlayer(playerId),
			notify(&NotifyMsg{ReserveRsp: &ReserveFromDeckRsp{Card: out.Revealed}})))
	}
	msgs = append(msgs,
		engine.Notify(roomId, engine.Room, notify(&NotifyMsg{State: out.State})),
		engine.Notify(roomId, engine.ToOthers(playerId), notify(&NotifyMsg{LastUserOperation: op})),
	)
	f.logger.Debug("operation applied",
		zap.Int32("room", roomId),
		zap.Uint32("player", playerId),
		zap.Int32("kind", int32(op.Kind())),
		zap.Int("messages", len(msgs)),
	)
	return msgs
}

func notify(m *NotifyMsg) *anypb.Any {
	return pb.Pack(m, TypeNotifyMsg)
}
