package uno

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
 * uno engine, implement of IEngine
 */

const GameName = "uno"

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
		OpDraw: this.onDraw,
		OpSkip: this.onSkip,
		OpPlay: this.onPlay,
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

//OnStartGame deals and sends every player its own hand
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
		zap.Uint32("first", start.FirstPlayer),
	)

	msgs := make([]*pb.ProviderMsg, 0, len(msg.UserId))
	for i, id := range msg.UserId {
		flipped := start.Flipped
		msgs = append(msgs, engine.Notify(msg.RoomId, engine.ToPlayer(id), notify(&NotifyMsg{
			GameStart: &GameStart{
				InitHandcards: start.Hands[i],
				FlippedCard:   &flipped,
				FirstPlayer:   start.FirstPlayer,
			},
		})))
	}
	return msgs, nil
}

//OnQueryState has nothing to answer, hands are client side
func (f *Engine) OnQueryState(msg *pb.QueryStateArgs) ([]*pb.ProviderMsg, error) {
	return nil, nil
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

//draw count goes to the room, the cards to the drawer only
func (f *Engine) onDraw(roomId int32, playerId uint32, op *UserOperation) ([]*pb.ProviderMsg, error) {
	state, err := f.state.Room(roomId)
	if err != nil {
		return nil, err
	}
	cards, err := state.Draw(playerId, op.Draw.Number)
	if err != nil {
		return nil, err
	}
	return []*pb.ProviderMsg{
		engine.Notify(roomId, engine.Room, notify(&NotifyMsg{Draw: &Draw{Number: op.Draw.Number}})),
		engine.Notify(roomId, engine.ToPlayer(playerId), notify(&NotifyMsg{DrawRsp: &DrawRsp{Cards: cards}})),
	}, nil
}

func (f *Engine) onSkip(roomId int32, playerId uint32, op *UserOperation) ([]*pb.ProviderMsg, error) {
	state, err := f.state.Room(roomId)
	if err != nil {
		return nil, err
	}
	if err = state.Skip(playerId); err != nil {
		return nil, err
	}
	return []*pb.ProviderMsg{
		engine.Notify(roomId, engine.Room, notify(&NotifyMsg{Skip: &SkipTurn{}})),
	}, nil
}

func (f *Engine) onPlay(roomId int32, playerId uint32, op *UserOperation) ([]*pb.ProviderMsg, error) {
	if op.Play.Card == nil {
		return nil, define.IllegalOperation("play without a card")
	}
	finished, err := f.state.Play(roomId, playerId, *op.Play.Card)
	if err != nil {
		return nil, err
	}
	msgs := []*pb.ProviderMsg{
		engine.Notify(roomId, engine.Room, notify(&NotifyMsg{Play: &Play{
			Card:      op.Play.Card,
			NextColor: op.Play.NextColor,
		}})),
	}
	if finished {
		f.logger.Info("room finished",
			zap.Int32("room", roomId),
			zap.Uint32("winner", playerId),
		)
		msgs = append(msgs, engine.CloseGame(roomId))
	}
	return msgs, nil
}

func notify(m *NotifyMsg) *anypb.Any {
	return pb.Pack(m, TypeNotifyMsg)
}
