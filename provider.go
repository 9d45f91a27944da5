// Package gamehost runs a game engine as a provider of the core service:
// it dials the core, registers the game and feeds every inbound message
// through the engine on a single worker loop.
package gamehost

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/andyzhou/gamehost/conf"
	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/engine"
	"github.com/andyzhou/gamehost/iface"
	"github.com/andyzhou/gamehost/network"
	"github.com/andyzhou/gamehost/pb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

/*
 * provider api face
 */

//face info
type Provider struct {
	conf       *conf.ProviderConf
	engine     iface.IEngine
	table      engine.Table
	logger     *zap.Logger
	tracer     trace.Tracer
	dial       DialFunc
	link       iface.ILink
	limiter    *rate.Limiter
	roomChan   chan *conf.RoomConf
	seq        int32
	attempts   int
	registered atomic.Bool
}

//construct, step-1
func NewProvider(cfg *conf.ProviderConf, e iface.IEngine, opts ...Option) (*Provider, error) {
	//basic check
	if cfg == nil {
		return nil, define.ErrorOfInvalidPara
	}
	if e == nil {
		return nil, define.ErrNoEngine
	}
	//self init
	this := &Provider{
		conf:     cfg,
		engine:   e,
		table:    engine.TableOf(e),
		logger:   zap.NewNop(),
		tracer:   otel.Tracer(tracerName),
		dial:     network.Dial,
		limiter:  rate.NewLimiter(rate.Every(cfg.RegisterInterval), 1),
		roomChan: make(chan *conf.RoomConf, roomChanSize),
	}
	for _, opt := range opts {
		opt(this)
	}
	this.logger = this.logger.With(
		zap.String("game", e.Name()),
		zap.String("provider", cfg.ProviderId),
	)
	return this, nil
}

//start, step-2
//dials the core, registers and serves until ctx ends or the link drops.
//a cancelled ctx is a clean stop and returns nil.
func (f *Provider) Start(ctx context.Context) error {
	link, err := f.dial(ctx, f.conf.CoreAddr, &network.Options{
		Password:    f.conf.KcpPassword,
		Salt:        f.conf.KcpSalt,
		DialTimeout: f.conf.DialTimeout,
		Config:      f.conf.LinkConfig(),
		Logger:      f.logger,
	})
	if err != nil {
		return fmt.Errorf("dial core: %w", err)
	}
	f.link = link
	defer link.Close()

	if err = f.register(ctx); err != nil {
		return err
	}
	return f.runMainProcess(ctx)
}

//run with signal catch, for binaries
func (f *Provider) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
		os.Interrupt,
	)
	defer stop()
	return f.Start(ctx)
}

//create room on the host side, step-3
//the room goes through the same start game path as core requests
func (f *Provider) CreateRoom(ctx context.Context, cfg *conf.RoomConf) error {
	if cfg == nil {
		return define.ErrorOfInvalidPara
	}
	if err := cfg.Check(); err != nil {
		return err
	}
	select {
	case f.roomChan <- cfg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

//is registered
func (f *Provider) Registered() bool {
	return f.registered.Load()
}

///////////////
//private func
///////////////

//run main process
func (f *Provider) runMainProcess(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			f.logger.Info("provider stopped")
			return nil
		case cfg := <-f.roomChan:
			msg := &pb.ProviderMsg{Msg: cfg.StartArgs()}
			if err := f.handle(ctx, msg); err != nil {
				return err
			}
		case msg, ok := <-f.link.Inbound():
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("core link: %w", f.link.Err())
			}
			if err := f.handle(ctx, msg); err != nil {
				return err
			}
		}
	}
}

//handle one inbound message, all replies are sent before the next one
func (f *Provider) handle(ctx context.Context, msg *pb.ProviderMsg) error {
	tag := msg.Tag()
	ctx, span := f.tracer.Start(ctx, "provider."+tag.String(),
		trace.WithAttributes(
			attribute.String("game", f.engine.Name()),
			attribute.Int("seq", int(msg.SequenceId)),
		),
	)
	defer span.End()

	if !f.registered.Load() && tag != pb.TagRegisterRet {
		f.logger.Warn("traffic before register ack",
			zap.Stringer("tag", tag),
			zap.Error(define.ErrNotRegistered),
		)
	}

	out, err := engine.Dispatch(msg, f.table)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if define.IsRegisterError(err) {
			return f.retryRegister(ctx, err)
		}
		out = f.onFault(err, msg)
	} else if tag == pb.TagRegisterRet {
		f.registered.Store(true)
		f.attempts = 0
	}

	span.SetAttributes(attribute.Int("replies", len(out)))
	for _, reply := range out {
		if err = f.send(reply); err != nil {
			return fmt.Errorf("send %s: %w", reply.Tag(), err)
		}
	}
	return nil
}

//onFault applies the room policy and returns the replies for the core
func (f *Provider) onFault(err error, msg *pb.ProviderMsg) []*pb.ProviderMsg {
	fault, ok := define.AsFault(err)
	if !ok {
		f.logger.Error("engine failed", zap.Stringer("tag", msg.Tag()), zap.Error(err))
		return nil
	}
	fields := []zap.Field{
		zap.String("kind", string(fault.Kind)),
		zap.String("op", fault.Op),
		zap.Int32("room", fault.Room),
		zap.Uint32("player", fault.Player),
		zap.Int32("seq", msg.SequenceId),
		zap.String("reason", fault.Msg),
	}

	switch {
	case fault.Kind == define.FaultNotFound:
		f.logger.Warn("engine fault", fields...)
		return nil
	case errors.Is(fault, define.ErrRoomExists):
		//the running room stays
		f.logger.Error("duplicate room", fields...)
		return nil
	}

	dropped := f.engine.CloseRoom(fault.Room)
	f.logger.Error("engine fault, room dropped", append(fields, zap.Bool("dropped", dropped))...)
	return []*pb.ProviderMsg{engine.CloseGame(fault.Room)}
}

//register game, waits on the limiter between attempts
func (f *Provider) register(ctx context.Context) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return err
	}
	f.logger.Info("register game", zap.Int("attempt", f.attempts+1))
	return f.send(engine.Register(f.conf.ProviderId, f.engine.Name(), f.engine.Setting()))
}

func (f *Provider) retryRegister(ctx context.Context, cause error) error {
	f.registered.Store(false)
	f.attempts++
	if f.attempts > f.conf.RegisterRetries {
		return fmt.Errorf("register %s: %w", f.engine.Name(), cause)
	}
	f.logger.Warn("register rejected, retry",
		zap.Int("attempt", f.attempts),
		zap.Error(cause),
	)
	return f.register(ctx)
}

//send stamps the sequence id
func (f *Provider) send(msg *pb.ProviderMsg) error {
	f.seq++
	msg.SequenceId = f.seq
	return f.link.Send(msg)
}
