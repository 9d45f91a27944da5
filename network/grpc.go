package network

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/pb"
	"github.com/andyzhou/gamehost/protocol"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

/*
 * grpc link face, implement of ILink
 * - one bidi stream on the core provider method
 */

var providerStreamDesc = &grpc.StreamDesc{
	StreamName:    define.CoreProviderStream,
	ServerStreams: true,
	ClientStreams: true,
}

//face info
type GrpcLink struct {
	*inbound
	cc     *grpc.ClientConn
	stream grpc.ClientStream
	cancel context.CancelFunc
	sendMu sync.Mutex
	logger *zap.Logger
}

//dialGrpc opens the provider stream, ctx bounds the open only
func dialGrpc(ctx context.Context, target string, opts *Options) (*GrpcLink, error) {
	cc, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(protocol.Codec{})),
	)
	if err != nil {
		return nil, &DialError{Stage: "grpc client", Err: err}
	}

	streamCtx, cancel := context.WithCancel(context.Background())
	release := context.AfterFunc(ctx, cancel)
	stream, err := cc.NewStream(streamCtx, providerStreamDesc, define.CoreProviderMethod)
	if !release() && err == nil {
		err = ctx.Err()
	}
	if err != nil {
		cancel()
		cc.Close()
		return nil, &DialError{Stage: "grpc stream", Err: err}
	}

	//self init
	this := &GrpcLink{
		inbound: newInbound(opts.Config.GetPacketReceiveChanLimit()),
		cc:      cc,
		stream:  stream,
		cancel:  cancel,
		logger:  opts.Logger,
	}
	go this.recvLoop()
	opts.Logger.Info("grpc link open", zap.String("target", target))
	return this, nil
}

//send message
func (f *GrpcLink) Send(msg *pb.ProviderMsg) error {
	if f.stopped() {
		return f.Err()
	}
	f.sendMu.Lock()
	defer f.sendMu.Unlock()
	return f.stream.SendMsg(msg)
}

//close link
func (f *GrpcLink) Close() error {
	f.stop(define.ErrConnClosing)
	f.sendMu.Lock()
	f.stream.CloseSend()
	f.sendMu.Unlock()
	f.cancel()
	return f.cc.Close()
}

//recv loop, the only producer of inbound
func (f *GrpcLink) recvLoop() {
	var err error
	defer func() {
		f.exit(err)
	}()
	for {
		msg := &pb.ProviderMsg{}
		if err = f.stream.RecvMsg(msg); err != nil {
			if errors.Is(err, io.EOF) {
				err = define.ErrLinkClosed
			}
			if !f.stopped() {
				f.logger.Warn("grpc link recv stopped", zap.Error(err))
			}
			return
		}
		if !f.deliver(msg) {
			return
		}
	}
}
