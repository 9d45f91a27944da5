// Package network holds the duplex links between a game provider and the
// core service: a grpc bidi stream, a kcp session with packet framing and a
// websocket with binary frames.
package network

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/iface"
	"github.com/andyzhou/gamehost/protocol"
	"go.uber.org/zap"
)

//link schemes
const (
	SchemeGrpc = "grpc"
	SchemeKcp  = "kcp"
	SchemeWs   = "ws"
	SchemeWss  = "wss"
)

// DialError reports which stage of opening a link failed.
type DialError struct {
	Stage string
	Err   error
}

func (e *DialError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *DialError) Unwrap() error {
	return e.Err
}

//dial options
type Options struct {
	Password    string //kcp only
	Salt        string //kcp only
	DialTimeout time.Duration
	Config      iface.IConfig
	Logger      *zap.Logger
}

func (o *Options) withDefaults() *Options {
	c := Options{}
	if o != nil {
		c = *o
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = define.DialTimeout
	}
	if c.Config == nil {
		c.Config = protocol.DefaultConfig()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return &c
}

// Dial opens a link to the core service. The address scheme selects the
// transport: grpc://host:port, kcp://host:port, ws:// or wss:// urls.
func Dial(ctx context.Context, address string, opts *Options) (iface.ILink, error) {
	opts = opts.withDefaults()
	u, err := url.Parse(address)
	if err != nil {
		return nil, &DialError{Stage: "parse address", Err: err}
	}
	if u.Host == "" {
		return nil, &DialError{Stage: "parse address", Err: fmt.Errorf("no host in %q", address)}
	}

	ctx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()

	switch u.Scheme {
	case SchemeGrpc:
		link, err := dialGrpc(ctx, u.Host, opts)
		if err != nil {
			return nil, err
		}
		return link, nil
	case SchemeKcp:
		link, err := dialKcp(ctx, u.Host, opts)
		if err != nil {
			return nil, err
		}
		return link, nil
	case SchemeWs, SchemeWss:
		link, err := dialWs(ctx, address, opts)
		if err != nil {
			return nil, err
		}
		return link, nil
	}
	return nil, &DialError{Stage: "parse address", Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
}
