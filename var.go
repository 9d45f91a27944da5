package gamehost

import (
	"context"

	"github.com/andyzhou/gamehost/iface"
	"github.com/andyzhou/gamehost/network"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

/*
 * shared variable or struct
 * most used for provider options
 */

//instrumentation scope of provider spans
const tracerName = "github.com/andyzhou/gamehost"

//local room request queue size
const roomChanSize = 16

//DialFunc opens the link to the core service
type DialFunc func(ctx context.Context, address string, opts *network.Options) (iface.ILink, error)

//provider option
type Option func(*Provider)

func WithLogger(logger *zap.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithDialer(dial DialFunc) Option {
	return func(p *Provider) {
		if dial != nil {
			p.dial = dial
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Provider) {
		if tp != nil {
			p.tracer = tp.Tracer(tracerName)
		}
	}
}
