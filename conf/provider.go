package conf

import (
	"fmt"
	"time"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/iface"
	"github.com/andyzhou/gamehost/protocol"
	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

/*
 * conf for provider, loaded from environment
 */

type ProviderConf struct {
	CoreAddr         string        `env:"GAMEHOST_CORE_ADDR" envDefault:"grpc://localhost:50051"`
	ProviderId       string        `env:"GAMEHOST_PROVIDER_ID"`
	KcpPassword      string        `env:"GAMEHOST_KCP_PASSWORD"`
	KcpSalt          string        `env:"GAMEHOST_KCP_SALT"`
	Seed             int64         `env:"GAMEHOST_SEED"` //0 means crypto seed
	RegisterRetries  int           `env:"GAMEHOST_REGISTER_RETRIES" envDefault:"3"`
	RegisterInterval time.Duration `env:"GAMEHOST_REGISTER_INTERVAL" envDefault:"2s"`
	DialTimeout      time.Duration `env:"GAMEHOST_DIAL_TIMEOUT" envDefault:"5s"`
	SendChanSize     uint32        `env:"GAMEHOST_SEND_CHAN_SIZE" envDefault:"1024"`
	RecvChanSize     uint32        `env:"GAMEHOST_RECV_CHAN_SIZE" envDefault:"1024"`
	LogLevel         string        `env:"GAMEHOST_LOG_LEVEL" envDefault:"info"`
}

// LoadProviderConf reads the environment. A missing provider id becomes
// id-<game>-<uuid>.
func LoadProviderConf(game string) (*ProviderConf, error) {
	c := &ProviderConf{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if c.ProviderId == "" {
		c.ProviderId = NewProviderId(game)
	}
	if c.RegisterRetries <= 0 {
		c.RegisterRetries = define.MaxRegisterRetries
	}
	if c.RegisterInterval <= 0 {
		c.RegisterInterval = define.RegisterRetryInterval
	}
	return c, nil
}

func NewProviderId(game string) string {
	return fmt.Sprintf("id-%s-%s", game, uuid.NewString())
}

//NewLogger builds a production logger at the configured level
func (c *ProviderConf) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

//LinkConfig sizes the link queues
func (c *ProviderConf) LinkConfig() iface.IConfig {
	return protocol.NewConfig(c.SendChanSize, c.RecvChanSize, 0, define.LinkWriteTimeout)
}
