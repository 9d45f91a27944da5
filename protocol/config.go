package protocol

import (
	"time"

	"github.com/andyzhou/gamehost/define"
)

/*
 * link config, implement of `IConfig`
 */

//config info
type Config struct {
	packetSendChanLimit    uint32        // the limit of packet send channel
	packetReceiveChanLimit uint32        // the limit of packet receive channel
	connReadTimeout        time.Duration // read timeout, 0 means none
	connWriteTimeout       time.Duration // write timeout
}

//construct
func NewConfig(
	sendChanLimit, receiveChanLimit uint32,
	readTimeOut, writeTimeOut time.Duration,
) *Config {
	if sendChanLimit == 0 {
		sendChanLimit = define.LinkSendChanSize
	}
	if receiveChanLimit == 0 {
		receiveChanLimit = define.LinkRecvChanSize
	}
	return &Config{
		packetSendChanLimit:    sendChanLimit,
		packetReceiveChanLimit: receiveChanLimit,
		connReadTimeout:        readTimeOut,
		connWriteTimeout:       writeTimeOut,
	}
}

//default config
func DefaultConfig() *Config {
	return NewConfig(
		define.LinkSendChanSize,
		define.LinkRecvChanSize,
		0,
		define.LinkWriteTimeout,
	)
}

func (f *Config) GetPacketSendChanLimit() uint32 {
	return f.packetSendChanLimit
}

func (f *Config) GetPacketReceiveChanLimit() uint32 {
	return f.packetReceiveChanLimit
}

func (f *Config) GetConnReadTimeout() time.Duration {
	return f.connReadTimeout
}

func (f *Config) GetConnWriteTimeout() time.Duration {
	return f.connWriteTimeout
}
