package define

import "time"

//global
const (
	MaxRegisterRetries    = 3
	RegisterRetryInterval = 2 * time.Second
	DialTimeout           = 5 * time.Second
	LinkSendChanSize      = 1024
	LinkRecvChanSize      = 1024
	LinkWriteTimeout      = 5 * time.Second
)

//core service stream method, used by grpc link
const (
	CoreProviderMethod = "/core.GameCore/Provider"
	CoreProviderStream = "Provider"
)

//default user bounds for registration
const (
	DefaultMinUsers = 2
	DefaultMaxUsers = 4
)
