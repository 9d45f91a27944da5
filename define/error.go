package define

import "errors"

/*
 * errors declare
 */

var (
	ErrorOfInvalidPara = errors.New("invalid input parameter")

	//for network
	ErrConnClosing   = errors.New("use of closed network connection")
	ErrWriteBlocking = errors.New("write packet was blocking")
	ErrReadBlocking  = errors.New("read packet was blocking")
	ErrLinkClosed    = errors.New("link closed by peer")

	//for provider
	ErrNotRegistered = errors.New("provider is not registered")
	ErrNoEngine      = errors.New("engine is nil")

	//for room
	ErrRoomExists = errors.New("room already exists")
)
