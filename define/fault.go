package define

import (
	"errors"
	"fmt"
)

/*
 * engine fault, returned by every mutating call.
 * faults are protocol or programmer contract violations,
 * never user facing errors.
 */

//fault kind
type FaultKind string

const (
	FaultNotFound           FaultKind = "NOT_FOUND"
	FaultInvariantViolation FaultKind = "INVARIANT_VIOLATION"
	FaultIllegalOperation   FaultKind = "ILLEGAL_OPERATION"
)

//kind sentinels, for errors.Is
var (
	ErrNotFound           = &Fault{Kind: FaultNotFound}
	ErrInvariantViolation = &Fault{Kind: FaultInvariantViolation}
	ErrIllegalOperation   = &Fault{Kind: FaultIllegalOperation}
)

//operation names carried by faults
const (
	OpCreateRoom = "create_room"
	OpQueryState = "query_state"
	OpOperation  = "user_operation"
)

//face info
type Fault struct {
	Kind   FaultKind
	Op     string
	Room   int32
	Player uint32
	Msg    string
	Cause  error //optional marker, matched by errors.Is
}

//construct
func NewFault(kind FaultKind, format string, args ...interface{}) *Fault {
	return &Fault{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func NotFound(format string, args ...interface{}) *Fault {
	return NewFault(FaultNotFound, format, args...)
}

func InvariantViolation(format string, args ...interface{}) *Fault {
	return NewFault(FaultInvariantViolation, format, args...)
}

func IllegalOperation(format string, args ...interface{}) *Fault {
	return NewFault(FaultIllegalOperation, format, args...)
}

//RoomExists is the invariant violation of a second create on a live room
func RoomExists(roomId int32) *Fault {
	f := InvariantViolation("room %d already exists", roomId)
	f.Cause = ErrRoomExists
	return f
}

//Error implements error
func (f *Fault) Error() string {
	if f.Op == "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Msg)
	}
	return fmt.Sprintf("%s %s room=%d player=%d: %s",
		f.Kind, f.Op, f.Room, f.Player, f.Msg)
}

//Is matches by kind
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok {
		return false
	}
	return f.Kind == t.Kind
}

func (f *Fault) Unwrap() error {
	return f.Cause
}

//At returns a copy annotated with the call site, keeps existing annotation
func (f *Fault) At(op string, room int32, player uint32) *Fault {
	c := *f
	if c.Op == "" {
		c.Op = op
		c.Room = room
		c.Player = player
	}
	return &c
}

//AsFault extracts a fault from an error chain
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

/*
 * registration rejected by core service.
 * recoverable, the provider may register again.
 */

type RegisterError struct {
	Code int32
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("register rejected, error number %d", e.Code)
}

func IsRegisterError(err error) bool {
	var e *RegisterError
	return errors.As(err, &e)
}
