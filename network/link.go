package network

import (
	"sync"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/pb"
)

/*
 * inbound side shared by every link.
 * only the producing goroutine delivers and closes the channel,
 * anyone may stop it with a reason.
 */

type inbound struct {
	ch   chan *pb.ProviderMsg
	done chan struct{}
	once sync.Once
	mu   sync.Mutex
	err  error
}

func newInbound(size uint32) *inbound {
	return &inbound{
		ch:   make(chan *pb.ProviderMsg, size),
		done: make(chan struct{}),
	}
}

//deliver blocks until the message is queued or the link stopped
func (f *inbound) deliver(msg *pb.ProviderMsg) bool {
	select {
	case <-f.done:
		return false
	default:
	}
	select {
	case f.ch <- msg:
		return true
	case <-f.done:
		return false
	}
}

//stop records the first reason
func (f *inbound) stop(err error) {
	f.once.Do(func() {
		if err == nil {
			err = define.ErrLinkClosed
		}
		f.mu.Lock()
		f.err = err
		f.mu.Unlock()
		close(f.done)
	})
}

//exit is called once by the producer when it returns
func (f *inbound) exit(err error) {
	f.stop(err)
	close(f.ch)
}

func (f *inbound) Inbound() <-chan *pb.ProviderMsg {
	return f.ch
}

func (f *inbound) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *inbound) stopped() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
