package network

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/iface"
	"go.uber.org/zap"
)

/*
 * conn face, implement of IConn
 * - framed packet stream over a raw connect
 * - read, write and handle loops
 */

//face info
type Conn struct {
	conn              net.Conn //raw connection
	protocol          iface.IProtocol
	config            iface.IConfig
	callback          iface.IConnCallBack //cb interface for out side
	logger            *zap.Logger
	closeOnce         sync.Once
	closeFlag         int32
	packetSendChan    chan iface.IPacket
	packetReceiveChan chan iface.IPacket
	closeChan         chan bool
	wg                *sync.WaitGroup
}

//construct
func NewConn(
	conn net.Conn,
	protocol iface.IProtocol,
	config iface.IConfig,
	logger *zap.Logger,
) *Conn {
	if logger == nil {
		logger = zap.NewNop()
	}
	//self init
	this := &Conn{
		conn:              conn,
		protocol:          protocol,
		config:            config,
		logger:            logger,
		packetSendChan:    make(chan iface.IPacket, config.GetPacketSendChanLimit()),
		packetReceiveChan: make(chan iface.IPacket, config.GetPacketReceiveChanLimit()),
		closeChan:         make(chan bool),
		wg:                new(sync.WaitGroup),
	}
	return this
}

//close
func (f *Conn) Close() {
	f.closeOnce.Do(func() {
		atomic.StoreInt32(&f.closeFlag, 1)
		close(f.closeChan)
		f.conn.Close()
		if f.callback != nil {
			f.callback.OnClose(f)
		}
	})
}

//check is closed
func (f *Conn) IsClosed() bool {
	return atomic.LoadInt32(&f.closeFlag) == 1
}

//do it, spawn three process
func (f *Conn) Do() {
	f.asyncDo(f.handleLoop, f.wg)
	f.asyncDo(f.readLoop, f.wg)
	f.asyncDo(f.writeLoop, f.wg)
}

//wait all loops quit
func (f *Conn) Wait() {
	f.wg.Wait()
}

//get raw connect
func (f *Conn) GetRawConn() net.Conn {
	return f.conn
}

//set call back
func (f *Conn) SetCallBack(cb iface.IConnCallBack) {
	f.callback = cb
}

//async send packet
func (f *Conn) AsyncWritePacket(
	packet iface.IPacket,
	timeout time.Duration,
) error {
	//basic check
	if packet == nil || f.IsClosed() {
		return define.ErrConnClosing
	}

	if timeout == 0 {
		select {
		case f.packetSendChan <- packet:
			return nil
		case <-f.closeChan:
			return define.ErrConnClosing
		default:
			return define.ErrWriteBlocking
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case f.packetSendChan <- packet:
		return nil
	case <-f.closeChan:
		return define.ErrConnClosing
	case <-timer.C:
		return define.ErrWriteBlocking
	}
}

///////////////
//private func
///////////////

//write loop
func (f *Conn) writeLoop() {
	defer f.Close()

	writeTimeout := f.config.GetConnWriteTimeout()
	for {
		select {
		case <-f.closeChan:
			return
		case p := <-f.packetSendChan:
			if writeTimeout > 0 {
				f.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			}
			if _, err := f.conn.Write(p.Pack()); err != nil {
				f.logger.Warn("conn write failed", zap.Error(err))
				return
			}
		}
	}
}

//read loop
func (f *Conn) readLoop() {
	defer f.Close()

	readTimeout := f.config.GetConnReadTimeout()
	for {
		if f.IsClosed() {
			return
		}
		if readTimeout > 0 {
			f.conn.SetReadDeadline(time.Now().Add(readTimeout))
		}
		packet, err := f.protocol.ReadPacket(f.conn)
		if err != nil {
			if !f.IsClosed() {
				f.logger.Debug("conn read stopped", zap.Error(err))
			}
			return
		}
		select {
		case f.packetReceiveChan <- packet:
		case <-f.closeChan:
			return
		}
	}
}

//handle loop
func (f *Conn) handleLoop() {
	defer f.Close()

	for {
		select {
		case <-f.closeChan:
			return
		case p := <-f.packetReceiveChan:
			if f.callback != nil && !f.callback.OnMessage(f, p) {
				return
			}
		}
	}
}

func (f *Conn) asyncDo(fun func(), wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		fun()
	}()
}
