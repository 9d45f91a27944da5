package network

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/pb"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

/*
 * websocket link face, implement of ILink
 * - one provider message per binary frame
 */

//face info
type WsLink struct {
	*inbound
	conn         *websocket.Conn
	writeMu      sync.Mutex
	writeTimeout time.Duration
	logger       *zap.Logger
}

//construct over an open websocket
func NewWsLink(conn *websocket.Conn, opts *Options) *WsLink {
	this := &WsLink{
		inbound:      newInbound(opts.Config.GetPacketReceiveChanLimit()),
		conn:         conn,
		writeTimeout: opts.Config.GetConnWriteTimeout(),
		logger:       opts.Logger,
	}
	go this.readLoop()
	return this
}

func dialWs(ctx context.Context, url string, opts *Options) (*WsLink, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: opts.DialTimeout,
	}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, &DialError{Stage: "websocket dial", Err: err}
	}
	opts.Logger.Info("websocket link open", zap.String("url", url))
	return NewWsLink(conn, opts), nil
}

//send message
func (f *WsLink) Send(msg *pb.ProviderMsg) error {
	if f.stopped() {
		return f.Err()
	}
	data, err := msg.Marshal()
	if err != nil {
		return err
	}
	f.writeMu.Lock()
	defer f.writeMu.Unlock()
	if f.writeTimeout > 0 {
		f.conn.SetWriteDeadline(time.Now().Add(f.writeTimeout))
	}
	return f.conn.WriteMessage(websocket.BinaryMessage, data)
}

//close link
func (f *WsLink) Close() error {
	f.stop(define.ErrConnClosing)
	f.writeMu.Lock()
	f.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	f.writeMu.Unlock()
	return f.conn.Close()
}

//read loop, the only producer of inbound
func (f *WsLink) readLoop() {
	var err error
	defer func() {
		f.exit(err)
	}()
	for {
		var (
			kind int
			data []byte
		)
		kind, data, err = f.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				err = define.ErrLinkClosed
			}
			return
		}
		if kind != websocket.BinaryMessage {
			f.logger.Debug("skip non binary frame", zap.Int("kind", kind))
			continue
		}
		msg := &pb.ProviderMsg{}
		if err = msg.Unmarshal(data); err != nil {
			err = fmt.Errorf("bad frame from core: %w", err)
			return
		}
		if !f.deliver(msg) {
			return
		}
	}
}
