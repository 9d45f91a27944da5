package network

import (
	"context"
	"crypto/sha1"
	"net"
	"time"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/iface"
	"github.com/andyzhou/gamehost/pb"
	"github.com/andyzhou/gamehost/protocol"
	"github.com/xtaci/kcp-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/pbkdf2"
)

/*
 * framed link face, implement of ILink and IConnCallBack
 * - provider messages in length prefixed packets
 * - runs over a kcp session or any stream connect
 */

//face info
type FramedLink struct {
	*inbound
	conn         *Conn
	writeTimeout time.Duration
	logger       *zap.Logger
}

//construct, starts the conn loops at once
func NewFramedLink(
	raw net.Conn,
	config iface.IConfig,
	logger *zap.Logger,
) *FramedLink {
	if logger == nil {
		logger = zap.NewNop()
	}
	//self init
	this := &FramedLink{
		inbound:      newInbound(config.GetPacketReceiveChanLimit()),
		writeTimeout: config.GetConnWriteTimeout(),
		logger:       logger,
	}
	this.conn = NewConn(raw, protocol.NewProtocol(), config, logger)
	this.conn.SetCallBack(this)
	this.conn.Do()

	//close inbound once every loop quit
	go func() {
		this.conn.Wait()
		this.exit(nil)
	}()
	return this
}

//send message
func (f *FramedLink) Send(msg *pb.ProviderMsg) error {
	if f.stopped() {
		return f.Err()
	}
	packet, err := protocol.NewPacketWithMsg(msg)
	if err != nil {
		return err
	}
	return f.conn.AsyncWritePacket(packet, f.writeTimeout)
}

//close link
func (f *FramedLink) Close() error {
	f.stop(define.ErrConnClosing)
	f.conn.Close()
	return nil
}

//cb for received packet
func (f *FramedLink) OnMessage(conn iface.IConn, packet iface.IPacket) bool {
	msg := &pb.ProviderMsg{}
	if err := msg.Unmarshal(packet.GetData()); err != nil {
		f.logger.Warn("bad packet from core",
			zap.Uint8("messageId", packet.GetMessageId()),
			zap.Error(err),
		)
		f.stop(err)
		return false
	}
	if uint8(msg.Tag()) != packet.GetMessageId() {
		f.logger.Debug("packet id differs from payload tag",
			zap.Uint8("messageId", packet.GetMessageId()),
			zap.Stringer("tag", msg.Tag()),
		)
	}
	return f.deliver(msg)
}

//cb for closed conn
func (f *FramedLink) OnClose(conn iface.IConn) {
	f.stop(define.ErrLinkClosed)
}

//dialKcp opens a kcp session, aes secured when a password is set
func dialKcp(ctx context.Context, address string, opts *Options) (*FramedLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var block kcp.BlockCrypt
	if opts.Password != "" {
		//init AES key
		key := pbkdf2.Key([]byte(opts.Password), []byte(opts.Salt), 1024, 32, sha1.New)
		aes, err := kcp.NewAESBlockCrypt(key)
		if err != nil {
			return nil, &DialError{Stage: "kcp crypt", Err: err}
		}
		block = aes
	}
	sess, err := kcp.DialWithOptions(address, block, 10, 3)
	if err != nil {
		return nil, &DialError{Stage: "kcp dial", Err: err}
	}
	setUdpMode(sess)
	opts.Logger.Info("kcp link open", zap.String("address", address))
	return NewFramedLink(sess, opts.Config, opts.Logger), nil
}

//set udp mode
func setUdpMode(session *kcp.UDPSession) bool {
	if session == nil {
		return false
	}
	session.SetNoDelay(1, 10, 2, 1)
	session.SetStreamMode(true)
	session.SetWindowSize(4096, 4096)
	session.SetReadBuffer(4 * 1024 * 1024)
	session.SetWriteBuffer(4 * 1024 * 1024)
	session.SetACKNoDelay(true)
	return true
}
