package network

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/pb"
	"github.com/andyzhou/gamehost/protocol"
	"github.com/gorilla/websocket"
	"google.golang.org/grpc"
)

func receive(t *testing.T, link interface {
	Inbound() <-chan *pb.ProviderMsg
}) *pb.ProviderMsg {
	t.Helper()
	select {
	case msg, ok := <-link.Inbound():
		if !ok {
			t.Fatal("inbound closed")
		}
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for inbound message")
	}
	return nil
}

func waitClosed(t *testing.T, ch <-chan *pb.ProviderMsg) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for inbound to close")
		}
	}
}

func TestFramedLinkExchange(t *testing.T) {
	local, peer := net.Pipe()
	link := NewFramedLink(local, protocol.DefaultConfig(), nil)
	defer link.Close()

	out := &pb.ProviderMsg{SequenceId: 4, Msg: &pb.RegisterArgs{Id: "p1", GameName: "splendor"}}
	if err := link.Send(out); err != nil {
		t.Fatalf("send: %v", err)
	}
	packet, err := protocol.NewProtocol().ReadPacket(peer)
	if err != nil {
		t.Fatalf("read packet: %v", err)
	}
	if packet.GetMessageId() != uint8(pb.TagRegisterArgs) {
		t.Fatalf("expected message id %d, got %d", pb.TagRegisterArgs, packet.GetMessageId())
	}
	got := &pb.ProviderMsg{}
	if err = got.Unmarshal(packet.GetData()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if args, ok := got.Msg.(*pb.RegisterArgs); !ok || args.GameName != "splendor" || got.SequenceId != 4 {
		t.Fatalf("unexpected message %+v", got)
	}

	in, err := protocol.NewPacketWithMsg(&pb.ProviderMsg{Msg: &pb.RegisterRet{Err: pb.ErrorNumber_Ok}})
	if err != nil {
		t.Fatalf("packet: %v", err)
	}
	if _, err = peer.Write(in.Pack()); err != nil {
		t.Fatalf("peer write: %v", err)
	}
	if msg := receive(t, link); msg.Tag() != pb.TagRegisterRet {
		t.Fatalf("expected register ret, got %s", msg.Tag())
	}

	peer.Close()
	waitClosed(t, link.Inbound())
	if !errors.Is(link.Err(), define.ErrLinkClosed) {
		t.Fatalf("expected link closed, got %v", link.Err())
	}
	if err = link.Send(out); err == nil {
		t.Fatal("expected send on a closed link to fail")
	}
}

func TestFramedLinkCloseByOwner(t *testing.T) {
	local, peer := net.Pipe()
	defer peer.Close()
	link := NewFramedLink(local, protocol.DefaultConfig(), nil)

	if err := link.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	waitClosed(t, link.Inbound())
	if !errors.Is(link.Err(), define.ErrConnClosing) {
		t.Fatalf("expected conn closing, got %v", link.Err())
	}
}

func TestWsLinkExchange(t *testing.T) {
	received := make(chan *pb.ProviderMsg, 1)
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		msg := &pb.ProviderMsg{}
		if msg.Unmarshal(data) == nil {
			received <- msg
		}
		reply, _ := (&pb.ProviderMsg{Msg: &pb.RegisterRet{Err: pb.ErrorNumber_GameExists}}).Marshal()
		conn.WriteMessage(websocket.BinaryMessage, reply)
		conn.ReadMessage()
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	link, err := Dial(context.Background(), url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer link.Close()

	if err = link.Send(&pb.ProviderMsg{Msg: &pb.RegisterArgs{GameName: "uno"}}); err != nil {
		t.Fatalf("send: %v", err)
	}
	select {
	case msg := <-received:
		if args, ok := msg.Msg.(*pb.RegisterArgs); !ok || args.GameName != "uno" {
			t.Fatalf("unexpected message %+v", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server got nothing")
	}

	msg := receive(t, link)
	ret, ok := msg.Msg.(*pb.RegisterRet)
	if !ok || ret.Err != pb.ErrorNumber_GameExists {
		t.Fatalf("unexpected reply %+v", msg)
	}
}

func TestGrpcLinkExchange(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	methods := make(chan string, 1)
	server := grpc.NewServer(
		grpc.ForceServerCodec(protocol.Codec{}),
		grpc.UnknownServiceHandler(func(srv any, stream grpc.ServerStream) error {
			method, _ := grpc.MethodFromServerStream(stream)
			methods <- method
			msg := &pb.ProviderMsg{}
			if err := stream.RecvMsg(msg); err != nil {
				return err
			}
			if err := stream.SendMsg(&pb.ProviderMsg{SequenceId: msg.SequenceId, Msg: &pb.RegisterRet{}}); err != nil {
				return err
			}
			//hold the stream until the client leaves
			return stream.RecvMsg(&pb.ProviderMsg{})
		}),
	)
	go server.Serve(lis)
	defer server.Stop()

	link, err := Dial(context.Background(), "grpc://"+lis.Addr().String(), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer link.Close()

	if err = link.Send(&pb.ProviderMsg{SequenceId: 9, Msg: &pb.RegisterArgs{GameName: "splendor"}}); err != nil {
		t.Fatalf("send: %v", err)
	}
	msg := receive(t, link)
	if msg.Tag() != pb.TagRegisterRet || msg.SequenceId != 9 {
		t.Fatalf("unexpected reply %+v", msg)
	}
	if method := <-methods; method != define.CoreProviderMethod {
		t.Fatalf("expected method %s, got %s", define.CoreProviderMethod, method)
	}
}

func TestDialRejectsBadAddress(t *testing.T) {
	for _, address := range []string{"tcp://localhost:1", "localhost", "grpc://"} {
		_, err := Dial(context.Background(), address, nil)
		var dialErr *DialError
		if !errors.As(err, &dialErr) {
			t.Fatalf("%s: expected dial error, got %v", address, err)
		}
	}
}
