package conf

import (
	"strings"
	"testing"
	"time"
)

func TestLoadProviderConfDefaults(t *testing.T) {
	c, err := LoadProviderConf("splendor")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.CoreAddr != "grpc://localhost:50051" {
		t.Fatalf("unexpected core addr %q", c.CoreAddr)
	}
	if !strings.HasPrefix(c.ProviderId, "id-splendor-") {
		t.Fatalf("unexpected provider id %q", c.ProviderId)
	}
	if c.RegisterRetries != 3 || c.RegisterInterval != 2*time.Second || c.DialTimeout != 5*time.Second {
		t.Fatalf("unexpected retry settings %+v", c)
	}
	if c.LinkConfig().GetPacketReceiveChanLimit() != 1024 {
		t.Fatalf("unexpected receive limit %d", c.LinkConfig().GetPacketReceiveChanLimit())
	}
	if _, err = c.NewLogger(); err != nil {
		t.Fatalf("logger: %v", err)
	}
}

func TestLoadProviderConfOverrides(t *testing.T) {
	t.Setenv("GAMEHOST_CORE_ADDR", "kcp://10.0.0.1:6100")
	t.Setenv("GAMEHOST_PROVIDER_ID", "fixed")
	t.Setenv("GAMEHOST_SEED", "42")
	t.Setenv("GAMEHOST_REGISTER_INTERVAL", "150ms")
	t.Setenv("GAMEHOST_RECV_CHAN_SIZE", "16")

	c, err := LoadProviderConf("uno")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.CoreAddr != "kcp://10.0.0.1:6100" || c.ProviderId != "fixed" || c.Seed != 42 {
		t.Fatalf("unexpected conf %+v", c)
	}
	if c.RegisterInterval != 150*time.Millisecond || c.RecvChanSize != 16 {
		t.Fatalf("unexpected conf %+v", c)
	}
}

func TestLoadProviderConfBadValue(t *testing.T) {
	t.Setenv("GAMEHOST_SEED", "not-a-number")
	_, err := LoadProviderConf("uno")
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestBadLogLevel(t *testing.T) {
	c := &ProviderConf{LogLevel: "loud"}
	if _, err := c.NewLogger(); err == nil {
		t.Fatal("expected log level error")
	}
}

func TestRoomConf(t *testing.T) {
	c := &RoomConf{RoomId: 3, Players: []uint32{1, 2}}
	if err := c.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
	args := c.StartArgs()
	if args.RoomId != 3 || len(args.UserId) != 2 {
		t.Fatalf("unexpected args %+v", args)
	}
	if err := (&RoomConf{RoomId: 3}).Check(); err == nil {
		t.Fatal("expected an empty roster to fail")
	}
}
