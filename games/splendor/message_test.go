package splendor

import (
	"testing"

	"github.com/andyzhou/gamehost/pb"
)

func TestTakeKeepsZeroValuedTypes(t *testing.T) {
	in := &UserOperation{Take: &Take{Resources: []ResourceType{Agate, Agate, Gold}}}
	out := &UserOperation{}
	if err := pb.Unpack(pb.Pack(in, TypeUserOperation), out); err != nil {
		t.Fatalf("unpack: %v", err)
	}
	if out.Kind() != OpTake || len(out.Take.Resources) != 3 || out.Take.Resources[1] != Agate {
		t.Fatalf("unexpected take %+v", out.Take)
	}
}

func TestEmptyPurchaseKeepsKind(t *testing.T) {
	in := &UserOperation{Purchase: &Purchase{}}
	out := &UserOperation{}
	if err := out.DecodeWire(pb.Marshal(in)); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Kind() != OpPurchase || out.Purchase.DevelopmentLevel != 0 || out.Purchase.Index != 0 {
		t.Fatalf("unexpected purchase %+v", out)
	}
}

func TestResourceMapWireListsEveryType(t *testing.T) {
	m := NewResourceMap(map[ResourceType]int32{Ruby: 2})
	entries := 0
	err := pb.Walk(pb.Marshal(&m), func(f pb.Field) error {
		entries++
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if entries != ResourceTypes {
		t.Fatalf("expected %d entries, got %d", ResourceTypes, entries)
	}
	var back ResourceMap
	if err = back.DecodeWire(pb.Marshal(&m)); err != nil || back != m {
		t.Fatalf("expected %v, got %v (%v)", m, back, err)
	}
}
