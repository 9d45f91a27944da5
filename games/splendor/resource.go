// Package splendor hosts the resource economy card game: three tiers of
// development cards, a shared token pool and nobles awarded by production.
package splendor

import (
	"fmt"

	"github.com/andyzhou/gamehost/define"
	"github.com/andyzhou/gamehost/pb"
	"google.golang.org/protobuf/encoding/protowire"
)

//resource type, gem types come first and gold is the premium token
type ResourceType int32

const (
	Agate ResourceType = iota
	Emerald
	Diamond
	Ruby
	Sapphire
	Gold
)

const (
	GemTypes      = 5
	ResourceTypes = 6
)

var resourceNames = [ResourceTypes]string{
	"agate", "emerald", "diamond", "ruby", "sapphire", "gold",
}

func (t ResourceType) Valid() bool {
	return t >= Agate && t <= Gold
}

//IsGem reports whether t may appear in a price or as a card colour
func (t ResourceType) IsGem() bool {
	return t >= Agate && t < Gold
}

func (t ResourceType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("resource(%d)", int32(t))
	}
	return resourceNames[t]
}

/*
 * resource map, one counter per resource type in enum order.
 * counters never go negative, a failing call leaves the map untouched.
 */

type ResourceMap [ResourceTypes]int32

//NewResourceMap builds a map from type/count pairs
func NewResourceMap(pairs map[ResourceType]int32) ResourceMap {
	var m ResourceMap
	for t, n := range pairs {
		if t.Valid() {
			m[t] = n
		}
	}
	return m
}

func (m ResourceMap) Get(t ResourceType) int32 {
	if !t.Valid() {
		return 0
	}
	return m[t]
}

//Covers reports whether every counter of m is at least the one of o
func (m ResourceMap) Covers(o ResourceMap) bool {
	for i := range m {
		if m[i] < o[i] {
			return false
		}
	}
	return true
}

func (m ResourceMap) Total() int32 {
	var sum int32
	for _, n := range m {
		sum += n
	}
	return sum
}

//Types lists the types with a positive count
func (m ResourceMap) Types() []ResourceType {
	var out []ResourceType
	for i, n := range m {
		if n > 0 {
			out = append(out, ResourceType(i))
		}
	}
	return out
}

func (m *ResourceMap) Add(o ResourceMap) {
	for i := range m {
		m[i] += o[i]
	}
}

//Sub removes o from m, fails without change if m does not cover o
func (m *ResourceMap) Sub(o ResourceMap) error {
	if !m.Covers(o) {
		return define.InvariantViolation("resources %v do not cover %v", *m, o)
	}
	for i := range m {
		m[i] -= o[i]
	}
	return nil
}

func (m *ResourceMap) TakeOne(t ResourceType) error {
	if !t.Valid() {
		return define.IllegalOperation("unknown resource type %d", int32(t))
	}
	if m[t] <= 0 {
		return define.InvariantViolation("no %s left", t)
	}
	m[t]--
	return nil
}

func (m *ResourceMap) PutOne(t ResourceType) {
	if t.Valid() {
		m[t]++
	}
}

//EncodeWire writes one entry per resource type, zero counts included
func (m *ResourceMap) EncodeWire(b []byte) []byte {
	for i, n := range m {
		entry := pb.AppendInt32(nil, 1, int32(i))
		entry = pb.AppendInt32(entry, 2, n)
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b
}

func (m *ResourceMap) DecodeWire(b []byte) error {
	*m = ResourceMap{}
	return pb.Walk(b, func(f pb.Field) error {
		if f.Num != 1 {
			return nil
		}
		var t ResourceType
		var n int32
		err := pb.Walk(f.Bytes(), func(e pb.Field) error {
			switch e.Num {
			case 1:
				t = ResourceType(e.Int32())
			case 2:
				n = e.Int32()
			}
			return nil
		})
		if err != nil {
			return err
		}
		if t.Valid() {
			m[t] += n
		}
		return nil
	})
}
