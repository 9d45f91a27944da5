// Package pb holds the wire messages exchanged with the game core service and
// the protowire helpers game engines use to encode their own payloads.
// Field numbers follow the schemas under proto/.
package pb

import (
	"errors"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/anypb"
)

//type url prefix of packed payloads
const TypeUrlPrefix = "type.googleapis.com/"

var errNilAny = errors.New("custom payload is nil")

//Message is implemented by every game payload packed into an Any
type Message interface {
	EncodeWire(b []byte) []byte
	DecodeWire(b []byte) error
}

//Marshal encodes a message into a fresh buffer
func Marshal(m Message) []byte {
	return m.EncodeWire(nil)
}

//Pack wraps a game payload into an Any
func Pack(m Message, typeName string) *anypb.Any {
	return &anypb.Any{
		TypeUrl: TypeUrlPrefix + typeName,
		Value:   Marshal(m),
	}
}

//Unpack decodes an Any into m.
//type url is informational only, the core does not rewrite it.
func Unpack(a *anypb.Any, m Message) error {
	if a == nil {
		return errNilAny
	}
	return m.DecodeWire(a.GetValue())
}

//TypeName returns the message name of a packed payload
func TypeName(a *anypb.Any) string {
	url := a.GetTypeUrl()
	if i := strings.LastIndexByte(url, '/'); i >= 0 {
		return url[i+1:]
	}
	return url
}

///////////////
//encode helpers
///////////////

func AppendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func AppendUint32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func AppendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

//AppendMessage writes a sub message, nil is skipped and empty is kept
func AppendMessage(b []byte, num protowire.Number, m Message) []byte {
	if m == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.EncodeWire(nil))
}

func AppendPackedInt32(b []byte, num protowire.Number, vs []int32) []byte {
	if len(vs) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(int64(v)))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func AppendPackedUint32(b []byte, num protowire.Number, vs []uint32) []byte {
	if len(vs) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

///////////////
//decode helpers
///////////////

//Field is one decoded tag/value pair
type Field struct {
	Num  protowire.Number
	Type protowire.Type
	raw  []byte
}

//Walk visits every field of an encoded message in order
func Walk(b []byte, fn func(f Field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return protowire.ParseError(m)
		}
		if err := fn(Field{Num: num, Type: typ, raw: b[:m]}); err != nil {
			return err
		}
		b = b[m:]
	}
	return nil
}

func (f Field) varint() uint64 {
	if f.Type != protowire.VarintType {
		return 0
	}
	v, _ := protowire.ConsumeVarint(f.raw)
	return v
}

func (f Field) Int32() int32 {
	return int32(int64(f.varint()))
}

func (f Field) Uint32() uint32 {
	return uint32(f.varint())
}

func (f Field) Bytes() []byte {
	if f.Type != protowire.BytesType {
		return nil
	}
	v, _ := protowire.ConsumeBytes(f.raw)
	return v
}

func (f Field) String() string {
	return string(f.Bytes())
}

//Decode decodes a sub message field into m
func (f Field) Decode(m Message) error {
	if f.Type != protowire.BytesType {
		return errors.New("field is not a message")
	}
	return m.DecodeWire(f.Bytes())
}

//Int32s accepts both packed and unpacked encodings of a repeated int32
func (f Field) Int32s() ([]int32, error) {
	vs, err := f.varints()
	if err != nil {
		return nil, err
	}
	out := make([]int32, 0, len(vs))
	for _, v := range vs {
		out = append(out, int32(int64(v)))
	}
	return out, nil
}

//Uint32s accepts both packed and unpacked encodings of a repeated uint32
func (f Field) Uint32s() ([]uint32, error) {
	vs, err := f.varints()
	if err != nil {
		return nil, err
	}
	out := make([]uint32, 0, len(vs))
	for _, v := range vs {
		out = append(out, uint32(v))
	}
	return out, nil
}

func (f Field) varints() ([]uint64, error) {
	switch f.Type {
	case protowire.VarintType:
		return []uint64{f.varint()}, nil
	case protowire.BytesType:
		packed := f.Bytes()
		var out []uint64
		for len(packed) > 0 {
			v, n := protowire.ConsumeVarint(packed)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			out = append(out, v)
			packed = packed[n:]
		}
		return out, nil
	}
	return nil, errors.New("field is not a repeated varint")
}
