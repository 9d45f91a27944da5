package protocol

import (
	"fmt"

	"github.com/andyzhou/gamehost/pb"
)

/*
 * grpc codec for provider messages, implement of encoding.Codec.
 * bytes are standard protobuf wire format, so the codec
 * registers under the default "proto" content subtype.
 */

//face info
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(*pb.ProviderMsg)
	if !ok {
		return nil, fmt.Errorf("codec: unsupported type %T", v)
	}
	return msg.Marshal()
}

func (Codec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(*pb.ProviderMsg)
	if !ok {
		return fmt.Errorf("codec: unsupported type %T", v)
	}
	return msg.Unmarshal(data)
}

func (Codec) Name() string {
	return "proto"
}
