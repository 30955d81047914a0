package api

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// jsonCodec marshals plain Go structs as JSON. It takes the place of the
// protobuf JSON codec, so the service needs no generated message types.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}

// WithJSON makes a handler or client exchange messages as JSON.
// NewBillServiceHandler and NewBillServiceClient apply it already.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
