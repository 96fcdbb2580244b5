package proto

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec implements grpc's encoding.Codec over plain JSON. It
// registers under the name "proto" — the same name grpc-go's built-in
// codec registration uses for the default protobuf wire format — so
// every client/server in this module that doesn't explicitly pick a
// different codec gets this one, without either side needing a real
// protoc-generated descriptor.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string { return "proto" }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
