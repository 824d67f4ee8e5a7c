package cadence

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v4"
)

var (
	ErrEncodePayload = errors.New("encode workflow payload")
	ErrDecodePayload = errors.New("decode workflow payload")
)

// MsgPackDataConverter encodes workflow and activity arguments with msgpack.
// Field names follow the json tags so schema types keep the names the API
// exposes.
type MsgPackDataConverter struct{}

func NewMsgPackDataConverter() *MsgPackDataConverter {
	return &MsgPackDataConverter{}
}

// ToData encodes the arguments in order
func (c *MsgPackDataConverter) ToData(value ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseJSONTag(true)
	for i, obj := range value {
		if err := enc.Encode(obj); err != nil {
			return nil, fmt.Errorf("%w: argument %d (%v): %s", ErrEncodePayload, i, reflect.TypeOf(obj), err)
		}
	}
	return buf.Bytes(), nil
}

// FromData decodes the payload into valuePtr in order. A payload with fewer
// values than pointers is an error.
func (c *MsgPackDataConverter) FromData(input []byte, valuePtr ...interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(input)).UseJSONTag(true)
	for i, obj := range valuePtr {
		if err := dec.Decode(obj); err != nil {
			return fmt.Errorf("%w: argument %d (%v): %s", ErrDecodePayload, i, reflect.TypeOf(obj), err)
		}
	}
	return nil
}
