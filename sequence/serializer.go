package sequence

import (
	"encoding/json"
	"strconv"
)

// These flags define which values to include in a serialized output. The size
// of the sequence is always included.
const (
	SerializeItems    = 1 << iota // items in order
	SerializeCursor               // index of the current item, null if none
	SerializeCapacity             // capacity of the buffer

	SerializeAll = SerializeItems | SerializeCursor | SerializeCapacity
)

const (
	serializerBasePrefix     = `{"size":`
	serializerCapacityPrefix = `,"capacity":`
	serializerCursorPrefix   = `,"current":`
	serializerItemsPrefix    = `,"items":`
	serializerBaseSuffix     = '}'
)

// serialize returns a JSON encoding of s using flag to define which values to
// include in the output. Items are encoded with encoding/json.
func serialize[T any](s *Sequence[T], flag int) ([]byte, error) {
	buf := make([]byte, 0, 64)
	buf = append(buf, serializerBasePrefix...)
	buf = strconv.AppendInt(buf, int64(s.used), 10)
	if flag&SerializeCapacity != 0 {
		buf = append(buf, serializerCapacityPrefix...)
		buf = strconv.AppendInt(buf, int64(len(s.items)), 10)
	}
	if flag&SerializeCursor != 0 {
		buf = append(buf, serializerCursorPrefix...)
		if s.HasCurrent() {
			buf = strconv.AppendInt(buf, int64(s.cursor), 10)
		} else {
			buf = append(buf, "null"...)
		}
	}
	if flag&SerializeItems != 0 {
		items, err := json.Marshal(s.items[:s.used])
		if err != nil {
			return nil, err
		}
		buf = append(buf, serializerItemsPrefix...)
		buf = append(buf, items...)
	}
	buf = append(buf, serializerBaseSuffix)
	return buf, nil
}

// Serialize is a convenience method that returns a JSON encoding of the sequence
// using flag to define which values to include in the serialized output.
func (s *Sequence[T]) Serialize(flag int) ([]byte, error) {
	return serialize(s, flag)
}

// MarshalJSON implements the json.Marshaler interface. All values are included.
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	return serialize(s, SerializeAll)
}
