package wire

import (
	"github.com/DimitriosDimakos/libcerializer/pkg/codec"
	"github.com/DimitriosDimakos/libcerializer/pkg/logging"
	"github.com/DimitriosDimakos/libcerializer/pkg/message"
)

const (
	// Magic is the 32-bit sentinel at the start of every serialized
	// dynamic message.
	Magic = 1044266557

	// fixed per-message overhead: magic + total_length + name_length +
	// field_count
	messageFixedLen = 16

	// fixed per-field overhead: field_total_length + field_name_length +
	// field_type + value_length
	fieldFixedLen = 16

	// records at or below this length are degenerate and not produced
	minMessageLen = 32

	bytes4 = 4
	bytes8 = 8
)

// fieldTypeWireSize holds the fixed wire width of each field type's value.
// String is variable (counted separately); NoType carries no value.
var fieldTypeWireSize = [message.FieldTypeCount]int{
	message.EnumerationType: 4,
	message.Int8Type:        1,
	message.UInt8Type:       1,
	message.Int16Type:       2,
	message.UInt16Type:      2,
	message.Int32Type:       4,
	message.UInt32Type:      4,
	message.Int64Type:       8,
	message.UInt64Type:      8,
	message.Float32Type:     4,
	message.Float64Type:     8,
	message.StringType:      0,
	message.NoType:          0,
}

// valueWireSize returns the encoded byte length of a field's value.
func valueWireSize(field message.Field) int {
	if field.Type == message.StringType {
		if field.Value == nil {
			return 0
		}
		return len(field.Value.StringValue)
	}
	return fieldTypeWireSize[field.Type]
}

// serializedLen computes the total byte length of the serialized message,
// or zero for a message without fields.
func serializedLen(m *message.DynamicMessage) int {
	fields := m.GetFields()
	if len(fields) == 0 {
		return 0
	}
	result := messageFixedLen + len(m.Name)
	for _, field := range fields {
		result += fieldFixedLen + len(field.Name) + valueWireSize(field)
	}
	return result
}

// VerifyStart reports whether data begins with the magic constant.
func VerifyStart(data []byte) bool {
	if len(data) < bytes4 {
		return false
	}
	return codec.UnpackInt32(data) == Magic
}

// encodedLen decodes the declared total length from a record header.
func encodedLen(data []byte) int {
	if len(data) < bytes8 {
		return 0
	}
	buffer := make([]byte, bytes4)
	codec.Slice(buffer, data, bytes4, bytes4)
	return int(codec.UnpackInt32(buffer))
}

// VerifyFull reports whether data contains a complete serialized dynamic
// message: a valid start whose declared total length fits within the
// buffer. The buffer must at least hold the fixed message header.
// Trailing bytes beyond the declared length are tolerated.
func VerifyFull(data []byte) bool {
	if !VerifyStart(data) {
		return false
	}
	if len(data) < messageFixedLen {
		return false
	}
	return encodedLen(data) <= len(data)
}

// Serialize encodes a dynamic message into a freshly allocated byte
// buffer. A message whose serialized form would not exceed the minimum
// record length (in practice one without any fields) yields nil: there
// is nothing to transmit. The returned buffer shares no memory with the
// message.
func Serialize(m *message.DynamicMessage) []byte {
	messageLength := serializedLen(m)
	if messageLength <= minMessageLen {
		return nil
	}

	data := make([]byte, messageLength)
	offset := 0
	codec.PackInt32(data[offset:], Magic)
	offset += bytes4
	codec.PackInt32(data[offset:], uint32(messageLength))
	offset += bytes4
	codec.PackInt32(data[offset:], uint32(len(m.Name)))
	offset += bytes4
	copy(data[offset:], m.Name)
	offset += len(m.Name)
	codec.PackInt32(data[offset:], uint32(m.FieldCount))
	offset += bytes4

	for _, field := range m.GetFields() {
		valueSize := valueWireSize(field)
		codec.PackInt32(data[offset:], uint32(fieldFixedLen+len(field.Name)+valueSize))
		offset += bytes4
		codec.PackInt32(data[offset:], uint32(len(field.Name)))
		offset += bytes4
		copy(data[offset:], field.Name)
		offset += len(field.Name)
		codec.PackInt32(data[offset:], uint32(field.Type))
		offset += bytes4
		codec.PackInt32(data[offset:], uint32(valueSize))
		offset += bytes4

		value := field.Value
		if value == nil {
			value = &message.FieldValue{}
		}
		switch field.Type {
		case message.EnumerationType:
			codec.PackInt32(data[offset:], value.EnumValue)
		case message.Int8Type:
			data[offset] = byte(value.Int8Value)
		case message.UInt8Type:
			data[offset] = value.UInt8Value
		case message.Int16Type:
			codec.PackInt16(data[offset:], uint16(value.Int16Value))
		case message.UInt16Type:
			codec.PackInt16(data[offset:], value.UInt16Value)
		case message.Int32Type:
			codec.PackInt32(data[offset:], uint32(value.Int32Value))
		case message.UInt32Type:
			codec.PackInt32(data[offset:], value.UInt32Value)
		case message.Int64Type:
			codec.PackInt64(data[offset:], uint64(value.Int64Value))
		case message.UInt64Type:
			codec.PackInt64(data[offset:], value.UInt64Value)
		case message.Float32Type:
			codec.PackFloat32(data[offset:], value.Float32Value)
		case message.Float64Type:
			codec.PackFloat64(data[offset:], value.Float64Value)
		case message.StringType:
			copy(data[offset:], value.StringValue)
		case message.NoType:
		}
		offset += valueSize
	}

	return data
}

// Deserialize parses a serialized record into a new dynamic message,
// independent of the input buffer once the call returns. It yields nil
// when the buffer fails VerifyFull or the declared message name overruns
// the buffer. Fields carrying an out-of-range type code are dropped
// silently; a record declaring zero fields is logged as an anomaly and
// returned empty.
//
// Field sub-lengths inside the record are trusted as given and not
// re-checked against the outer bound.
func Deserialize(data []byte) *message.DynamicMessage {
	if !VerifyFull(data) {
		return nil
	}

	buffer4 := make([]byte, bytes4)
	// skip magic and total length
	start := bytes8
	codec.Slice(buffer4, data, start, bytes4)
	nameLen := int(codec.UnpackInt32(buffer4))
	if nameLen < 0 || messageFixedLen+nameLen > len(data) {
		return nil
	}
	start += bytes4
	messageName := make([]byte, nameLen)
	codec.Slice(messageName, data, start, nameLen)
	start += nameLen
	m := message.New(string(messageName))
	codec.Slice(buffer4, data, start, bytes4)
	fieldCount := int(codec.UnpackInt32(buffer4))
	start += bytes4

	if fieldCount <= 0 {
		logging.Errorf("wire.Deserialize: empty message %s", messageName)
		return m
	}

	for i := 0; i < fieldCount; i++ {
		// field total length: structural bookkeeping only, parsing
		// advances by the explicit name/value lengths below
		start += bytes4
		codec.Slice(buffer4, data, start, bytes4)
		fieldNameLen := int(codec.UnpackInt32(buffer4))
		start += bytes4
		fieldName := make([]byte, fieldNameLen)
		codec.Slice(fieldName, data, start, fieldNameLen)
		start += fieldNameLen
		codec.Slice(buffer4, data, start, bytes4)
		fieldType := message.FieldType(codec.UnpackInt32(buffer4))
		start += bytes4
		codec.Slice(buffer4, data, start, bytes4)
		valueLen := int(codec.UnpackInt32(buffer4))
		m.PutField(string(fieldName), fieldType)
		start += bytes4
		valueBuffer := make([]byte, valueLen)
		codec.Slice(valueBuffer, data, start, valueLen)

		name := string(fieldName)
		switch fieldType {
		case message.EnumerationType:
			m.PutEnumFieldValue(name, codec.UnpackUint32(valueBuffer))
		case message.Int8Type:
			m.PutInt8FieldValue(name, int8(valueBuffer[0]))
		case message.UInt8Type:
			m.PutUint8FieldValue(name, valueBuffer[0])
		case message.Int16Type:
			m.PutInt16FieldValue(name, codec.UnpackInt16(valueBuffer))
		case message.UInt16Type:
			m.PutUint16FieldValue(name, codec.UnpackUint16(valueBuffer))
		case message.Int32Type:
			m.PutInt32FieldValue(name, codec.UnpackInt32(valueBuffer))
		case message.UInt32Type:
			m.PutUint32FieldValue(name, codec.UnpackUint32(valueBuffer))
		case message.Int64Type:
			m.PutInt64FieldValue(name, codec.UnpackInt64(valueBuffer))
		case message.UInt64Type:
			m.PutUint64FieldValue(name, codec.UnpackUint64(valueBuffer))
		case message.Float32Type:
			m.PutFloat32FieldValue(name, codec.UnpackFloat32(valueBuffer))
		case message.Float64Type:
			m.PutFloat64FieldValue(name, codec.UnpackFloat64(valueBuffer))
		case message.StringType:
			m.PutStringFieldValue(name, string(valueBuffer))
		default:
			// out-of-range type code: drop the field, keep parsing
		}
		start += valueLen
	}

	return m
}
