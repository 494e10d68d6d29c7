package wire

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DimitriosDimakos/libcerializer/pkg/codec"
	"github.com/DimitriosDimakos/libcerializer/pkg/logging"
	"github.com/DimitriosDimakos/libcerializer/pkg/message"
)

func heartbeatMessage() *message.DynamicMessage {
	m := message.New("Heartbeat")
	m.PutInt32FieldValue("message_source", 1)
	m.PutInt32FieldValue("message_id", 6)
	m.PutStringFieldValue("message_name", "Heartbeat")
	m.PutFloat32FieldValue("message_version", 1.25)
	return m
}

func TestSerialize_Header(t *testing.T) {
	data := Serialize(heartbeatMessage())
	require.NotNil(t, data)

	assert.Equal(t, int32(Magic), codec.UnpackInt32(data[0:4]))
	assert.Equal(t, int32(len(data)), codec.UnpackInt32(data[4:8]))
	assert.Equal(t, int32(len("Heartbeat")), codec.UnpackInt32(data[8:12]))
	assert.Equal(t, "Heartbeat", string(data[12:21]))
	assert.Equal(t, int32(4), codec.UnpackInt32(data[21:25]))
}

func TestRoundTrip_Heartbeat(t *testing.T) {
	data := Serialize(heartbeatMessage())
	require.NotNil(t, data)

	m := Deserialize(data)
	require.NotNil(t, m)

	assert.Equal(t, "Heartbeat", m.Name)
	assert.Equal(t, 4, m.FieldCount)

	f := m.GetField("message_source")
	assert.Equal(t, message.Int32Type, f.Type)
	assert.Equal(t, int32(1), f.Value.Int32Value)

	f = m.GetField("message_id")
	assert.Equal(t, int32(6), f.Value.Int32Value)

	f = m.GetField("message_name")
	assert.Equal(t, message.StringType, f.Type)
	assert.Equal(t, "Heartbeat", f.Value.StringValue)

	// 1.25 is exactly representable, so the round trip must be exact
	f = m.GetField("message_version")
	assert.Equal(t, message.Float32Type, f.Type)
	assert.Equal(t, float32(1.25), f.Value.Float32Value)
}

func TestRoundTrip_AllFieldTypes(t *testing.T) {
	out := message.New("every_type")
	out.PutEnumFieldValue("enum", 3)
	out.PutInt8FieldValue("i8", -100)
	out.PutUint8FieldValue("u8", 250)
	out.PutInt16FieldValue("i16", -30000)
	out.PutUint16FieldValue("u16", 60000)
	out.PutInt32FieldValue("i32", -2000000000)
	out.PutUint32FieldValue("u32", 4000000000)
	out.PutInt64FieldValue("i64", -9000000000000000000)
	out.PutUint64FieldValue("u64", 18000000000000000000)
	out.PutFloat32FieldValue("f32", -2.375)
	out.PutFloat64FieldValue("f64", 123456.789062)
	out.PutStringFieldValue("str", "dynamic message")

	data := Serialize(out)
	require.NotNil(t, data)

	in := Deserialize(data)
	require.NotNil(t, in)
	require.Equal(t, out.FieldCount, in.FieldCount)
	assert.Equal(t, out.Name, in.Name)

	assert.Equal(t, uint32(3), in.GetField("enum").Value.EnumValue)
	assert.Equal(t, int8(-100), in.GetField("i8").Value.Int8Value)
	assert.Equal(t, uint8(250), in.GetField("u8").Value.UInt8Value)
	assert.Equal(t, int16(-30000), in.GetField("i16").Value.Int16Value)
	assert.Equal(t, uint16(60000), in.GetField("u16").Value.UInt16Value)
	assert.Equal(t, int32(-2000000000), in.GetField("i32").Value.Int32Value)
	assert.Equal(t, uint32(4000000000), in.GetField("u32").Value.UInt32Value)
	assert.Equal(t, int64(-9000000000000000000), in.GetField("i64").Value.Int64Value)
	assert.Equal(t, uint64(18000000000000000000), in.GetField("u64").Value.UInt64Value)
	assert.Equal(t, float32(-2.375), in.GetField("f32").Value.Float32Value)
	assert.Equal(t, float64(123456.789062), in.GetField("f64").Value.Float64Value)
	assert.Equal(t, "dynamic message", in.GetField("str").Value.StringValue)

	// field order survives the round trip
	outFields := out.GetFields()
	inFields := in.GetFields()
	require.Equal(t, len(outFields), len(inFields))
	for i := range outFields {
		assert.Equal(t, outFields[i].Name, inFields[i].Name)
		assert.Equal(t, outFields[i].Type, inFields[i].Type)
		assert.Equal(t, i+1, inFields[i].Seq)
	}
}

func TestRoundTrip_ManyFieldsPreserveOrder(t *testing.T) {
	out := message.New("wide")
	for i := 0; i < 64; i++ {
		out.PutUint32FieldValue(fmt.Sprintf("field_%02d", i), uint32(i))
	}

	in := Deserialize(Serialize(out))
	require.NotNil(t, in)
	require.Equal(t, 64, in.FieldCount)

	for i, f := range in.GetFields() {
		assert.Equal(t, fmt.Sprintf("field_%02d", i), f.Name)
		assert.Equal(t, uint32(i), f.Value.UInt32Value)
	}
}

func TestSerialize_EmptyMessageYieldsNothing(t *testing.T) {
	m := message.New("empty")
	assert.Nil(t, Serialize(m))
}

func TestSerialize_UninitializedMessageYieldsNothing(t *testing.T) {
	var m message.DynamicMessage
	assert.Nil(t, Serialize(&m))
}

func TestVerify(t *testing.T) {
	valid := Serialize(heartbeatMessage())
	require.NotNil(t, valid)

	t.Run("serialized buffer verifies", func(t *testing.T) {
		assert.True(t, VerifyStart(valid))
		assert.True(t, VerifyFull(valid))
	})

	t.Run("three byte buffer", func(t *testing.T) {
		assert.False(t, VerifyStart([]byte{1, 2, 3}))
		assert.False(t, VerifyFull([]byte{1, 2, 3}))
	})

	t.Run("magic alone is not a full message", func(t *testing.T) {
		buf := make([]byte, 4)
		codec.PackInt32(buf, Magic)
		assert.True(t, VerifyStart(buf))
		assert.False(t, VerifyFull(buf))
	})

	t.Run("buffer shorter than message header", func(t *testing.T) {
		buf := make([]byte, 12)
		codec.PackInt32(buf, Magic)
		codec.PackInt32(buf[4:], 12)
		assert.False(t, VerifyFull(buf))
	})

	t.Run("wrong magic", func(t *testing.T) {
		buf := make([]byte, 4)
		codec.PackInt32(buf, 0xdeadbeef)
		assert.False(t, VerifyStart(buf))
		assert.False(t, VerifyFull(buf))
	})

	t.Run("declared length exceeds buffer", func(t *testing.T) {
		truncated := make([]byte, len(valid)-1)
		copy(truncated, valid)
		assert.True(t, VerifyStart(truncated))
		assert.False(t, VerifyFull(truncated))
	})

	t.Run("trailing garbage tolerated", func(t *testing.T) {
		padded := append(append([]byte{}, valid...), 0xca, 0xfe, 0xba, 0xbe)
		assert.True(t, VerifyFull(padded))

		m := Deserialize(padded)
		require.NotNil(t, m)
		assert.Equal(t, 4, m.FieldCount)
	})
}

func TestDeserialize_InvalidBufferYieldsNil(t *testing.T) {
	assert.Nil(t, Deserialize(nil))
	assert.Nil(t, Deserialize([]byte{1, 2, 3}))

	truncated := Serialize(heartbeatMessage())[:10]
	assert.Nil(t, Deserialize(truncated))
}

func TestDeserialize_ShortMagicPrefixYieldsNil(t *testing.T) {
	// a stray magic constant followed by too few bytes for the message
	// header must be rejected, not sliced past the end of the buffer
	for _, size := range []int{4, 8, 12, 15} {
		buf := make([]byte, size)
		codec.PackInt32(buf, Magic)
		assert.Nil(t, Deserialize(buf), "size %d", size)
	}
}

func TestDeserialize_NameLengthOverrunYieldsNil(t *testing.T) {
	// header-only buffer declaring a name longer than the buffer itself
	buf := make([]byte, messageFixedLen)
	codec.PackInt32(buf, Magic)
	codec.PackInt32(buf[4:], uint32(len(buf)))
	codec.PackInt32(buf[8:], 100)

	require.True(t, VerifyFull(buf))
	assert.Nil(t, Deserialize(buf))
}

func TestDeserialize_ZeroFieldRecordLoggedAndEmpty(t *testing.T) {
	// serialize refuses field-less messages, so a zero count only ever
	// arrives in a hand-assembled record
	name := "hollow"
	data := make([]byte, messageFixedLen+len(name))
	codec.PackInt32(data, Magic)
	codec.PackInt32(data[4:], uint32(len(data)))
	codec.PackInt32(data[8:], uint32(len(name)))
	copy(data[12:], name)
	codec.PackInt32(data[12+len(name):], 0)

	var logged bytes.Buffer
	logging.SetOutput(&logged)
	defer logging.SetOutput(os.Stderr)

	m := Deserialize(data)
	require.NotNil(t, m)
	assert.Equal(t, "hollow", m.Name)
	assert.Equal(t, 0, m.FieldCount)
	assert.Empty(t, m.GetFields())
	assert.Contains(t, logged.String(), "hollow")
}

func TestDeserialize_UnknownFieldTypeDropped(t *testing.T) {
	out := message.New("mixed")
	out.PutInt32FieldValue("keep_a", 1)
	out.PutInt32FieldValue("drop_me", 2)
	out.PutInt32FieldValue("keep_b", 3)

	data := Serialize(out)
	require.NotNil(t, data)

	// corrupt the type of the middle field: its sub-record starts after the
	// message header and the first field
	fieldStart := messageFixedLen + len("mixed")
	fieldStart += fieldFixedLen + len("keep_a") + 4
	typeOffset := fieldStart + 4 + 4 + len("drop_me")
	codec.PackInt32(data[typeOffset:], 99)

	in := Deserialize(data)
	require.NotNil(t, in)
	assert.Equal(t, 2, in.FieldCount)
	assert.Equal(t, -1, in.GetField("drop_me").Seq)
	assert.Equal(t, int32(1), in.GetField("keep_a").Value.Int32Value)
	assert.Equal(t, int32(3), in.GetField("keep_b").Value.Int32Value)
}

func TestDeserialize_IndependentOfInputBuffer(t *testing.T) {
	data := Serialize(heartbeatMessage())
	m := Deserialize(data)
	require.NotNil(t, m)

	// clobbering the input must not disturb the parsed message
	for i := range data {
		data[i] = 0
	}
	assert.Equal(t, "Heartbeat", m.GetField("message_name").Value.StringValue)
}

func TestFieldTotalLength_WrittenButNotAuthoritative(t *testing.T) {
	out := message.New("lenient")
	out.PutInt32FieldValue("first", 7)
	out.PutStringFieldValue("second", "value")

	data := Serialize(out)
	require.NotNil(t, data)

	// overwrite the first field's total length with nonsense; parsing must
	// still advance by the explicit name/value lengths
	fieldStart := messageFixedLen + len("lenient")
	codec.PackInt32(data[fieldStart:], 0x7fffffff)

	in := Deserialize(data)
	require.NotNil(t, in)
	assert.Equal(t, int32(7), in.GetField("first").Value.Int32Value)
	assert.Equal(t, "value", in.GetField("second").Value.StringValue)
}
