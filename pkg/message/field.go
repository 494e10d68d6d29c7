package message

// FieldType identifies the kind of value a dynamic message field carries.
// The ordinal values are part of the wire format and must not be reordered.
type FieldType int32

const (
	EnumerationType FieldType = iota
	Int8Type
	UInt8Type
	Int16Type
	UInt16Type
	Int32Type
	UInt32Type
	Int64Type
	UInt64Type
	Float32Type
	Float64Type
	StringType
	NoType
)

// FieldTypeCount is the number of defined field types.
const FieldTypeCount = 13

// Valid reports whether t is a usable field type. NoType is the
// field-not-found sentinel and is not valid for puts.
func (t FieldType) Valid() bool {
	return t >= EnumerationType && t <= StringType
}

func (t FieldType) String() string {
	switch t {
	case EnumerationType:
		return "ENUMERATION_TYPE"
	case Int8Type:
		return "INT8_TYPE"
	case UInt8Type:
		return "UNSIGNED_INT8_TYPE"
	case Int16Type:
		return "INT16_TYPE"
	case UInt16Type:
		return "UNSIGNED_INT16_TYPE"
	case Int32Type:
		return "INT32_TYPE"
	case UInt32Type:
		return "UNSIGNED_INT32_TYPE"
	case Int64Type:
		return "INT64_TYPE"
	case UInt64Type:
		return "UNSIGNED_INT64_TYPE"
	case Float32Type:
		return "FLOAT32_TYPE"
	case Float64Type:
		return "FLOAT64_TYPE"
	case StringType:
		return "STRING_TYPE"
	case NoType:
		return "NO_TYPE"
	}
	return "UNKNOWN_TYPE"
}

// FieldValue stores the value of a dynamic message field. Exactly one
// member is meaningful; which one is determined solely by the owning
// field's type tag, never by the value itself.
type FieldValue struct {
	EnumValue    uint32
	Int8Value    int8
	UInt8Value   uint8
	Int16Value   int16
	UInt16Value  uint16
	Int32Value   int32
	UInt32Value  uint32
	Int64Value   int64
	UInt64Value  uint64
	Float32Value float32
	Float64Value float64
	StringValue  string
}

// Field is one named, typed entry of a dynamic message. Seq is the 1-based
// insertion order, assigned when the field is first put and never changed
// afterwards; only Value is replaced on later puts.
type Field struct {
	Name  string
	Type  FieldType
	Value *FieldValue
	Seq   int
}

// set stores v into the member selected by the field's type tag. Values of
// the wrong dynamic type are ignored so a mismatched put degrades to a
// no-op instead of corrupting the stored variant.
func (f *Field) set(v interface{}) {
	value := f.Value
	if value == nil {
		value = &FieldValue{}
	}
	switch f.Type {
	case EnumerationType:
		if x, ok := v.(uint32); ok {
			value.EnumValue = x
		}
	case Int8Type:
		if x, ok := v.(int8); ok {
			value.Int8Value = x
		}
	case UInt8Type:
		if x, ok := v.(uint8); ok {
			value.UInt8Value = x
		}
	case Int16Type:
		if x, ok := v.(int16); ok {
			value.Int16Value = x
		}
	case UInt16Type:
		if x, ok := v.(uint16); ok {
			value.UInt16Value = x
		}
	case Int32Type:
		if x, ok := v.(int32); ok {
			value.Int32Value = x
		}
	case UInt32Type:
		if x, ok := v.(uint32); ok {
			value.UInt32Value = x
		}
	case Int64Type:
		if x, ok := v.(int64); ok {
			value.Int64Value = x
		}
	case UInt64Type:
		if x, ok := v.(uint64); ok {
			value.UInt64Value = x
		}
	case Float32Type:
		if x, ok := v.(float32); ok {
			value.Float32Value = x
		}
	case Float64Type:
		if x, ok := v.(float64); ok {
			value.Float64Value = x
		}
	case StringType:
		if x, ok := v.(string); ok {
			value.StringValue = x
		}
	case NoType:
	}
	f.Value = value
}
