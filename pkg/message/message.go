// Package message implements the dynamic message store: a named,
// schema-less record of typed fields assembled and read back at runtime.
//
// Fields are indexed by name for O(1) amortized lookup and keep a 1-based
// insertion sequence so listing reproduces original put order. A message
// holds whatever fields were put into it; it carries no schema and
// enforces no cross-field validation.
package message

import "github.com/DimitriosDimakos/libcerializer/pkg/hashmap"

// initial bucket count of the field index
const fieldIndexCapacity = 17

// DynamicMessage is a named collection of typed fields. The zero value is
// an uninitialized message on which every operation degrades to a no-op or
// a sentinel result; use New to obtain a usable one.
//
// A DynamicMessage is owned by one logical caller at a time; concurrent
// mutation must be serialized externally.
type DynamicMessage struct {
	Name       string
	FieldCount int
	fields     *hashmap.Map[string, *Field]
}

// New creates an initialized, empty dynamic message with the given name.
func New(name string) *DynamicMessage {
	m := &DynamicMessage{}
	m.Init(name)
	return m
}

// Init initializes the message with a fresh, empty field index.
func (m *DynamicMessage) Init(name string) {
	if m == nil || name == "" {
		return
	}
	m.Name = name
	m.fields = hashmap.New[string, *Field](fieldIndexCapacity, hashmap.EqualStrings, hashmap.HashString)
	m.FieldCount = 0
}

// initialized reports whether the message has a usable field index.
func (m *DynamicMessage) initialized() bool {
	return m != nil && m.fields != nil
}

// PutFieldAndValue adds or updates a field.
//
// The call is a no-op when the message is uninitialized, the name is
// empty, the value is nil, or the type is outside the valid range. A new
// name allocates a field with the next insertion sequence; an existing
// name only replaces the stored value, never its type or sequence.
func (m *DynamicMessage) PutFieldAndValue(name string, fieldType FieldType, value interface{}) {
	if !m.initialized() || name == "" || value == nil {
		return
	}
	if !fieldType.Valid() {
		return
	}
	field, ok := m.fields.Get(name)
	if !ok {
		field = &Field{
			Name: name,
			Type: fieldType,
			Seq:  m.FieldCount + 1,
		}
		m.FieldCount++
		m.fields.Put(field.Name, field)
	}
	field.set(value)
}

// PutField declares a field without a value. It exists for symmetry with
// the wire codec's two-step reconstruction and, like a nil-value put,
// leaves the message unchanged.
func (m *DynamicMessage) PutField(name string, fieldType FieldType) {
	m.PutFieldAndValue(name, fieldType, nil)
}

// Typed put conveniences, one per field type.

func (m *DynamicMessage) PutEnumFieldValue(name string, value uint32) {
	m.PutFieldAndValue(name, EnumerationType, value)
}

func (m *DynamicMessage) PutInt8FieldValue(name string, value int8) {
	m.PutFieldAndValue(name, Int8Type, value)
}

func (m *DynamicMessage) PutUint8FieldValue(name string, value uint8) {
	m.PutFieldAndValue(name, UInt8Type, value)
}

func (m *DynamicMessage) PutInt16FieldValue(name string, value int16) {
	m.PutFieldAndValue(name, Int16Type, value)
}

func (m *DynamicMessage) PutUint16FieldValue(name string, value uint16) {
	m.PutFieldAndValue(name, UInt16Type, value)
}

func (m *DynamicMessage) PutInt32FieldValue(name string, value int32) {
	m.PutFieldAndValue(name, Int32Type, value)
}

func (m *DynamicMessage) PutUint32FieldValue(name string, value uint32) {
	m.PutFieldAndValue(name, UInt32Type, value)
}

func (m *DynamicMessage) PutInt64FieldValue(name string, value int64) {
	m.PutFieldAndValue(name, Int64Type, value)
}

func (m *DynamicMessage) PutUint64FieldValue(name string, value uint64) {
	m.PutFieldAndValue(name, UInt64Type, value)
}

func (m *DynamicMessage) PutFloat32FieldValue(name string, value float32) {
	m.PutFieldAndValue(name, Float32Type, value)
}

func (m *DynamicMessage) PutFloat64FieldValue(name string, value float64) {
	m.PutFieldAndValue(name, Float64Type, value)
}

func (m *DynamicMessage) PutStringFieldValue(name string, value string) {
	m.PutFieldAndValue(name, StringType, value)
}

// GetField returns a descriptor of the named field. Absent fields, and
// any lookup on an uninitialized message, yield the sentinel descriptor
// {Type: NoType, Value: nil, Seq: -1}; callers must check Seq or Type
// rather than assume presence. Lookup is case-sensitive exact match.
func (m *DynamicMessage) GetField(name string) Field {
	if m.initialized() && name != "" {
		if field, ok := m.fields.Get(name); ok {
			return Field{
				Name:  name,
				Type:  field.Type,
				Value: field.Value,
				Seq:   field.Seq,
			}
		}
	}
	return Field{Type: NoType, Value: nil, Seq: -1}
}

// GetFields returns descriptors of all fields ordered by insertion
// sequence, independent of the index's internal bucket order. An empty or
// uninitialized message yields an empty, non-nil slice.
func (m *DynamicMessage) GetFields() []Field {
	if !m.initialized() || m.FieldCount == 0 {
		return []Field{}
	}
	fields := make([]Field, m.FieldCount)
	for _, name := range m.fields.Keys() {
		field := m.GetField(name)
		fields[field.Seq-1] = field
	}
	return fields
}

// Clear removes all fields and resets the count. The message stays
// initialized and can be repopulated.
func (m *DynamicMessage) Clear() {
	if !m.initialized() {
		return
	}
	for _, name := range m.fields.Keys() {
		m.fields.Remove(name)
	}
	m.FieldCount = 0
}
