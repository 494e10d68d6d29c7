package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"github.com/DimitriosDimakos/libcerializer/pkg/message"
)

// typeInfo carries the Go-side mapping of one field type.
type typeInfo struct {
	GoType      string
	PutMethod   string
	ValueMember string
}

var fieldTypeInfo = map[message.FieldType]typeInfo{
	message.EnumerationType: {"uint32", "PutEnumFieldValue", "EnumValue"},
	message.Int8Type:        {"int8", "PutInt8FieldValue", "Int8Value"},
	message.UInt8Type:       {"uint8", "PutUint8FieldValue", "UInt8Value"},
	message.Int16Type:       {"int16", "PutInt16FieldValue", "Int16Value"},
	message.UInt16Type:      {"uint16", "PutUint16FieldValue", "UInt16Value"},
	message.Int32Type:       {"int32", "PutInt32FieldValue", "Int32Value"},
	message.UInt32Type:      {"uint32", "PutUint32FieldValue", "UInt32Value"},
	message.Int64Type:       {"int64", "PutInt64FieldValue", "Int64Value"},
	message.UInt64Type:      {"uint64", "PutUint64FieldValue", "UInt64Value"},
	message.Float32Type:     {"float32", "PutFloat32FieldValue", "Float32Value"},
	message.Float64Type:     {"float64", "PutFloat64FieldValue", "Float64Value"},
	message.StringType:      {"string", "PutStringFieldValue", "StringValue"},
}

type templateField struct {
	GoName      string
	WireName    string
	GoType      string
	PutMethod   string
	ValueMember string
}

type templateData struct {
	Package     string
	TypeName    string
	MessageName string
	Fields      []templateField
}

var wrapperTemplate = template.Must(template.New("wrapper").Parse(
	`// Code generated by cerializer gen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/DimitriosDimakos/libcerializer/pkg/message"
	"github.com/DimitriosDimakos/libcerializer/pkg/wire"
)

// {{.TypeName}} mirrors the "{{.MessageName}}" dynamic message.
type {{.TypeName}} struct {
{{- range .Fields}}
	{{.GoName}} {{.GoType}}
{{- end}}
}

// ToDynamicMessage converts the object into a dynamic message.
func (o *{{.TypeName}}) ToDynamicMessage() *message.DynamicMessage {
	dm := message.New("{{.MessageName}}")
{{- range .Fields}}
	dm.{{.PutMethod}}("{{.WireName}}", o.{{.GoName}})
{{- end}}
	return dm
}

// Serialize encodes the object into its wire representation. It returns
// nil when the object produces a degenerate message.
func (o *{{.TypeName}}) Serialize() []byte {
	return wire.Serialize(o.ToDynamicMessage())
}

// {{.TypeName}}FromDynamicMessage fills an object from a dynamic message.
func {{.TypeName}}FromDynamicMessage(dm *message.DynamicMessage) *{{.TypeName}} {
	if dm == nil {
		return nil
	}
	o := &{{.TypeName}}{}
{{- range .Fields}}
	if f := dm.GetField("{{.WireName}}"); f.Seq != -1 && f.Value != nil {
		o.{{.GoName}} = f.Value.{{.ValueMember}}
	}
{{- end}}
	return o
}

// Deserialize{{.TypeName}} parses a wire buffer into an object, or nil
// when the buffer fails verification.
func Deserialize{{.TypeName}}(data []byte) *{{.TypeName}} {
	return {{.TypeName}}FromDynamicMessage(wire.Deserialize(data))
}
`))

// GenerateMessage renders the wrapper source for one message schema into
// the given package. The output is gofmt-formatted.
func GenerateMessage(msg *MessageSchema, pkg string) ([]byte, error) {
	if pkg == "" {
		return nil, fmt.Errorf("package name is required")
	}
	data := templateData{
		Package:     pkg,
		TypeName:    exportedIdentifier(msg.Name),
		MessageName: msg.Name,
	}
	if data.TypeName == "" {
		return nil, fmt.Errorf("message name %q yields no usable identifier", msg.Name)
	}
	for i := range msg.Fields {
		field := &msg.Fields[i]
		info := fieldTypeInfo[field.FieldType()]
		goName := exportedIdentifier(field.Name)
		if goName == "" {
			return nil, fmt.Errorf("field name %q yields no usable identifier", field.Name)
		}
		data.Fields = append(data.Fields, templateField{
			GoName:      goName,
			WireName:    field.Name,
			GoType:      info.GoType,
			PutMethod:   info.PutMethod,
			ValueMember: info.ValueMember,
		})
	}

	var buf bytes.Buffer
	if err := wrapperTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render wrapper: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated source does not format: %w", err)
	}
	return src, nil
}

// FileName returns the output file name for a message schema.
func FileName(msg *MessageSchema) string {
	return loweredIdentifier(msg.Name) + "_set.go"
}

// exportedIdentifier converts an arbitrary schema name into an exported
// Go identifier: word boundaries on any non-alphanumeric rune, each word
// title-cased.
func exportedIdentifier(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if upperNext {
				r = unicode.ToUpper(r)
				upperNext = false
			}
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if b.Len() == 0 {
				continue // identifiers cannot start with a digit
			}
			b.WriteRune(r)
			upperNext = true
		default:
			upperNext = true
		}
	}
	return b.String()
}

// loweredIdentifier converts a schema name into a lower-case snake name
// for file naming.
func loweredIdentifier(name string) string {
	var b strings.Builder
	pendingUnderscore := false
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingUnderscore && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingUnderscore = false
			b.WriteRune(unicode.ToLower(r))
		} else {
			pendingUnderscore = true
		}
	}
	if b.Len() == 0 {
		return "message"
	}
	return b.String()
}
