// Package gen turns XML dynamic-message definitions into Go wrapper
// source. A definition file describes one or more messages and their
// typed fields:
//
//	<cerializer_dmd>
//	    <message name="heartbeat">
//	        <field name="message_id">INT32_TYPE</field>
//	        <field name="message_version">FLOAT32_TYPE</field>
//	    </message>
//	</cerializer_dmd>
//
// For every message the generator emits a struct plus conversion,
// serialize and deserialize helpers that drive the dynamic message store
// and wire codec through their public surface only.
package gen

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/DimitriosDimakos/libcerializer/pkg/message"
)

// Definition is a parsed dynamic-message definition file.
type Definition struct {
	XMLName  xml.Name        `xml:"cerializer_dmd"`
	Messages []MessageSchema `xml:"message"`
}

// MessageSchema describes one message in a definition file.
type MessageSchema struct {
	Name   string        `xml:"name,attr"`
	Fields []FieldSchema `xml:"field"`
}

// FieldSchema describes one field of a message schema.
type FieldSchema struct {
	Name string `xml:"name,attr"`
	Type string `xml:",chardata"`
}

// fieldTypeNames maps the textual type names allowed in definition files
// to their field types.
var fieldTypeNames = func() map[string]message.FieldType {
	names := make(map[string]message.FieldType, message.FieldTypeCount)
	for t := message.EnumerationType; t <= message.StringType; t++ {
		names[t.String()] = t
	}
	return names
}()

// ParseDefinition parses and validates a definition file.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := xml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	if len(def.Messages) == 0 {
		return nil, fmt.Errorf("definition contains no messages")
	}
	for i := range def.Messages {
		msg := &def.Messages[i]
		if msg.Name == "" {
			return nil, fmt.Errorf("message %d has no name", i+1)
		}
		if len(msg.Fields) == 0 {
			return nil, fmt.Errorf("message %q has no fields", msg.Name)
		}
		seen := map[string]bool{}
		for j := range msg.Fields {
			field := &msg.Fields[j]
			field.Type = strings.TrimSpace(field.Type)
			if field.Name == "" {
				return nil, fmt.Errorf("message %q: field %d has no name", msg.Name, j+1)
			}
			if seen[field.Name] {
				return nil, fmt.Errorf("message %q: duplicate field %q", msg.Name, field.Name)
			}
			seen[field.Name] = true
			if _, ok := fieldTypeNames[field.Type]; !ok {
				return nil, fmt.Errorf("message %q: field %q has unknown type %q",
					msg.Name, field.Name, field.Type)
			}
		}
	}
	return &def, nil
}

// FieldType returns the field type of a validated field schema.
func (f *FieldSchema) FieldType() message.FieldType {
	return fieldTypeNames[strings.TrimSpace(f.Type)]
}
