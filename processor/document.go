/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/schema"
)

// Document is the YAML form of a catalogue.
type Document struct {
	Entities []EntityDoc `yaml:"entities"`
}

type EntityDoc struct {
	Name        string     `yaml:"name"`
	Aliases     []string   `yaml:"aliases,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Fields      []FieldDoc `yaml:"fields"`
}

type FieldDoc struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Filterable bool   `yaml:"filterable,omitempty"`
	Sortable   bool   `yaml:"sortable,omitempty"`
}

// NewDocument renders reg in declaration order.
func NewDocument(reg *schema.Registry) Document {
	entities := reg.Entities()
	doc := Document{Entities: make([]EntityDoc, 0, len(entities))}
	for _, e := range entities {
		ed := EntityDoc{
			Name:        e.Name,
			Aliases:     e.Aliases,
			Description: e.Description,
			Fields:      make([]FieldDoc, 0, len(e.Fields)),
		}
		for _, f := range e.Fields {
			ed.Fields = append(ed.Fields, FieldDoc{
				Name:       f.Name,
				Type:       f.Type.String(),
				Filterable: f.Filterable,
				Sortable:   f.Sortable,
			})
		}
		doc.Entities = append(doc.Entities, ed)
	}
	return doc
}

// Registry validates the document and builds a registry from it.
func (d Document) Registry() (*schema.Registry, error) {
	entities := make([]schema.Entity, 0, len(d.Entities))
	for _, ed := range d.Entities {
		e := schema.Entity{
			Name:        ed.Name,
			Aliases:     ed.Aliases,
			Description: ed.Description,
			Fields:      make([]schema.Field, 0, len(ed.Fields)),
		}
		for _, fd := range ed.Fields {
			t, err := schema.ParseType(fd.Type)
			if err != nil {
				return nil, errors.NewSchemaError(ed.Name, fd.Name, err.Error())
			}
			e.Fields = append(e.Fields, schema.Field{
				Name:       fd.Name,
				Type:       t,
				Filterable: fd.Filterable,
				Sortable:   fd.Sortable,
			})
		}
		entities = append(entities, e)
	}
	return schema.NewRegistry(entities...)
}

// Export writes reg as a YAML catalogue document.
func Export(reg *schema.Registry, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(reg)); err != nil {
		return fmt.Errorf("failed to encode catalogue: %w", err)
	}
	return enc.Close()
}

// Load reads a YAML catalogue document. Unknown keys are rejected.
func Load(r io.Reader) (*schema.Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.NewSchemaError("", "", "empty catalogue document")
		}
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}
	return doc.Registry()
}
