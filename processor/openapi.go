/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/schema"
)

// Vendor extensions read from OpenAPI property and schema objects.
const (
	ExtFilterable = "x-filterable"
	ExtSortable   = "x-sortable"
	ExtAliases    = "x-aliases"
)

// maxRefDepth bounds chains of $ref between non-object schemas.
const maxRefDepth = 16

type propertySchema struct {
	Type       string            `yaml:"type"`
	Format     string            `yaml:"format"`
	Ref        string            `yaml:"$ref"`
	Items      *propertySchema   `yaml:"items"`
	AllOf      []*propertySchema `yaml:"allOf"`
	Filterable bool              `yaml:"x-filterable"`
	Sortable   bool              `yaml:"x-sortable"`
}

type definition struct {
	name        string
	description string
	aliases     []string
	object      bool
	node        *yaml.Node
	properties  *yaml.Node
}

// LoadOpenAPI builds a registry from the object schemas of a Swagger 2 (definitions)
// or OpenAPI 3 (components.schemas) document, in YAML or JSON. Properties keep their
// document order. A property is filterable or sortable when it carries the
// x-filterable or x-sortable extension.
func LoadOpenAPI(r io.Reader) (*schema.Registry, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return nil, errors.NewSchemaError("", "", "empty OpenAPI document")
		}
		return nil, fmt.Errorf("failed to decode OpenAPI document: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.NewSchemaError("", "", "OpenAPI document is not a mapping")
	}

	schemas := lookup(root.Content[0], "definitions")
	if schemas == nil {
		schemas = lookup(lookup(root.Content[0], "components"), "schemas")
	}
	if schemas == nil || schemas.Kind != yaml.MappingNode {
		return nil, errors.NewSchemaError("", "", "document has neither definitions nor components.schemas")
	}

	defs := make(map[string]*definition)
	var order []*definition
	for i := 0; i+1 < len(schemas.Content); i += 2 {
		d, err := readDefinition(schemas.Content[i].Value, schemas.Content[i+1])
		if err != nil {
			return nil, err
		}
		defs[d.name] = d
		order = append(order, d)
	}

	var entities []schema.Entity
	for _, d := range order {
		if !d.object {
			continue
		}
		e := schema.Entity{Name: d.name, Aliases: d.aliases, Description: d.description, Fields: []schema.Field{}}
		if d.properties != nil {
			for i := 0; i+1 < len(d.properties.Content); i += 2 {
				name := d.properties.Content[i].Value
				var p propertySchema
				if err := d.properties.Content[i+1].Decode(&p); err != nil {
					return nil, errors.NewSchemaError(d.name, name, err.Error())
				}
				t, err := resolve(defs, &p, 0)
				if err != nil {
					return nil, errors.NewSchemaError(d.name, name, err.Error())
				}
				e.Fields = append(e.Fields, schema.Field{Name: name, Type: t, Filterable: p.Filterable, Sortable: p.Sortable})
			}
		}
		entities = append(entities, e)
	}
	return schema.NewRegistry(entities...)
}

func readDefinition(name string, node *yaml.Node) (*definition, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.NewSchemaError(name, "", "schema is not a mapping")
	}
	d := &definition{name: name, node: node}

	var head struct {
		Type        string   `yaml:"type"`
		Description string   `yaml:"description"`
		Aliases     []string `yaml:"x-aliases"`
	}
	if err := node.Decode(&head); err != nil {
		return nil, errors.NewSchemaError(name, "", err.Error())
	}
	d.description = strings.TrimSpace(head.Description)
	d.aliases = head.Aliases
	d.properties = lookup(node, "properties")
	d.object = head.Type == "object" || d.properties != nil
	return d, nil
}

// resolve maps a property schema to a field type. References to object schemas become
// entity types; references to scalar schemas are followed.
func resolve(defs map[string]*definition, p *propertySchema, depth int) (schema.Type, error) {
	if depth > maxRefDepth {
		return schema.Type{}, fmt.Errorf("$ref chain longer than %d", maxRefDepth)
	}
	if p.Ref == "" && len(p.AllOf) == 1 {
		p = p.AllOf[0]
	}

	if p.Ref != "" {
		name := p.Ref[strings.LastIndex(p.Ref, "/")+1:]
		d, ok := defs[name]
		if !ok {
			return schema.Type{}, fmt.Errorf("unresolved $ref %q", p.Ref)
		}
		if d.object {
			return schema.EntityOf(name), nil
		}
		var target propertySchema
		if err := d.node.Decode(&target); err != nil {
			return schema.Type{}, err
		}
		return resolve(defs, &target, depth+1)
	}

	switch p.Type {
	case "integer":
		return schema.Integer, nil
	case "number":
		return schema.Number, nil
	case "boolean":
		return schema.Boolean, nil
	case "string":
		if p.Format == "date-time" {
			return schema.Timestamp, nil
		}
		return schema.Text, nil
	case "array":
		if p.Items == nil {
			return schema.ArrayOf(schema.Opaque), nil
		}
		elem, err := resolve(defs, p.Items, depth)
		if err != nil {
			return schema.Type{}, fmt.Errorf("array items: %w", err)
		}
		return schema.ArrayOf(elem), nil
	default:
		return schema.Opaque, nil
	}
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
