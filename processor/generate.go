/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"text/template"

	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/schema"
)

// GenerateOptions controls the generated Go file.
type GenerateOptions struct {
	// Package is the package clause of the generated file. Required.
	Package string
	// VarName names the generated slice. Defaults to "Entities".
	VarName string
	// Source is mentioned in the generated header, e.g. the input file name.
	Source string
}

var sourceTemplate = template.Must(template.New("catalogue").Funcs(template.FuncMap{
	"quote":  strconv.Quote,
	"goType": goType,
}).Parse(`// Code generated by kschema gen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}

import "github.com/suparena/kaseyaschema/schema"

var {{.VarName}} = []schema.Entity{
{{- range .Entities}}
	{
		Name: {{quote .Name}},
		{{- if .Aliases}}
		Aliases: []string{ {{- range $i, $a := .Aliases}}{{if $i}}, {{end}}{{quote $a}}{{end -}} },
		{{- end}}
		{{- if .Description}}
		Description: {{quote .Description}},
		{{- end}}
		Fields: []schema.Field{
		{{- range .Fields}}
			{Name: {{quote .Name}}, Type: {{goType .Type}}, Filterable: {{.Filterable}}, Sortable: {{.Sortable}}},
		{{- end}}
		},
	},
{{- end}}
}
`))

// Generate emits gofmt-formatted Go source that declares the entities of reg as a
// []schema.Entity literal. Passing the slice to schema.MustNewRegistry rebuilds reg.
func Generate(reg *schema.Registry, opts GenerateOptions) ([]byte, error) {
	if opts.VarName == "" {
		opts.VarName = "Entities"
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, errors.NewValidationError("package", fmt.Sprintf("%q is not a valid package name", opts.Package))
	}
	if !token.IsIdentifier(opts.VarName) {
		return nil, errors.NewValidationError("var", fmt.Sprintf("%q is not a valid identifier", opts.VarName))
	}

	var buf bytes.Buffer
	err := sourceTemplate.Execute(&buf, struct {
		GenerateOptions
		Entities []schema.Entity
	}{opts, reg.Entities()})
	if err != nil {
		return nil, fmt.Errorf("failed to render catalogue: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated source does not parse: %w", err)
	}
	return src, nil
}

func goType(t schema.Type) string {
	switch t.Kind {
	case schema.KindInteger:
		return "schema.Integer"
	case schema.KindNumber:
		return "schema.Number"
	case schema.KindText:
		return "schema.Text"
	case schema.KindBoolean:
		return "schema.Boolean"
	case schema.KindTimestamp:
		return "schema.Timestamp"
	case schema.KindEntity:
		return "schema.EntityOf(" + strconv.Quote(t.Entity) + ")"
	case schema.KindArray:
		return "schema.ArrayOf(" + goType(*t.Elem) + ")"
	default:
		return "schema.Opaque"
	}
}
