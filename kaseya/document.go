/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/kaseyaschema/schema"
)

// Document is a document stored for an agent.
type Document struct {
	Name           string          `json:"Name"`
	Size           int64           `json:"Size"`
	LastUploadTime strfmt.DateTime `json:"LastUploadTime"`
	ParentPath     string          `json:"ParentPath"`
	IsFile         bool            `json:"IsFile"`
}

var documentSchema = schema.Entity{
	Name:        "Document",
	Aliases:     []string{"KDocument"},
	Description: "Agent document",
	Fields: []schema.Field{
		field("Name", schema.Text, both),
		field("Size", schema.Integer, both),
		field("LastUploadTime", schema.Timestamp, both),
		field("ParentPath", schema.Text, none),
		field("IsFile", schema.Boolean, both),
	},
}

// File is a file in the agent file store.
type File struct {
	Name           string          `json:"Name"`
	Size           int64           `json:"Size"`
	LastUploadTime strfmt.DateTime `json:"LastUploadTime"`
	ParentPath     string          `json:"ParentPath"`
	IsFile         bool            `json:"IsFile"`
}

var fileSchema = schema.Entity{
	Name:        "File",
	Aliases:     []string{"KFile"},
	Description: "Agent file",
	Fields: []schema.Field{
		field("Name", schema.Text, both),
		field("Size", schema.Integer, both),
		field("LastUploadTime", schema.Timestamp, both),
		field("ParentPath", schema.Text, none),
		field("IsFile", schema.Boolean, both),
	},
}
