/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/suparena/kaseyaschema/errors"
)

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// Macros returns the field names referenced by template, in order of appearance.
func Macros(template string) []string {
	matches := macroPattern.FindAllStringSubmatch(template, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// ExpandKeys renders every template of indexMap against entity. A macro such as
// {AgentId} is replaced with the value of the json field of that name. Numbers are
// rendered without exponent. A macro naming a missing, null, empty or structured
// value is a validation error.
func ExpandKeys(indexMap map[string]string, entity any) (map[string]string, error) {
	doc, err := document(entity)
	if err != nil {
		return nil, err
	}

	res := make(map[string]string, len(indexMap))
	for attr, template := range indexMap {
		var expandErr error
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			name := strings.Trim(macro, "{}")
			s, err := render(doc[name])
			if err != nil && expandErr == nil {
				expandErr = errors.NewValidationError(name, fmt.Sprintf("cannot build %s: %v", attr, err))
			}
			return s
		})
		if expandErr != nil {
			return nil, expandErr
		}
		res[attr] = expanded
	}
	return res, nil
}

func document(entity any) (map[string]any, error) {
	b, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("entity does not encode as an object: %w", err)
	}
	return doc, nil
}

func render(v any) (string, error) {
	switch tv := v.(type) {
	case nil:
		return "", fmt.Errorf("value is missing")
	case string:
		if tv == "" {
			return "", fmt.Errorf("value is empty")
		}
		return tv, nil
	case json.Number:
		s := tv.String()
		if !strings.ContainsAny(s, "eE") {
			return s, nil
		}
		f, err := tv.Float64()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(tv), nil
	default:
		return "", fmt.Errorf("value of type %T cannot be part of a key", v)
	}
}
