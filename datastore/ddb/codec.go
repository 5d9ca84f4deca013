/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Items are encoded through the json form of the entity so that attribute names are
// the wire names and timestamps keep their API representation.

func marshalItem(entity any) (map[string]types.AttributeValue, error) {
	b, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("entity does not encode as an object: %w", err)
	}
	return attributevalue.MarshalMap(doc)
}

func unmarshalItem(item map[string]types.AttributeValue, out any) error {
	var doc map[string]any
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return err
	}
	delete(doc, AttrPK)
	delete(doc, AttrSK)
	delete(doc, AttrEntityType)

	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func stringAttr(item map[string]types.AttributeValue, name string) (string, error) {
	attr, ok := item[name]
	if !ok {
		return "", fmt.Errorf("missing %s attribute in item", name)
	}
	var s string
	if err := attributevalue.Unmarshal(attr, &s); err != nil {
		return "", fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return s, nil
}
