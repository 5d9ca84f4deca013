/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"sort"
	"strings"
	"sync"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeAPI is an in-memory table that understands the key conditions built by queryInput.
type fakeAPI struct {
	mu        sync.Mutex
	items     map[string]map[string]types.AttributeValue
	queryErrs []error
	queries   int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{items: make(map[string]map[string]types.AttributeValue)}
}

func s(av types.AttributeValue) string {
	if v, ok := av.(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeAPI) put(item map[string]types.AttributeValue) {
	f.items[s(item[AttrPK])+"|"+s(item[AttrSK])] = item
}

func (f *fakeAPI) GetItem(_ context.Context, in *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &sdk.GetItemOutput{Item: f.items[s(in.Key[AttrPK])+"|"+s(in.Key[AttrSK])]}, nil
}

func (f *fakeAPI) PutItem(_ context.Context, in *sdk.PutItemInput, _ ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(in.Item)
	return &sdk.PutItemOutput{}, nil
}

func (f *fakeAPI) DeleteItem(_ context.Context, in *sdk.DeleteItemInput, _ ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, s(in.Key[AttrPK])+"|"+s(in.Key[AttrSK]))
	return &sdk.DeleteItemOutput{}, nil
}

func (f *fakeAPI) Query(_ context.Context, in *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries++
	if len(f.queryErrs) > 0 {
		err := f.queryErrs[0]
		f.queryErrs = f.queryErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	pk := s(in.ExpressionAttributeValues[":pk"])
	prefix := s(in.ExpressionAttributeValues[":prefix"])

	var matched []map[string]types.AttributeValue
	for _, item := range f.items {
		if s(item[AttrPK]) == pk && strings.HasPrefix(s(item[AttrSK]), prefix) {
			matched = append(matched, item)
		}
	}
	desc := in.ScanIndexForward != nil && !*in.ScanIndexForward
	sort.Slice(matched, func(i, j int) bool {
		if desc {
			return s(matched[i][AttrSK]) > s(matched[j][AttrSK])
		}
		return s(matched[i][AttrSK]) < s(matched[j][AttrSK])
	})

	if start := in.ExclusiveStartKey; start != nil {
		for i, item := range matched {
			if s(item[AttrSK]) == s(start[AttrSK]) {
				matched = matched[i+1:]
				break
			}
		}
	}

	out := &sdk.QueryOutput{Items: matched}
	if in.Limit != nil && int(*in.Limit) < len(matched) {
		out.Items = matched[:*in.Limit]
		last := out.Items[len(out.Items)-1]
		out.LastEvaluatedKey = map[string]types.AttributeValue{AttrPK: last[AttrPK], AttrSK: last[AttrSK]}
	}
	return out, nil
}
