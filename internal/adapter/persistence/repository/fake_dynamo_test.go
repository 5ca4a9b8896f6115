package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory single-table stand-in for the DynamoDB client.
// Conditions are honoured only for the attribute_exists/attribute_not_exists
// checks on id that the repositories use.
type fakeDynamo struct {
	rows map[string]map[string]types.AttributeValue

	updateOut  *dynamodb.UpdateItemOutput
	updateErr  error
	lastUpdate *dynamodb.UpdateItemInput

	// pageSize splits Query and Scan results; zero returns everything at once.
	pageSize     int
	transactions [][]types.TransactWriteItem
	queries      int
}

var _ dynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{rows: map[string]map[string]types.AttributeValue{}}
}

func idOf(av map[string]types.AttributeValue) string {
	if s, ok := av["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := idOf(in.Item)
	_, exists := f.rows[id]
	if in.ConditionExpression != nil {
		switch *in.ConditionExpression {
		case "attribute_not_exists(#id)":
			if exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		case "attribute_exists(#id)":
			if !exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		}
	}
	f.rows[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.rows[idOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) matching(filter func(map[string]types.AttributeValue) bool) []map[string]types.AttributeValue {
	var out []map[string]types.AttributeValue
	for _, row := range f.rows {
		if filter(row) {
			out = append(out, row)
		}
	}
	return out
}

func (f *fakeDynamo) page(all []map[string]types.AttributeValue, start map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue) {
	offset := 0
	if start != nil {
		for i, row := range all {
			if idOf(row) == idOf(start) {
				offset = i + 1
			}
		}
	}
	all = all[offset:]
	if f.pageSize == 0 || len(all) <= f.pageSize {
		return all, nil
	}
	return all[:f.pageSize], map[string]types.AttributeValue{"id": all[f.pageSize-1]["id"]}
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries++
	want, ok := in.ExpressionAttributeValues[":hcid"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("fake: unsupported query")
	}
	all := f.sorted(f.matching(func(row map[string]types.AttributeValue) bool {
		got, ok := row["health_check_id"].(*types.AttributeValueMemberS)
		return ok && got.Value == want.Value
	}))
	items, last := f.page(all, in.ExclusiveStartKey)
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	all := f.sorted(f.matching(func(map[string]types.AttributeValue) bool { return true }))
	items, last := f.page(all, in.ExclusiveStartKey)
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	if len(in.TransactItems) > maxTransactItems {
		return nil, errors.New("fake: too many transact items")
	}
	f.transactions = append(f.transactions, in.TransactItems)
	for _, w := range in.TransactItems {
		if w.Put != nil {
			f.rows[idOf(w.Put.Item)] = w.Put.Item
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

// sorted orders rows by id so pagination is deterministic.
func (f *fakeDynamo) sorted(rows []map[string]types.AttributeValue) []map[string]types.AttributeValue {
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && idOf(rows[j]) < idOf(rows[j-1]); j-- {
			rows[j], rows[j-1] = rows[j-1], rows[j]
		}
	}
	return rows
}
