package store

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var errUnavailable = errors.New("service unavailable")

// fakeDynamo keeps items per table keyed by case number
type fakeDynamo struct {
	mu      sync.Mutex
	tables  map[string]map[string]map[string]types.AttributeValue
	failPut map[string]bool
	failDel map[string]bool
	puts    []string
	deletes []string

	// afterPut runs once a put has been stored, outside the lock
	afterPut func(table string)
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		tables:  make(map[string]map[string]map[string]types.AttributeValue),
		failPut: make(map[string]bool),
		failDel: make(map[string]bool),
	}
}

func keyOf(item map[string]types.AttributeValue) string {
	return item[AttrCaseNumber].(*types.AttributeValueMemberN).Value
}

func (f *fakeDynamo) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	table := aws.ToString(in.TableName)
	if err := f.put(ctx, table, in.Item); err != nil {
		return nil, err
	}
	if f.afterPut != nil {
		f.afterPut(table)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) put(ctx context.Context, table string, item map[string]types.AttributeValue) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.puts = append(f.puts, table)
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.failPut[table] {
		return errUnavailable
	}
	if f.tables[table] == nil {
		f.tables[table] = make(map[string]map[string]types.AttributeValue)
	}
	f.tables[table][keyOf(item)] = item
	return nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item := f.tables[aws.ToString(in.TableName)][keyOf(in.Key)]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := aws.ToString(in.TableName)
	f.deletes = append(f.deletes, table)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.failDel[table] {
		return nil, errUnavailable
	}

	k := keyOf(in.Key)
	if want, ok := in.ExpressionAttributeValues[":submission"]; ok {
		current, exists := f.tables[table][k]
		if !exists || current[AttrSubmissionID].(*types.AttributeValueMemberS).Value != want.(*types.AttributeValueMemberS).Value {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	}
	delete(f.tables[table], k)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) has(table string, key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.tables[table][key]
	return ok
}
