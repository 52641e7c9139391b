package handler

import (
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// memoryTable はuserId/timestampをキーに持つDynamoDBテーブルの代わり
type memoryTable struct {
	mu       sync.Mutex
	items    []map[string]types.AttributeValue
	putErr   error
	queryErr error
}

func keyOf(item map[string]types.AttributeValue) string {
	uid := item["userId"].(*types.AttributeValueMemberS).Value
	ts := item["timestamp"].(*types.AttributeValueMemberS).Value
	return uid + "#" + ts
}

func (m *memoryTable) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.putErr != nil {
		return nil, m.putErr
	}
	key := keyOf(params.Item)
	for _, item := range m.items {
		if keyOf(item) == key && aws.ToString(params.ConditionExpression) != "" {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	}
	m.items = append(m.items, params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (m *memoryTable) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.queryErr != nil {
		return nil, m.queryErr
	}
	uid := params.ExpressionAttributeValues[":uid"].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, item := range m.items {
		if item["userId"].(*types.AttributeValueMemberS).Value == uid {
			out = append(out, item)
		}
	}
	return &dynamodb.QueryOutput{Items: out, Count: int32(len(out))}, nil
}

type archivedObject struct {
	key         string
	body        []byte
	contentType string
}

type memoryBucket struct {
	mu      sync.Mutex
	objects []archivedObject
	err     error
}

func (b *memoryBucket) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err != nil {
		return nil, b.err
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	b.objects = append(b.objects, archivedObject{
		key:         aws.ToString(params.Key),
		body:        body,
		contentType: aws.ToString(params.ContentType),
	})
	return &s3.PutObjectOutput{}, nil
}
