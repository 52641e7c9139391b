package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/k-kazuya0926/expense-tracker/internal/expense"
)

// DynamoDBAPI は*dynamodb.Clientのうち使う操作だけのインターフェース
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ExpenseTable は支出テーブル (パーティションキー userId, ソートキー timestamp)
type ExpenseTable struct {
	client    DynamoDBAPI
	tableName string
}

func NewExpenseTable(client DynamoDBAPI, tableName string) *ExpenseTable {
	return &ExpenseTable{client: client, tableName: tableName}
}

// Put はレコードを1件保存する
// 同じキーのアイテムが既にあれば上書きせずにエラーにする
func (t *ExpenseTable) Put(ctx context.Context, record expense.Record) error {
	putInput := &dynamodb.PutItemInput{
		TableName:           aws.String(t.tableName),
		Item:                record.Item(),
		ConditionExpression: aws.String("attribute_not_exists(#uid)"),
		ExpressionAttributeNames: map[string]string{
			"#uid": expense.AttrUserID,
		},
	}

	if _, err := t.client.PutItem(ctx, putInput); err != nil {
		return expense.NewStorageError(fmt.Sprintf("put item to %s", t.tableName), err)
	}
	return nil
}

// Query はownerIDの全アイテムを返す。ページングはしない
func (t *ExpenseTable) Query(ctx context.Context, ownerID string) ([]map[string]types.AttributeValue, error) {
	queryInput := &dynamodb.QueryInput{
		TableName:              aws.String(t.tableName),
		KeyConditionExpression: aws.String("#uid = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#uid": expense.AttrUserID,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{
				Value: ownerID,
			},
		},
	}

	result, err := t.client.Query(ctx, queryInput)
	if err != nil {
		return nil, expense.NewStorageError(fmt.Sprintf("query %s", t.tableName), err)
	}

	return result.Items, nil
}
