package store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/k-kazuya0926/expense-tracker/internal/expense"
)

// S3API は*s3.Clientのうち使う操作だけのインターフェース
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archive はレコードの複製を置くバケット
type Archive struct {
	client S3API
	bucket string
}

func NewArchive(client S3API, bucket string) *Archive {
	return &Archive{client: client, bucket: bucket}
}

func (a *Archive) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return expense.NewStorageError(fmt.Sprintf("put object %s/%s", a.bucket, key), err)
	}
	return nil
}
