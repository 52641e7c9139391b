package store

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// AWSクライアント（プロセス内で一度だけ作って使い回す）
var (
	clientsOnce    sync.Once
	dynamodbClient *dynamodb.Client
	s3Client       *s3.Client
	clientsErr     error
)

// Clients は初回呼び出し時にAWS設定をロードし、以降は同じクライアントを返す
func Clients(ctx context.Context) (*dynamodb.Client, *s3.Client, error) {
	clientsOnce.Do(func() {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			clientsErr = errors.Wrap(err, "unable to load SDK config")
			return
		}
		dynamodbClient = dynamodb.NewFromConfig(cfg)
		s3Client = s3.NewFromConfig(cfg)
	})
	return dynamodbClient, s3Client, clientsErr
}
