package logger

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
)

const (
	logEnvKey     = "LOG_ENV"
	defaultLogEnv = "prod"
)

var logger *zap.Logger

// テストで差し替える
var exit = os.Exit

func init() {
	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}

	var err error
	if env == "dev" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}

	if err != nil || logger == nil {
		log.Fatal("logger init", err)
	}
}

// RequestID はLambdaのリクエストIDをフィールドにする。ローカル実行では空
func RequestID(ctx context.Context) zap.Field {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return zap.String("request_id", lc.AwsRequestID)
	}
	return zap.Skip()
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// Fatal はバッファを書き出してから終了する。呼び出し側のdeferは実行されない
func Fatal(msg string, fields ...zap.Field) {
	logger.Error(msg, append(fields, zap.Bool("fatal", true))...)
	Sync()
	exit(1)
}

func Sync() {
	_ = logger.Sync()
}
