package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/k-kazuya0926/expense-tracker/internal/apigw"
	"github.com/k-kazuya0926/expense-tracker/internal/config"
	"github.com/k-kazuya0926/expense-tracker/internal/handler"
	"github.com/k-kazuya0926/expense-tracker/internal/logger"
	"github.com/k-kazuya0926/expense-tracker/internal/store"
)

func main() {
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("unable to load config", zap.Error(err))
	}

	dynamodbClient, _, err := store.Clients(context.Background())
	if err != nil {
		logger.Fatal("unable to init AWS clients", zap.Error(err))
	}

	h := handler.NewExportExpenses(store.NewExpenseTable(dynamodbClient, cfg.ExpensesTable))

	if cfg.IsLocal() {
		if err := apigw.ListenAndServe(cfg.LocalAddr, h.Handle); err != nil {
			logger.Fatal("local server stopped", zap.Error(err))
		}
		return
	}

	lambda.Start(h.Handle)
}
