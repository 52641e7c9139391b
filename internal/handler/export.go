package handler

import (
	"context"
	"fmt"
	"mime"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/k-kazuya0926/expense-tracker/internal/expense"
	"github.com/k-kazuya0926/expense-tracker/internal/logger"
)

// RecordQuerier はパーティションキーでの検索
type RecordQuerier interface {
	Query(ctx context.Context, ownerID string) ([]map[string]types.AttributeValue, error)
}

// ExportExpenses は支出をCSVで返すLambdaハンドラー
type ExportExpenses struct {
	table RecordQuerier
}

func NewExportExpenses(table RecordQuerier) *ExportExpenses {
	return &ExportExpenses{table: table}
}

func (h *ExportExpenses) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (response events.APIGatewayProxyResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic occurred", logger.RequestID(ctx), zap.Any("panic", r))
			response = exportError(fmt.Errorf("panic: %v", r))
			err = nil
		}
	}()

	ownerID := request.QueryStringParameters["userId"]
	logger.Info("received event",
		logger.RequestID(ctx),
		zap.String("method", request.HTTPMethod),
		zap.String("path", request.Path),
		zap.String("user_id", ownerID),
	)

	body, err := h.export(ctx, ownerID)
	if err != nil {
		var verr *expense.ValidationError
		if errors.As(err, &verr) {
			return textResponse(http.StatusBadRequest, verr.Message), nil
		}
		logger.Error("failed to export expenses", logger.RequestID(ctx), zap.Error(err))
		return exportError(err), nil
	}

	respHeaders := headers(contentTypeCSV)
	respHeaders["Content-Disposition"] = contentDisposition(ownerID)

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    respHeaders,
		Body:       body,
	}, nil
}

func (h *ExportExpenses) export(ctx context.Context, ownerID string) (string, error) {
	if err := expense.ValidateOwnerID(ownerID); err != nil {
		return "", err
	}

	items, err := h.table.Query(ctx, ownerID)
	if err != nil {
		return "", err
	}

	body, err := expense.FormatCSV(items)
	if err != nil {
		return "", err
	}

	logger.Info("expenses exported", logger.RequestID(ctx), zap.String("user_id", ownerID), zap.Int("count", len(items)))
	return body, nil
}

func exportError(err error) events.APIGatewayProxyResponse {
	return textResponse(http.StatusInternalServerError, fmt.Sprintf("Error exporting expenses: %v", err))
}

// contentDisposition はファイル名に区切り文字などが含まれる場合だけ引用符で囲む
func contentDisposition(ownerID string) string {
	v := mime.FormatMediaType("attachment", map[string]string{
		"filename": fmt.Sprintf("expenses_%s.csv", ownerID),
	})
	if v == "" {
		return "attachment"
	}
	return v
}
