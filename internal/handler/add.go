package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/k-kazuya0926/expense-tracker/internal/expense"
	"github.com/k-kazuya0926/expense-tracker/internal/logger"
)

// RecordWriter はキー付きストアへの書き込み
type RecordWriter interface {
	Put(ctx context.Context, record expense.Record) error
}

// ObjectWriter はアーカイブへの書き込み
type ObjectWriter interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// AddExpense は支出を登録するLambdaハンドラー
type AddExpense struct {
	table   RecordWriter
	archive ObjectWriter
	clock   *expense.Clock
	newID   func() uuid.UUID
}

func NewAddExpense(table RecordWriter, archive ObjectWriter, clock *expense.Clock) *AddExpense {
	return &AddExpense{
		table:   table,
		archive: archive,
		clock:   clock,
		newID:   uuid.New,
	}
}

func (h *AddExpense) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (response events.APIGatewayProxyResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic occurred", logger.RequestID(ctx), zap.Any("panic", r))
			response = internalError(fmt.Errorf("panic: %v", r))
			err = nil
		}
	}()

	logger.Info("received event",
		logger.RequestID(ctx),
		zap.String("method", request.HTTPMethod),
		zap.String("path", request.Path),
	)

	if err := h.add(ctx, request); err != nil {
		var verr *expense.ValidationError
		if errors.As(err, &verr) {
			logger.Info("invalid request", logger.RequestID(ctx), zap.Error(err))
			return jsonResponse(http.StatusBadRequest, errorBody{Error: verr.Message}), nil
		}
		logger.Error("failed to add expense", logger.RequestID(ctx), zap.Error(err))
		return internalError(err), nil
	}

	return jsonResponse(http.StatusOK, messageBody{Message: "Expense added successfully"}), nil
}

func (h *AddExpense) add(ctx context.Context, request events.APIGatewayProxyRequest) error {
	// フォームに入力されたデータを得る
	body, err := requestBody(request)
	if err != nil {
		return &expense.ValidationError{Message: expense.MsgInvalidBody, Err: err}
	}

	req, err := expense.ParseAddRequest(body)
	if err != nil {
		return err
	}

	record := expense.NewRecord(req, h.clock)

	// DynamoDBにアイテムを保存
	if err := h.table.Put(ctx, record); err != nil {
		return err
	}

	// S3にJSONとして保存
	// DynamoDBへの書き込みは取り消さない
	payload, err := record.ArchiveJSON()
	if err != nil {
		return expense.NewStorageError("marshal archive copy", err)
	}
	key := expense.ArchiveKey(record.OwnerID, h.newID())
	if err := h.archive.Put(ctx, key, payload, contentTypeJSON); err != nil {
		return err
	}

	logger.Info("expense added",
		logger.RequestID(ctx),
		zap.String("user_id", record.OwnerID),
		zap.String("timestamp", record.RecordedAt),
		zap.String("archive_key", key),
	)
	return nil
}

func internalError(err error) events.APIGatewayProxyResponse {
	return jsonResponse(http.StatusInternalServerError, errorBody{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}
