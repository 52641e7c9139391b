// Package apigw はLambdaハンドラーをローカルのWebサーバーとして動かすためのアダプター
package apigw

import (
	"context"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/k-kazuya0926/expense-tracker/internal/logger"
)

// HandlerFunc はAPI Gatewayプロキシ統合のLambdaハンドラー
type HandlerFunc func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// ToEvent はHTTPリクエストをAPIGatewayProxyRequestに変換する
func ToEvent(r *http.Request) (events.APIGatewayProxyRequest, error) {
	headers := make(map[string]string)
	for key, values := range r.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	queryParams := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			queryParams[key] = values[0]
		}
	}

	// リクエストボディを読み取り
	var body string
	if r.Body != nil {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			return events.APIGatewayProxyRequest{}, err
		}
		body = string(bodyBytes)
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		QueryStringParameters: queryParams,
		Headers:               headers,
		Body:                  body,
	}, nil
}

// Handler はLambdaハンドラーをhttp.Handlerとして包む
func Handler(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, err := ToEvent(r)
		if err != nil {
			logger.Error("failed to read request body", zap.Error(err))
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		// Lambda handlerを実行
		response, err := h(r.Context(), event)
		if err != nil {
			logger.Error("handler error", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// レスポンスヘッダーを設定
		for key, value := range response.Headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(response.StatusCode)

		if _, err := io.WriteString(w, response.Body); err != nil {
			logger.Error("failed to write response", zap.Error(err))
		}
	})
}

// ListenAndServe はaddrでハンドラーを公開する
func ListenAndServe(addr string, h HandlerFunc) error {
	logger.Info("starting local server", zap.String("addr", addr))
	return http.ListenAndServe(addr, Handler(h))
}
