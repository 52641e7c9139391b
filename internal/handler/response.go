package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCSV  = "text/csv"
	contentTypeText = "text/plain; charset=utf-8"
)

type messageBody struct {
	Message string `json:"message"`
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func headers(contentType string) map[string]string {
	return map[string]string{
		"Content-Type":                contentType,
		"Access-Control-Allow-Origin": "*",
	}
}

func jsonResponse(status int, v interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error": "Internal server error"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers(contentTypeJSON),
		Body:       string(body),
	}
}

func textResponse(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers(contentTypeText),
		Body:       body,
	}
}

// requestBody はbase64エンコードされていればデコードしたボディを返す
func requestBody(request events.APIGatewayProxyRequest) (string, error) {
	if !request.IsBase64Encoded {
		return request.Body, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(request.Body)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
