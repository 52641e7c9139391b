package expense

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// クライアントに返すエラーメッセージ
const (
	MsgMissingFields  = "Missing required fields: userId, amount, or category"
	MsgInvalidBody    = "Invalid request body"
	MsgMissingOwnerID = "Missing userId parameter"
	MsgAmountRange    = "Amount out of range"
)

// DynamoDBの数値型の範囲 (有効桁38桁、1E-130 から 9.99...E+125)
const (
	maxAmountDigits   = 38
	maxAmountExponent = 125
	minAmountExponent = -130
)

// リクエストボディの構造体
type AddRequest struct {
	UserID      string           `json:"userId"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
}

// ParseAddRequest はJSONボディを読み、必須項目を検証する
// amountは0を許容し、未指定かnullのみを拒否する
func ParseAddRequest(body string) (AddRequest, error) {
	var req AddRequest
	if strings.TrimSpace(body) == "" {
		body = "{}"
	}
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return AddRequest{}, &ValidationError{Message: MsgInvalidBody, Err: err}
	}

	if req.UserID == "" || req.Amount == nil || req.Category == "" {
		return AddRequest{}, &ValidationError{Message: MsgMissingFields}
	}

	if !amountInRange(*req.Amount) {
		return AddRequest{}, &ValidationError{Message: MsgAmountRange}
	}

	return req, nil
}

// amountInRange は桁を展開せずに、係数と指数だけで範囲を判定する
func amountInRange(d decimal.Decimal) bool {
	coef := new(big.Int).Abs(d.Coefficient()).String()
	if coef == "0" {
		return true
	}

	digits := strings.TrimRight(coef, "0")
	exp := int64(d.Exponent()) + int64(len(coef)-len(digits))
	if len(digits) > maxAmountDigits {
		return false
	}

	// 科学表記にしたときの指数
	sci := exp + int64(len(digits)) - 1
	return sci >= minAmountExponent && sci <= maxAmountExponent
}

// ValidateOwnerID はエクスポートのクエリパラメータを検証する
func ValidateOwnerID(ownerID string) error {
	if ownerID == "" {
		return &ValidationError{Message: MsgMissingOwnerID}
	}
	return nil
}
