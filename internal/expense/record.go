package expense

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DynamoDBの属性名
const (
	AttrUserID      = "userId"
	AttrTimestamp   = "timestamp"
	AttrAmount      = "amount"
	AttrCategory    = "category"
	AttrDescription = "description"
)

// RecordFields はCSVヘッダーの既定の並び順
var RecordFields = []string{AttrUserID, AttrTimestamp, AttrAmount, AttrCategory, AttrDescription}

// 支出レコードの構造体
type Record struct {
	OwnerID     string          `json:"userId"`
	RecordedAt  string          `json:"timestamp"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// NewRecord はリクエストにタイムスタンプを付与してレコードを作る
func NewRecord(req AddRequest, clock *Clock) Record {
	return Record{
		OwnerID:     req.UserID,
		RecordedAt:  FormatTimestamp(clock.Now()),
		Amount:      *req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
}

// Item はDynamoDBアイテムに変換する
// 注意: attributevalue.MarshalMap()はdecimal.Decimalを数値として扱えないため、手動で作成
func (r Record) Item() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrUserID:      &types.AttributeValueMemberS{Value: r.OwnerID},
		AttrTimestamp:   &types.AttributeValueMemberS{Value: r.RecordedAt},
		AttrAmount:      &types.AttributeValueMemberN{Value: r.Amount.String()},
		AttrCategory:    &types.AttributeValueMemberS{Value: r.Category},
		AttrDescription: &types.AttributeValueMemberS{Value: r.Description},
	}
}

// ArchiveJSON はS3に保存するJSON。amountは文字列の10進数になる
func (r Record) ArchiveJSON() ([]byte, error) {
	return json.Marshal(r)
}

// ArchiveKey はS3のオブジェクトキー {userId}/{uuid}.json
func ArchiveKey(ownerID string, id uuid.UUID) string {
	return fmt.Sprintf("%s/%s.json", ownerID, id.String())
}
