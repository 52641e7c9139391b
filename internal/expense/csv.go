package expense

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// Header は先頭アイテムの属性名を並べる
// 既知の項目はRecordFieldsの順、それ以外は名前順で後ろに付ける
func Header(item map[string]types.AttributeValue) []string {
	header := make([]string, 0, len(item))
	known := make(map[string]bool, len(RecordFields))
	for _, name := range RecordFields {
		known[name] = true
		if _, ok := item[name]; ok {
			header = append(header, name)
		}
	}

	var extra []string
	for name := range item {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	return append(header, extra...)
}

// FormatCSV はクエリ結果をCSVにする。0件なら空文字列
func FormatCSV(items []map[string]types.AttributeValue) (string, error) {
	if len(items) == 0 {
		return "", nil
	}

	header := Header(items[0])
	if len(header) == 0 {
		return "", &FormatError{Err: errors.New("first record has no fields")}
	}

	columns := make(map[string]bool, len(header))
	for _, name := range header {
		columns[name] = true
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", &FormatError{Err: errors.Wrap(err, "write header")}
	}

	for i, item := range items {
		for name := range item {
			if !columns[name] {
				return "", &FormatError{Err: errors.Errorf("record %d has field %q not in header", i, name)}
			}
		}

		row := make([]string, len(header))
		for j, name := range header {
			av, ok := item[name]
			if !ok {
				continue
			}
			cell, err := renderCell(av)
			if err != nil {
				return "", &FormatError{Err: errors.Wrapf(err, "record %d field %q", i, name)}
			}
			row[j] = cell
		}

		if err := w.Write(row); err != nil {
			return "", &FormatError{Err: errors.Wrapf(err, "write record %d", i)}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", &FormatError{Err: errors.Wrap(err, "flush")}
	}

	return buf.String(), nil
}

// renderCell は属性値を1セル分の文字列にする。数値は保存された10進数表記のまま
func renderCell(av types.AttributeValue) (string, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value, nil
	case *types.AttributeValueMemberN:
		return v.Value, nil
	case *types.AttributeValueMemberBOOL:
		return strconv.FormatBool(v.Value), nil
	case *types.AttributeValueMemberNULL:
		return "", nil
	}

	// リストやマップの中の数値もfloat64にしない
	var decoded interface{}
	err := attributevalue.UnmarshalWithOptions(av, &decoded, func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(decoded)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
