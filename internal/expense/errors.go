package expense

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError はクライアント入力の不備 (400)
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

// StorageError はDynamoDB/S3の読み書き失敗 (500)
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// FormatError はCSV変換の失敗 (500)
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format csv: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// NewStorageError はストア操作の失敗をStorageErrorに包む
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: errors.WithStack(err)}
}
