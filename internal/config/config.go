package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// EnvLocal のときはLambdaではなくWebサーバーとして起動する
	EnvLocal = "LOCAL"

	defaultExpensesTable = "Expenses"
	defaultArchiveBucket = "expense-tracker-data-ope"
	defaultLocalAddr     = ":8080"
)

type Config struct {
	Env           string
	ExpensesTable string
	ArchiveBucket string
	LocalAddr     string
}

func (c Config) IsLocal() bool {
	return c.Env == EnvLocal
}

// Load は環境変数を読む。ENV=LOCALなら先に.envを読み込む
func Load() (Config, error) {
	if os.Getenv("ENV") == EnvLocal {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return Config{}, errors.Wrap(err, "loading .env")
		}
	}

	cfg := Config{
		Env:           os.Getenv("ENV"),
		ExpensesTable: getenv("EXPENSES_TABLE", defaultExpensesTable),
		ArchiveBucket: getenv("ARCHIVE_BUCKET", defaultArchiveBucket),
		LocalAddr:     getenv("LOCAL_ADDR", defaultLocalAddr),
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
