package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Persistence абстракция над хранилищем для репозиториев.
// Каждая операция атомарна на уровне одной записи - транзакций,
// охватывающих несколько записей, в системе нет.
type Persistence interface {
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Exec(ctx context.Context, query string, args ...interface{}) error
	ExecWithResult(ctx context.Context, query string, args ...interface{}) (int64, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}
