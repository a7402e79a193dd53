package postgres

import (
	"context"
	"errors"
	"fmt"

	"personal-trainer-app/internal/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type txKey struct{}

// DB hands every store the gorm session bound to the request, or to the
// transaction opened by Transaction when ctx carries one.
type DB struct {
	gorm *gorm.DB
}

func New(db *gorm.DB) *DB {
	return &DB{gorm: db}
}

func (d *DB) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return d.gorm.WithContext(ctx)
}

// Transaction runs fn inside one database transaction. Nested calls join the
// outer one.
func (d *DB) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return d.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

const uniqueViolation = "23505"

// translate maps gorm and driver errors onto the apperr vocabulary.
func translate(what string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what, err)
	}
	var pgErr *pgconn.PgError
	if errors.Is(err, gorm.ErrDuplicatedKey) || (errors.As(err, &pgErr) && pgErr.Code == uniqueViolation) {
		return fmt.Errorf("%s: %w", what, apperr.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", what, err)
}
