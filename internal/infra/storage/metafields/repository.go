package metafields

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	"github.com/m04kA/SMC-DeliveryDates/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeliveryDates/pkg/psqlbuilder"
)

const (
	tableMetafields  = "shop_metafields"
	tableDefinitions = "metafield_definitions"
)

// Repository key/value хранилище конфигурации магазина
// Каждый ключ хранится отдельной строкой: запись одного ключа никак не связана с другим
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория метаполей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает сохраненный JSON для ключа магазина
// Если значение отсутствует, возвращает ErrMetafieldNotFound
func (r *Repository) Get(ctx context.Context, shopID string, key string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From(tableMetafields).
		Where(squirrel.Eq{
			"shop_id":   shopID,
			"namespace": key,
			"key":       key,
		}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMetafieldNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// Set сохраняет JSON для ключа магазина, перезаписывая прежнее значение (last write wins)
func (r *Repository) Set(ctx context.Context, shopID string, key string, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableMetafields).
		Columns("shop_id", "namespace", "key", "value").
		Values(shopID, key, key, value).
		Suffix("ON CONFLICT (shop_id, namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// EnsureDefinitions регистрирует определения метаполей магазина в одной транзакции
// Уже существующие определения не изменяются. Возвращает количество созданных.
func (r *Repository) EnsureDefinitions(ctx context.Context, shopID string, defs []domain.MetafieldDefinition) (int, error) {
	txCtx, tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	executor := dbmetrics.GetExecutor(txCtx, r.db)
	created := 0

	for _, def := range defs {
		query, args, err := psqlbuilder.Insert(tableDefinitions).
			Columns("shop_id", "namespace", "key", "name", "description", "type", "owner_type").
			Values(shopID, def.Namespace, def.Key, def.Name, def.Description, def.Type, def.OwnerType).
			Suffix("ON CONFLICT (shop_id, owner_type, namespace, key) DO NOTHING").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("%w: EnsureDefinitions - build insert query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(txCtx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("%w: EnsureDefinitions - insert %s.%s: %v", ErrExecQuery, def.Namespace, def.Key, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("%w: EnsureDefinitions - get rows affected: %v", ErrExecQuery, err)
		}
		created += int(rowsAffected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: EnsureDefinitions - commit: %v", ErrTransaction, err)
	}

	return created, nil
}

// BeginTx начинает новую транзакцию и возвращает контекст с ней
func (r *Repository) BeginTx(ctx context.Context, opts *sql.TxOptions) (context.Context, TxExecutor, error) {
	if txBeginner, ok := r.db.(TxBeginner); ok {
		tx, err := txBeginner.BeginTx(ctx, opts)
		if err != nil {
			return ctx, nil, fmt.Errorf("%w: BeginTx: %v", ErrTransaction, err)
		}
		return dbmetrics.WithTx(ctx, tx), tx, nil
	}

	// Fallback для обычного *sql.DB
	if db, ok := r.db.(*sql.DB); ok {
		tx, err := db.BeginTx(ctx, opts)
		if err != nil {
			return ctx, nil, fmt.Errorf("%w: BeginTx: %v", ErrTransaction, err)
		}
		wrappedTx := &dbmetrics.SqlTxWrapper{Tx: tx}
		return dbmetrics.WithTx(ctx, wrappedTx), wrappedTx, nil
	}

	return ctx, nil, fmt.Errorf("%w: db type not supported", ErrTransaction)
}
