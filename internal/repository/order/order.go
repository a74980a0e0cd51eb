package order

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"orderprocessing/internal/apperrors"
	"orderprocessing/internal/entities"
	"orderprocessing/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	tableOrders    = "orders"
	tableStatusLog = "order_status_log"
)

var orderColumns = []string{
	"id", "user_id", "type", "amount", "flag", "status", "priority", "notes", "created_at", "updated_at",
}

type Repository struct {
	querier   Querier
	txManager TxManager
}

func New(querier Querier, txManager TxManager) *Repository {
	return &Repository{
		querier:   querier,
		txManager: txManager,
	}
}

// GetOrdersByUser возвращает заказы пользователя в порядке создания.
func (r *Repository) GetOrdersByUser(ctx context.Context, userID int64) ([]*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From(tableOrders).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, apperrors.NewPersistenceError("build get orders query", "", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.NewPersistenceError("get orders by user", query, err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.UserID,
			&orderModel.Type,
			&orderModel.Amount,
			&orderModel.Flag,
			&orderModel.Status,
			&orderModel.Priority,
			&orderModel.Notes,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, repository.NewPersistenceError("scan order", query, err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, repository.NewPersistenceError("get orders by user", query, err)
	}

	return ToDomainList(orderModels), nil
}

// UpdateStatus обновляет статус и приоритет заказа и пишет запись в журнал статусов в одной транзакции.
func (r *Repository) UpdateStatus(ctx context.Context, update entities.OrderStatusUpdate) error {
	if update.ID.IsAbsent() {
		return apperrors.NewPersistenceError("update order status: order id is required", "", nil)
	}
	orderID := update.ID.String()

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		updateQuery, args, err := qb.
			Update(tableOrders).
			Set("status", update.Status.String()).
			Set("priority", update.Priority.String()).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": orderID}).
			ToSql()
		if err != nil {
			return apperrors.NewPersistenceError("build update order query", "", err)
		}

		tag, err := r.querier.Exec(ctx, updateQuery, args...)
		if err != nil {
			return repository.NewPersistenceError("update order status", updateQuery, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewPersistenceError(fmt.Sprintf("update order status: order %s not found", orderID), updateQuery, nil)
		}

		logQuery, args, err := qb.
			Insert(tableStatusLog).
			Columns("order_id", "status", "priority").
			Values(orderID, update.Status.String(), update.Priority.String()).
			ToSql()
		if err != nil {
			return apperrors.NewPersistenceError("build status log query", "", err)
		}

		if _, err := r.querier.Exec(ctx, logQuery, args...); err != nil {
			return repository.NewPersistenceError("insert status log", logQuery, err)
		}
		return nil
	})
	if err != nil && !apperrors.IsPersistence(err) {
		// ошибка begin/commit от менеджера транзакций
		return repository.NewPersistenceError("update order status transaction", "", err)
	}
	return err
}

// GetUserIDsWithPendingOrders возвращает пользователей, у которых остались заказы в ожидании.
func (r *Repository) GetUserIDsWithPendingOrders(ctx context.Context) ([]int64, error) {
	query, args, err := qb.
		Select("user_id").
		Distinct().
		From(tableOrders).
		Where(sq.Eq{"status": entities.OrderPending.String()}).
		OrderBy("user_id").
		ToSql()
	if err != nil {
		return nil, apperrors.NewPersistenceError("build pending users query", "", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.NewPersistenceError("get users with pending orders", query, err)
	}
	defer rows.Close()

	userIDs := make([]int64, 0, 8)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, repository.NewPersistenceError("scan user id", query, err)
		}
		userIDs = append(userIDs, userID)
	}

	if err := rows.Err(); err != nil {
		return nil, repository.NewPersistenceError("get users with pending orders", query, err)
	}

	return userIDs, nil
}
