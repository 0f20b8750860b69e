package movement

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecomstack/inventory-service/constant"
	"github.com/ecomstack/inventory-service/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type MovementRepository interface {
	NextSequence(ctx context.Context, movType string, year int) (int64, error)
	InsertMovementTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovementEntity) (uint64, error)
	InsertMovementItemsTx(ctx context.Context, tx *sqlx.Tx, movementID uint64, items []model.MovementItemRequest) error
	GetMovementForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.StockMovementEntity, error)
	GetItemsTx(ctx context.Context, tx *sqlx.Tx, movementID uint64) ([]model.StockMovementItemEntity, error)
	CompleteMovementTx(ctx context.Context, tx *sqlx.Tx, id uint64, totalAmount float64, completedAt time.Time) (int64, error)
	CancelMovement(ctx context.Context, id uint64) (int64, error)
	GetByID(ctx context.Context, id uint64) (*model.StockMovementEntity, error)
	GetItems(ctx context.Context, movementID uint64) ([]model.StockMovementItemEntity, error)
	List(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovementEntity, int64, error)
}

func NewMovementRepository(conn *sqlx.DB) MovementRepository {
	return &SQL{conn: conn}
}

const movementColumns = "id, code, type, warehouse_id, to_warehouse_id, supplier_id, status, total_amount, note, created_by, created_at, completed_at"

// NextSequence atomically increments the per-(type, year) counter and returns the
// new value. LAST_INSERT_ID(expr) makes the increment readable without a second
// statement, so the counter stays correct across multiple server instances.
// A sequence consumed by a transaction that later rolls back leaves a gap in the
// numbering, which is acceptable for document codes.
func (r *SQL) NextSequence(ctx context.Context, movType string, year int) (int64, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO stock_movement_counter (type, year, seq) VALUES (?, ?, 1) ON DUPLICATE KEY UPDATE seq = LAST_INSERT_ID(seq + 1)",
		movType, year)
	if err != nil {
		return 0, err
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if seq == 0 {
		// First row: LAST_INSERT_ID reflects the auto-increment only when the
		// ON DUPLICATE branch ran, so a fresh (type, year) starts at 1.
		seq = 1
	}
	return seq, nil
}

func (r *SQL) InsertMovementTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovementEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO stock_movement (code, type, warehouse_id, to_warehouse_id, supplier_id, status, total_amount, note, created_by) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		m.Code, m.Type, m.WarehouseID, m.ToWarehouseID, m.SupplierID, m.Status, m.TotalAmount, m.Note, m.CreatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertMovementItemsTx(ctx context.Context, tx *sqlx.Tx, movementID uint64, items []model.MovementItemRequest) error {
	q := "INSERT INTO stock_movement_item (movement_id, variant_id, quantity, unit_price, notes) VALUES (?, ?, ?, ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, movementID, it.VariantID, it.Quantity, it.UnitPrice, it.Notes); err != nil {
			return err
		}
	}
	return nil
}

// GetMovementForUpdateTx locks the movement row for the duration of the completion
// transaction so two concurrent complete() calls serialize.
func (r *SQL) GetMovementForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.StockMovementEntity, error) {
	var m model.StockMovementEntity
	err := tx.QueryRowxContext(ctx,
		"SELECT "+movementColumns+" FROM stock_movement WHERE id = ? FOR UPDATE", id).StructScan(&m)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *SQL) GetItemsTx(ctx context.Context, tx *sqlx.Tx, movementID uint64) ([]model.StockMovementItemEntity, error) {
	rows, err := tx.QueryxContext(ctx,
		"SELECT id, movement_id, variant_id, quantity, unit_price, notes FROM stock_movement_item WHERE movement_id = ? ORDER BY id", movementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.StockMovementItemEntity, 0)
	for rows.Next() {
		var it model.StockMovementItemEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// CompleteMovementTx transitions PENDING -> COMPLETED and freezes the derived
// total. The status guard in the WHERE clause makes the transition a compare-and-set;
// the caller checks the affected row count.
func (r *SQL) CompleteMovementTx(ctx context.Context, tx *sqlx.Tx, id uint64, totalAmount float64, completedAt time.Time) (int64, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE stock_movement SET status = ?, total_amount = ?, completed_at = ? WHERE id = ? AND status = ?",
		constant.MovementStatusCompleted, totalAmount, completedAt, id, constant.MovementStatusPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CancelMovement is a single-statement compare-and-set; no ledger rows are touched.
func (r *SQL) CancelMovement(ctx context.Context, id uint64) (int64, error) {
	res, err := r.conn.ExecContext(ctx,
		"UPDATE stock_movement SET status = ? WHERE id = ? AND status = ?",
		constant.MovementStatusCancelled, id, constant.MovementStatusPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.StockMovementEntity, error) {
	var m model.StockMovementEntity
	err := r.conn.GetContext(ctx, &m, "SELECT "+movementColumns+" FROM stock_movement WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *SQL) GetItems(ctx context.Context, movementID uint64) ([]model.StockMovementItemEntity, error) {
	items := make([]model.StockMovementItemEntity, 0)
	err := r.conn.SelectContext(ctx, &items,
		"SELECT id, movement_id, variant_id, quantity, unit_price, notes FROM stock_movement_item WHERE movement_id = ? ORDER BY id", movementID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) List(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovementEntity, int64, error) {
	where := ""
	args := []interface{}{}
	add := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if filter.WarehouseID > 0 {
		add("(warehouse_id = ? OR to_warehouse_id = ?)")
		args = append(args, filter.WarehouseID, filter.WarehouseID)
	}
	if filter.Type != "" {
		add("type = ?")
		args = append(args, filter.Type)
	}
	if filter.Status > 0 {
		add("status = ?")
		args = append(args, filter.Status)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := "SELECT " + movementColumns + " FROM stock_movement" + where + " ORDER BY id DESC LIMIT ? OFFSET ?"
	items := make([]model.StockMovementEntity, 0)
	if err := r.conn.SelectContext(ctx, &items, query, append(args, filter.Limit, offset)...); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM stock_movement"+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
