package inventory

import (
	"context"
	"database/sql"

	"github.com/ecomstack/inventory-service/constant"
	"github.com/ecomstack/inventory-service/model"
	"github.com/ecomstack/inventory-service/utils/errors"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type InventoryRepository interface {
	GetQuantity(ctx context.Context, warehouseID, variantID uint64) (int64, error)
	AdjustStockTx(ctx context.Context, tx *sqlx.Tx, warehouseID, variantID uint64, delta int64) (int64, error)
	List(ctx context.Context, filter *model.InventoryFilter) ([]model.InventoryListItem, int64, error)
	SumQuantity(ctx context.Context, warehouseID uint64) (int64, error)
	CountLowStock(ctx context.Context, warehouseID uint64) (int64, error)
	ListQuantities(ctx context.Context, warehouseID uint64) ([]model.VariantQuantity, error)
	UpdateThresholds(ctx context.Context, warehouseID, variantID uint64, req *model.UpdateThresholdRequest) error
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

// GetQuantity returns the current quantity for a (warehouse, variant) pair.
// A missing row reads as 0, not as an error.
func (r *SQL) GetQuantity(ctx context.Context, warehouseID, variantID uint64) (int64, error) {
	var qty int64
	err := r.conn.GetContext(ctx, &qty,
		"SELECT quantity FROM warehouse_inventory WHERE warehouse_id = ? AND variant_id = ?",
		warehouseID, variantID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return qty, nil
}

// AdjustStockTx is the single mutation primitive of the ledger. It must run inside
// a transaction: the row is created if absent, locked with SELECT FOR UPDATE, the
// delta validated against the non-negativity invariant and the new quantity written.
// Concurrent adjustments on the same pair serialize on the row lock; the second
// committer re-reads the post-commit quantity.
func (r *SQL) AdjustStockTx(ctx context.Context, tx *sqlx.Tx, warehouseID, variantID uint64, delta int64) (int64, error) {
	// Lazy-create the row so FOR UPDATE has something to lock. The no-op update
	// keeps an existing row untouched.
	_, err := tx.ExecContext(ctx,
		"INSERT INTO warehouse_inventory (warehouse_id, variant_id, quantity) VALUES (?, ?, 0) ON DUPLICATE KEY UPDATE warehouse_id = warehouse_id",
		warehouseID, variantID)
	if err != nil {
		return 0, err
	}

	var current int64
	err = tx.QueryRowxContext(ctx,
		"SELECT quantity FROM warehouse_inventory WHERE warehouse_id = ? AND variant_id = ? FOR UPDATE",
		warehouseID, variantID).Scan(&current)
	if err != nil {
		return 0, err
	}

	newQty := current + delta
	if newQty < 0 {
		return 0, errors.SetCustomError(constant.ErrInsufficientStock)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE warehouse_inventory SET quantity = ?, updated_at = NOW() WHERE warehouse_id = ? AND variant_id = ?",
		newQty, warehouseID, variantID); err != nil {
		return 0, err
	}
	return newQty, nil
}

const listInventoryBase = `SELECT wi.id, wi.warehouse_id, w.name as warehouse_name, wi.variant_id, pv.sku as variant_sku, pv.name as variant_name, wi.quantity, wi.min_quantity, wi.max_quantity, wi.location
FROM warehouse_inventory wi
JOIN warehouse w ON wi.warehouse_id = w.id
JOIN product_variant pv ON wi.variant_id = pv.id`

const countInventoryBase = `SELECT COUNT(*)
FROM warehouse_inventory wi
JOIN product_variant pv ON wi.variant_id = pv.id`

func inventoryConditions(filter *model.InventoryFilter) (string, []interface{}) {
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
		add("wi.warehouse_id = ?")
		args = append(args, filter.WarehouseID)
	}
	if filter.Search != "" {
		add("(pv.sku LIKE ? OR pv.name LIKE ?)")
		like := "%" + filter.Search + "%"
		args = append(args, like, like)
	}
	if filter.LowStockOnly {
		add("wi.quantity <= wi.min_quantity")
	}
	return where, args
}

func (r *SQL) List(ctx context.Context, filter *model.InventoryFilter) ([]model.InventoryListItem, int64, error) {
	where, args := inventoryConditions(filter)

	offset := (filter.Page - 1) * filter.Limit
	query := listInventoryBase + where + " ORDER BY wi.id LIMIT ? OFFSET ?"
	rows, err := r.conn.QueryxContext(ctx, query, append(args, filter.Limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.InventoryListItem, 0)
	for rows.Next() {
		var it model.InventoryListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, countInventoryBase+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *SQL) SumQuantity(ctx context.Context, warehouseID uint64) (int64, error) {
	q := "SELECT COALESCE(SUM(quantity),0) FROM warehouse_inventory"
	args := []interface{}{}
	if warehouseID > 0 {
		q += " WHERE warehouse_id = ?"
		args = append(args, warehouseID)
	}
	var total sql.NullInt64
	if err := r.conn.GetContext(ctx, &total, q, args...); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *SQL) CountLowStock(ctx context.Context, warehouseID uint64) (int64, error) {
	q := "SELECT COUNT(*) FROM warehouse_inventory WHERE quantity <= min_quantity"
	args := []interface{}{}
	if warehouseID > 0 {
		q += " AND warehouse_id = ?"
		args = append(args, warehouseID)
	}
	var count int64
	if err := r.conn.GetContext(ctx, &count, q, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// ListQuantities returns per-variant quantities for valuation. Quantities for the
// same variant across warehouses are pre-summed so the aggregator does one price
// lookup per variant.
func (r *SQL) ListQuantities(ctx context.Context, warehouseID uint64) ([]model.VariantQuantity, error) {
	q := "SELECT variant_id, SUM(quantity) as quantity FROM warehouse_inventory"
	args := []interface{}{}
	if warehouseID > 0 {
		q += " WHERE warehouse_id = ?"
		args = append(args, warehouseID)
	}
	q += " GROUP BY variant_id HAVING SUM(quantity) > 0"

	rows, err := r.conn.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.VariantQuantity, 0)
	for rows.Next() {
		var vq model.VariantQuantity
		if err := rows.StructScan(&vq); err != nil {
			return nil, err
		}
		items = append(items, vq)
	}
	return items, nil
}

func (r *SQL) UpdateThresholds(ctx context.Context, warehouseID, variantID uint64, req *model.UpdateThresholdRequest) error {
	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO warehouse_inventory (warehouse_id, variant_id, quantity, min_quantity, max_quantity, location)
		 VALUES (?, ?, 0, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE min_quantity = VALUES(min_quantity), max_quantity = VALUES(max_quantity), location = VALUES(location), updated_at = NOW()`,
		warehouseID, variantID, req.MinQuantity, req.MaxQuantity, req.Location)
	return err
}
