package warehouse

import (
	"context"
	"database/sql"

	"github.com/ecomstack/inventory-service/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type WarehouseRepository interface {
	List(ctx context.Context, activeOnly *bool) ([]model.WarehouseEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.WarehouseEntity, error)
	GetByCode(ctx context.Context, code string) (*model.WarehouseEntity, error)
	Insert(ctx context.Context, w *model.WarehouseEntity) (uint64, error)
	Update(ctx context.Context, w *model.WarehouseEntity) error
	SetActive(ctx context.Context, id uint64, active bool) error
}

func NewWarehouseRepository(conn *sqlx.DB) WarehouseRepository {
	return &SQL{conn: conn}
}

const warehouseColumns = "id, name, code, address, phone, is_active, created_at, updated_at"

func (r *SQL) List(ctx context.Context, activeOnly *bool) ([]model.WarehouseEntity, error) {
	q := "SELECT " + warehouseColumns + " FROM warehouse"
	args := []interface{}{}
	if activeOnly != nil {
		q += " WHERE is_active = ?"
		args = append(args, *activeOnly)
	}
	q += " ORDER BY id"

	items := make([]model.WarehouseEntity, 0)
	if err := r.conn.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.WarehouseEntity, error) {
	var w model.WarehouseEntity
	err := r.conn.GetContext(ctx, &w, "SELECT "+warehouseColumns+" FROM warehouse WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *SQL) GetByCode(ctx context.Context, code string) (*model.WarehouseEntity, error) {
	var w model.WarehouseEntity
	err := r.conn.GetContext(ctx, &w, "SELECT "+warehouseColumns+" FROM warehouse WHERE code = ?", code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *SQL) Insert(ctx context.Context, w *model.WarehouseEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO warehouse (name, code, address, phone, is_active) VALUES (?, ?, ?, ?, ?)",
		w.Name, w.Code, w.Address, w.Phone, w.IsActive)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Update(ctx context.Context, w *model.WarehouseEntity) error {
	_, err := r.conn.ExecContext(ctx,
		"UPDATE warehouse SET name = ?, address = ?, phone = ?, updated_at = NOW() WHERE id = ?",
		w.Name, w.Address, w.Phone, w.ID)
	return err
}

// SetActive disables or re-enables a warehouse. Warehouses are never hard-deleted
// because completed movements reference them historically.
func (r *SQL) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.conn.ExecContext(ctx,
		"UPDATE warehouse SET is_active = ?, updated_at = NOW() WHERE id = ?", active, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
