package supplier

import (
	"context"
	"database/sql"

	"github.com/ecomstack/inventory-service/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type SupplierRepository interface {
	List(ctx context.Context, activeOnly *bool) ([]model.SupplierEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.SupplierEntity, error)
	GetByCode(ctx context.Context, code string) (*model.SupplierEntity, error)
	Insert(ctx context.Context, s *model.SupplierEntity) (uint64, error)
	Update(ctx context.Context, s *model.SupplierEntity) error
	SetActive(ctx context.Context, id uint64, active bool) error
}

func NewSupplierRepository(conn *sqlx.DB) SupplierRepository {
	return &SQL{conn: conn}
}

const supplierColumns = "id, name, code, contact_name, phone, email, address, is_active, created_at, updated_at"

func (r *SQL) List(ctx context.Context, activeOnly *bool) ([]model.SupplierEntity, error) {
	q := "SELECT " + supplierColumns + " FROM supplier"
	args := []interface{}{}
	if activeOnly != nil {
		q += " WHERE is_active = ?"
		args = append(args, *activeOnly)
	}
	q += " ORDER BY id"

	items := make([]model.SupplierEntity, 0)
	if err := r.conn.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.SupplierEntity, error) {
	var s model.SupplierEntity
	err := r.conn.GetContext(ctx, &s, "SELECT "+supplierColumns+" FROM supplier WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQL) GetByCode(ctx context.Context, code string) (*model.SupplierEntity, error) {
	var s model.SupplierEntity
	err := r.conn.GetContext(ctx, &s, "SELECT "+supplierColumns+" FROM supplier WHERE code = ?", code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQL) Insert(ctx context.Context, s *model.SupplierEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO supplier (name, code, contact_name, phone, email, address, is_active) VALUES (?, ?, ?, ?, ?, ?, ?)",
		s.Name, s.Code, s.ContactName, s.Phone, s.Email, s.Address, s.IsActive)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Update(ctx context.Context, s *model.SupplierEntity) error {
	_, err := r.conn.ExecContext(ctx,
		"UPDATE supplier SET name = ?, contact_name = ?, phone = ?, email = ?, address = ?, updated_at = NOW() WHERE id = ?",
		s.Name, s.ContactName, s.Phone, s.Email, s.Address, s.ID)
	return err
}

// SetActive disables or re-enables a supplier, preserving referential history
// for existing import movements.
func (r *SQL) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.conn.ExecContext(ctx,
		"UPDATE supplier SET is_active = ?, updated_at = NOW() WHERE id = ?", active, id)
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
