package model

import (
	"time"

	"github.com/ecomstack/inventory-service/constant"
)

// StockMovementEntity represents the stock_movement table entity.
// TotalAmount is derived at completion time and frozen afterwards.
type StockMovementEntity struct {
	ID            uint64                  `db:"id" json:"id"`
	Code          string                  `db:"code" json:"code"`
	Type          constant.MovementType   `db:"type" json:"type"`
	WarehouseID   uint64                  `db:"warehouse_id" json:"warehouse_id"`
	ToWarehouseID *uint64                 `db:"to_warehouse_id" json:"to_warehouse_id,omitempty"`
	SupplierID    *uint64                 `db:"supplier_id" json:"supplier_id,omitempty"`
	Status        constant.MovementStatus `db:"status" json:"status"`
	TotalAmount   float64                 `db:"total_amount" json:"total_amount"`
	Note          string                  `db:"note" json:"note"`
	CreatedBy     uint64                  `db:"created_by" json:"created_by"`
	CreatedAt     time.Time               `db:"created_at" json:"created_at"`
	CompletedAt   *time.Time              `db:"completed_at" json:"completed_at,omitempty"`
}

// StockMovementItemEntity represents the stock_movement_item table entity
type StockMovementItemEntity struct {
	ID         uint64   `db:"id" json:"id"`
	MovementID uint64   `db:"movement_id" json:"movement_id"`
	VariantID  uint64   `db:"variant_id" json:"variant_id"`
	Quantity   int64    `db:"quantity" json:"quantity"`
	UnitPrice  *float64 `db:"unit_price" json:"unit_price,omitempty"`
	Notes      string   `db:"notes" json:"notes"`
}

type MovementItemRequest struct {
	VariantID uint64   `json:"variant_id" validate:"required"`
	Quantity  int64    `json:"quantity" validate:"required,gt=0"`
	UnitPrice *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	Notes     string   `json:"notes"`
}

type CreateMovementRequest struct {
	Type          string                `json:"type" validate:"required,oneof=IMPORT EXPORT TRANSFER_OUT"`
	WarehouseID   uint64                `json:"warehouse_id" validate:"required"`
	ToWarehouseID *uint64               `json:"to_warehouse_id"`
	SupplierID    *uint64               `json:"supplier_id"`
	Note          string                `json:"note"`
	Items         []MovementItemRequest `json:"items" validate:"required,min=1,dive"`
}

type MovementFilter struct {
	WarehouseID uint64
	Type        string
	Status      int
	Page        int
	Limit       int
}

type MovementListResponse struct {
	Items      []StockMovementEntity `json:"items"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"per_page"`
}

type MovementDetail struct {
	StockMovementEntity
	Items []StockMovementItemEntity `json:"items"`
}
