package model

// InventoryQuantityResponse is the single (warehouse, variant) quantity read.
// A pair no movement ever touched reads as quantity 0.
type InventoryQuantityResponse struct {
	WarehouseID uint64 `json:"warehouse_id"`
	VariantID   uint64 `json:"variant_id"`
	Quantity    int64  `json:"quantity"`
}

// InventoryListItem is an inventory row joined with variant info for listing
type InventoryListItem struct {
	ID            uint64 `db:"id" json:"id"`
	WarehouseID   uint64 `db:"warehouse_id" json:"warehouse_id"`
	WarehouseName string `db:"warehouse_name" json:"warehouse_name"`
	VariantID     uint64 `db:"variant_id" json:"variant_id"`
	VariantSKU    string `db:"variant_sku" json:"variant_sku"`
	VariantName   string `db:"variant_name" json:"variant_name"`
	Quantity      int64  `db:"quantity" json:"quantity"`
	MinQuantity   int64  `db:"min_quantity" json:"min_quantity"`
	MaxQuantity   int64  `db:"max_quantity" json:"max_quantity"`
	Location      string `db:"location" json:"location"`
}

type InventoryFilter struct {
	WarehouseID  uint64
	Search       string // variant SKU or name
	LowStockOnly bool
	Page         int
	Limit        int
}

type InventoryListResponse struct {
	Items      []InventoryListItem `json:"items"`
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	PerPage    int                 `json:"per_page"`
}

type UpdateThresholdRequest struct {
	MinQuantity int64  `json:"min_quantity" validate:"gte=0"`
	MaxQuantity int64  `json:"max_quantity" validate:"gte=0"`
	Location    string `json:"location"`
}

// VariantQuantity is the minimal projection used for valuation
type VariantQuantity struct {
	VariantID uint64 `db:"variant_id"`
	Quantity  int64  `db:"quantity"`
}

// InventoryStats is recomputed on demand, never cached
type InventoryStats struct {
	TotalItems    int64   `json:"total_items"`
	LowStockCount int64   `json:"low_stock_count"`
	TotalValue    float64 `json:"total_value"`
}
