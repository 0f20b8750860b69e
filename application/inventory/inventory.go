package inventory

import (
	"context"

	"github.com/ecomstack/inventory-service/constant"
	"github.com/ecomstack/inventory-service/model"
	inventoryrepo "github.com/ecomstack/inventory-service/repository/inventory"
	warehouserepo "github.com/ecomstack/inventory-service/repository/warehouse"
	"github.com/ecomstack/inventory-service/thirdparty/catalog"
	"github.com/ecomstack/inventory-service/utils/errors"
	"github.com/ecomstack/inventory-service/utils/logger"
	"go.uber.org/zap"
)

type InventoryApp interface {
	ListInventory(ctx context.Context, filter *model.InventoryFilter) (*model.InventoryListResponse, error)
	GetQuantity(ctx context.Context, warehouseID, variantID uint64) (*model.InventoryQuantityResponse, error)
	GetStats(ctx context.Context, warehouseID uint64) (*model.InventoryStats, error)
	UpdateThresholds(ctx context.Context, warehouseID, variantID uint64, req *model.UpdateThresholdRequest) error
	LowStockCheck(ctx context.Context, warehouseIDs []uint64) (int64, error)
}

type inventoryAppImpl struct {
	inventoryRepo inventoryrepo.InventoryRepository
	warehouseRepo warehouserepo.WarehouseRepository
	catalogClient catalog.Client
}

func NewInventoryApp(inventoryRepo inventoryrepo.InventoryRepository, warehouseRepo warehouserepo.WarehouseRepository, catalogClient catalog.Client) InventoryApp {
	return &inventoryAppImpl{
		inventoryRepo: inventoryRepo,
		warehouseRepo: warehouseRepo,
		catalogClient: catalogClient,
	}
}

func (s *inventoryAppImpl) ListInventory(ctx context.Context, filter *model.InventoryFilter) (*model.InventoryListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}

	items, total, err := s.inventoryRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListInventory] error inventoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.InventoryListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.Limit,
	}, nil
}

// GetQuantity reads one (warehouse, variant) ledger quantity. The warehouse must
// exist; an untouched pair reads as 0, matching the ledger's lazy row creation.
func (s *inventoryAppImpl) GetQuantity(ctx context.Context, warehouseID, variantID uint64) (*model.InventoryQuantityResponse, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[GetQuantity] get warehouse failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	qty, err := s.inventoryRepo.GetQuantity(ctx, warehouseID, variantID)
	if err != nil {
		logger.Error("[GetQuantity] get quantity failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.InventoryQuantityResponse{
		WarehouseID: warehouseID,
		VariantID:   variantID,
		Quantity:    qty,
	}, nil
}

// GetStats recomputes the aggregates from ledger state on every call. Nothing here
// is cached or stored; staleness would be worse than the extra queries. Price
// lookups go to the catalog collaborator and never run inside a ledger transaction.
func (s *inventoryAppImpl) GetStats(ctx context.Context, warehouseID uint64) (*model.InventoryStats, error) {
	totalItems, err := s.inventoryRepo.SumQuantity(ctx, warehouseID)
	if err != nil {
		logger.Error("[GetStats] sum quantity failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	lowStockCount, err := s.inventoryRepo.CountLowStock(ctx, warehouseID)
	if err != nil {
		logger.Error("[GetStats] count low stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	quantities, err := s.inventoryRepo.ListQuantities(ctx, warehouseID)
	if err != nil {
		logger.Error("[GetStats] list quantities failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var totalValue float64
	for _, vq := range quantities {
		price, err := s.catalogClient.GetVariantPrice(ctx, vq.VariantID)
		if err != nil {
			logger.Error("[GetStats] get variant price failed", zap.Uint64("variant_id", vq.VariantID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		totalValue += float64(vq.Quantity) * price
	}

	return &model.InventoryStats{
		TotalItems:    totalItems,
		LowStockCount: lowStockCount,
		TotalValue:    totalValue,
	}, nil
}

func (s *inventoryAppImpl) UpdateThresholds(ctx context.Context, warehouseID, variantID uint64, req *model.UpdateThresholdRequest) error {
	warehouse, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[UpdateThresholds] get warehouse failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.inventoryRepo.UpdateThresholds(ctx, warehouseID, variantID, req); err != nil {
		logger.Error("[UpdateThresholds] update failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// LowStockCheck logs every row at or below its minimum in the given warehouses and
// returns how many there are. Triggered by the movement-completed consumer.
func (s *inventoryAppImpl) LowStockCheck(ctx context.Context, warehouseIDs []uint64) (int64, error) {
	var total int64
	for _, warehouseID := range warehouseIDs {
		count, err := s.inventoryRepo.CountLowStock(ctx, warehouseID)
		if err != nil {
			logger.Error("[LowStockCheck] count low stock failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
		if count > 0 {
			logger.Warn("low stock detected",
				zap.Uint64("warehouse_id", warehouseID),
				zap.Int64("low_stock_rows", count),
			)
		}
		total += count
	}
	return total, nil
}
