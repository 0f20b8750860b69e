package warehouse

import (
	"context"
	"database/sql"

	"github.com/ecomstack/inventory-service/constant"
	"github.com/ecomstack/inventory-service/model"
	"github.com/ecomstack/inventory-service/repository/mysqlerr"
	warehouserepo "github.com/ecomstack/inventory-service/repository/warehouse"
	"github.com/ecomstack/inventory-service/utils/errors"
	"github.com/ecomstack/inventory-service/utils/logger"
	"go.uber.org/zap"
)

type WarehouseApp interface {
	ListWarehouses(ctx context.Context, activeOnly *bool) ([]model.WarehouseEntity, error)
	GetWarehouse(ctx context.Context, warehouseID uint64) (*model.WarehouseEntity, error)
	CreateWarehouse(ctx context.Context, req *model.CreateWarehouseRequest) (*model.WarehouseEntity, error)
	UpdateWarehouse(ctx context.Context, warehouseID uint64, req *model.UpdateWarehouseRequest) (*model.WarehouseEntity, error)
	DisableWarehouse(ctx context.Context, warehouseID uint64) error
}

type warehouseAppImpl struct {
	warehouseRepo warehouserepo.WarehouseRepository
}

func NewWarehouseApp(warehouseRepo warehouserepo.WarehouseRepository) WarehouseApp {
	return &warehouseAppImpl{warehouseRepo: warehouseRepo}
}

func (s *warehouseAppImpl) ListWarehouses(ctx context.Context, activeOnly *bool) ([]model.WarehouseEntity, error) {
	items, err := s.warehouseRepo.List(ctx, activeOnly)
	if err != nil {
		logger.Error("[ListWarehouses] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *warehouseAppImpl) GetWarehouse(ctx context.Context, warehouseID uint64) (*model.WarehouseEntity, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[GetWarehouse] get warehouse failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return warehouse, nil
}

func (s *warehouseAppImpl) CreateWarehouse(ctx context.Context, req *model.CreateWarehouseRequest) (*model.WarehouseEntity, error) {
	// Check code uniqueness
	existing, err := s.warehouseRepo.GetByCode(ctx, req.Code)
	if err != nil {
		logger.Error("[CreateWarehouse] get by code failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrDuplicateCode)
	}

	warehouse := &model.WarehouseEntity{
		Name:     req.Name,
		Code:     req.Code,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: true,
	}
	id, err := s.warehouseRepo.Insert(ctx, warehouse)
	if err != nil {
		// The code check above races against concurrent creates; the unique key
		// on code decides the loser.
		if mysqlerr.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateCode)
		}
		logger.Error("[CreateWarehouse] insert failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	warehouse.ID = id

	return warehouse, nil
}

func (s *warehouseAppImpl) UpdateWarehouse(ctx context.Context, warehouseID uint64, req *model.UpdateWarehouseRequest) (*model.WarehouseEntity, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[UpdateWarehouse] get warehouse failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	warehouse.Name = req.Name
	warehouse.Address = req.Address
	warehouse.Phone = req.Phone
	if err := s.warehouseRepo.Update(ctx, warehouse); err != nil {
		logger.Error("[UpdateWarehouse] update failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return warehouse, nil
}

// DisableWarehouse sets is_active=false. The row is kept so completed movements
// keep a valid warehouse reference.
func (s *warehouseAppImpl) DisableWarehouse(ctx context.Context, warehouseID uint64) error {
	err := s.warehouseRepo.SetActive(ctx, warehouseID, false)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[DisableWarehouse] update status failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
