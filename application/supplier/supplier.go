package supplier

import (
	"context"
	"database/sql"

	"github.com/ecomstack/inventory-service/constant"
	"github.com/ecomstack/inventory-service/model"
	"github.com/ecomstack/inventory-service/repository/mysqlerr"
	supplierrepo "github.com/ecomstack/inventory-service/repository/supplier"
	"github.com/ecomstack/inventory-service/utils/errors"
	"github.com/ecomstack/inventory-service/utils/logger"
	"go.uber.org/zap"
)

type SupplierApp interface {
	ListSuppliers(ctx context.Context, activeOnly *bool) ([]model.SupplierEntity, error)
	GetSupplier(ctx context.Context, supplierID uint64) (*model.SupplierEntity, error)
	CreateSupplier(ctx context.Context, req *model.CreateSupplierRequest) (*model.SupplierEntity, error)
	UpdateSupplier(ctx context.Context, supplierID uint64, req *model.UpdateSupplierRequest) (*model.SupplierEntity, error)
	DisableSupplier(ctx context.Context, supplierID uint64) error
}

type supplierAppImpl struct {
	supplierRepo supplierrepo.SupplierRepository
}

func NewSupplierApp(supplierRepo supplierrepo.SupplierRepository) SupplierApp {
	return &supplierAppImpl{supplierRepo: supplierRepo}
}

func (s *supplierAppImpl) ListSuppliers(ctx context.Context, activeOnly *bool) ([]model.SupplierEntity, error) {
	items, err := s.supplierRepo.List(ctx, activeOnly)
	if err != nil {
		logger.Error("[ListSuppliers] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *supplierAppImpl) GetSupplier(ctx context.Context, supplierID uint64) (*model.SupplierEntity, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		logger.Error("[GetSupplier] get supplier failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if supplier == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return supplier, nil
}

func (s *supplierAppImpl) CreateSupplier(ctx context.Context, req *model.CreateSupplierRequest) (*model.SupplierEntity, error) {
	existing, err := s.supplierRepo.GetByCode(ctx, req.Code)
	if err != nil {
		logger.Error("[CreateSupplier] get by code failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrDuplicateCode)
	}

	supplier := &model.SupplierEntity{
		Name:        req.Name,
		Code:        req.Code,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		IsActive:    true,
	}
	id, err := s.supplierRepo.Insert(ctx, supplier)
	if err != nil {
		// The code check above races against concurrent creates; the unique key
		// on code decides the loser.
		if mysqlerr.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateCode)
		}
		logger.Error("[CreateSupplier] insert failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	supplier.ID = id

	return supplier, nil
}

func (s *supplierAppImpl) UpdateSupplier(ctx context.Context, supplierID uint64, req *model.UpdateSupplierRequest) (*model.SupplierEntity, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		logger.Error("[UpdateSupplier] get supplier failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if supplier == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	supplier.Name = req.Name
	supplier.ContactName = req.ContactName
	supplier.Phone = req.Phone
	supplier.Email = req.Email
	supplier.Address = req.Address
	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		logger.Error("[UpdateSupplier] update failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return supplier, nil
}

// DisableSupplier sets is_active=false; import movements keep their supplier reference.
func (s *supplierAppImpl) DisableSupplier(ctx context.Context, supplierID uint64) error {
	err := s.supplierRepo.SetActive(ctx, supplierID, false)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[DisableSupplier] update status failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
