package movement_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	appmovement "github.com/ecomstack/inventory-service/application/movement"
	"github.com/ecomstack/inventory-service/cmd/config"
	"github.com/ecomstack/inventory-service/constant"
	inventorymocks "github.com/ecomstack/inventory-service/mocks/repository/inventory"
	movementmocks "github.com/ecomstack/inventory-service/mocks/repository/movement"
	suppliermocks "github.com/ecomstack/inventory-service/mocks/repository/supplier"
	txmocks "github.com/ecomstack/inventory-service/mocks/repository/tx"
	warehousemocks "github.com/ecomstack/inventory-service/mocks/repository/warehouse"
	"github.com/ecomstack/inventory-service/model"
	cerr "github.com/ecomstack/inventory-service/utils/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// Note: movement.go checks if publisher is nil before publishing the
// completion event, so tests pass a nil publisher.

func uint64Ptr(v uint64) *uint64    { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestMovementApp_CreateMovement(t *testing.T) {
	year := time.Now().Year()

	type fields struct {
		config        *config.Config
		txRepo        *txmocks.TxRepository
		movementRepo  *movementmocks.MovementRepository
		inventoryRepo *inventorymocks.InventoryRepository
		warehouseRepo *warehousemocks.WarehouseRepository
		supplierRepo  *suppliermocks.SupplierRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		req    *model.CreateMovementRequest
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config:        &config.Config{Movement: config.MovementConfig{CodeMaxRetries: 3}},
			txRepo:        txmocks.NewTxRepository(t),
			movementRepo:  movementmocks.NewMovementRepository(t),
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
			warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			supplierRepo:  suppliermocks.NewSupplierRepository(t),
		}
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		wantCode string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: import movement",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.CreateMovementRequest{
					Type:        string(constant.MovementTypeImport),
					WarehouseID: 1,
					SupplierID:  uint64Ptr(2),
					Items: []model.MovementItemRequest{
						{VariantID: 10, Quantity: 50, UnitPrice: float64Ptr(100000)},
					},
				},
			},
			mockCall: func(f fields) {
				f.supplierRepo.On("GetByID", mock.Anything, uint64(2)).Return(&model.SupplierEntity{ID: 2}, nil).Once()
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.WarehouseEntity{ID: 1}, nil).Once()
				f.movementRepo.On("NextSequence", mock.Anything, "IMPORT", year).Return(int64(7), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.movementRepo.On("InsertMovementTx", mock.Anything, tx, mock.MatchedBy(func(m *model.StockMovementEntity) bool {
					return m.Status == constant.MovementStatusPending && m.CreatedBy == 1
				})).Return(uint64(5), nil).Once()
				f.movementRepo.On("InsertMovementItemsTx", mock.Anything, tx, uint64(5), mock.Anything).Return(nil).Once()
			},
			wantCode: fmt.Sprintf("PN-%d-0007", year),
			wantErr:  false,
		},
		{
			name: "error: empty items",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.CreateMovementRequest{
					Type:        string(constant.MovementTypeExport),
					WarehouseID: 1,
					Items:       []model.MovementItemRequest{},
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: import without supplier",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.CreateMovementRequest{
					Type:        string(constant.MovementTypeImport),
					WarehouseID: 1,
					Items: []model.MovementItemRequest{
						{VariantID: 10, Quantity: 5},
					},
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: import supplier not found",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.CreateMovementRequest{
					Type:        string(constant.MovementTypeImport),
					WarehouseID: 1,
					SupplierID:  uint64Ptr(99),
					Items: []model.MovementItemRequest{
						{VariantID: 10, Quantity: 5},
					},
				},
			},
			mockCall: func(f fields) {
				f.supplierRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: transfer to same warehouse",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.CreateMovementRequest{
					Type:          string(constant.MovementTypeTransferOut),
					WarehouseID:   1,
					ToWarehouseID: uint64Ptr(1),
					Items: []model.MovementItemRequest{
						{VariantID: 10, Quantity: 5},
					},
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "success: code collision retried with fresh sequence",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.CreateMovementRequest{
					Type:        string(constant.MovementTypeExport),
					WarehouseID: 1,
					Items: []model.MovementItemRequest{
						{VariantID: 10, Quantity: 5},
					},
				},
			},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.WarehouseEntity{ID: 1}, nil).Once()
				f.movementRepo.On("NextSequence", mock.Anything, "EXPORT", year).Return(int64(3), nil).Once()
				f.movementRepo.On("NextSequence", mock.Anything, "EXPORT", year).Return(int64(4), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Twice()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				dupErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
				f.movementRepo.On("InsertMovementTx", mock.Anything, tx, mock.MatchedBy(func(m *model.StockMovementEntity) bool {
					return m.Code == fmt.Sprintf("PX-%d-0003", year)
				})).Return(uint64(0), dupErr).Once()
				f.movementRepo.On("InsertMovementTx", mock.Anything, tx, mock.MatchedBy(func(m *model.StockMovementEntity) bool {
					return m.Code == fmt.Sprintf("PX-%d-0004", year)
				})).Return(uint64(6), nil).Once()
				f.movementRepo.On("InsertMovementItemsTx", mock.Anything, tx, uint64(6), mock.Anything).Return(nil).Once()
			},
			wantCode: fmt.Sprintf("PX-%d-0004", year),
			wantErr:  false,
		},
		{
			name: "error: retries exhausted on persistent collision",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.CreateMovementRequest{
					Type:        string(constant.MovementTypeExport),
					WarehouseID: 1,
					Items: []model.MovementItemRequest{
						{VariantID: 10, Quantity: 5},
					},
				},
			},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.WarehouseEntity{ID: 1}, nil).Once()
				f.movementRepo.On("NextSequence", mock.Anything, "EXPORT", year).Return(int64(3), nil).Times(3)

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Times(3)
				f.txRepo.On("RollbackTx", tx).Return(nil).Times(3)

				dupErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
				f.movementRepo.On("InsertMovementTx", mock.Anything, tx, mock.Anything).Return(uint64(0), dupErr).Times(3)
			},
			wantErr: true,
			errCode: constant.ErrConcurrencyConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appmovement.NewMovementApp(f.config, f.txRepo, f.movementRepo, f.inventoryRepo, f.warehouseRepo, f.supplierRepo, nil)

			got, err := app.CreateMovement(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateMovement() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Code != tt.wantCode {
				t.Fatalf("CreateMovement() code = %s, want %s", got.Code, tt.wantCode)
			}
			if got.Status != constant.MovementStatusPending {
				t.Fatalf("CreateMovement() status = %d, want pending", got.Status)
			}
		})
	}
}

func TestMovementApp_CompleteMovement(t *testing.T) {
	type fields struct {
		config        *config.Config
		txRepo        *txmocks.TxRepository
		movementRepo  *movementmocks.MovementRepository
		inventoryRepo *inventorymocks.InventoryRepository
		warehouseRepo *warehousemocks.WarehouseRepository
		supplierRepo  *suppliermocks.SupplierRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config:        &config.Config{},
			txRepo:        txmocks.NewTxRepository(t),
			movementRepo:  movementmocks.NewMovementRepository(t),
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
			warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			supplierRepo:  suppliermocks.NewSupplierRepository(t),
		}
	}
	tests := []struct {
		name       string
		movementID uint64
		mockCall   func(f fields)
		wantTotal  float64
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success: import posts positive deltas and derives total",
			movementID: 5,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.movementRepo.On("GetMovementForUpdateTx", mock.Anything, tx, uint64(5)).Return(&model.StockMovementEntity{
					ID:          5,
					Code:        "PN-2026-0007",
					Type:        constant.MovementTypeImport,
					WarehouseID: 1,
					Status:      constant.MovementStatusPending,
				}, nil).Once()
				f.movementRepo.On("GetItemsTx", mock.Anything, tx, uint64(5)).Return([]model.StockMovementItemEntity{
					{ID: 1, MovementID: 5, VariantID: 10, Quantity: 50, UnitPrice: float64Ptr(100000)},
				}, nil).Once()

				f.inventoryRepo.On("AdjustStockTx", mock.Anything, tx, uint64(1), uint64(10), int64(50)).Return(int64(50), nil).Once()

				f.movementRepo.On("CompleteMovementTx", mock.Anything, tx, uint64(5), float64(5000000), mock.Anything).Return(int64(1), nil).Once()
			},
			wantTotal: 5000000,
			wantErr:   false,
		},
		{
			name:       "success: transfer debits source and credits destination",
			movementID: 6,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.movementRepo.On("GetMovementForUpdateTx", mock.Anything, tx, uint64(6)).Return(&model.StockMovementEntity{
					ID:            6,
					Code:          "PCK-2026-0001",
					Type:          constant.MovementTypeTransferOut,
					WarehouseID:   1,
					ToWarehouseID: uint64Ptr(2),
					Status:        constant.MovementStatusPending,
				}, nil).Once()
				f.movementRepo.On("GetItemsTx", mock.Anything, tx, uint64(6)).Return([]model.StockMovementItemEntity{
					{ID: 1, MovementID: 6, VariantID: 10, Quantity: 20},
				}, nil).Once()

				f.inventoryRepo.On("AdjustStockTx", mock.Anything, tx, uint64(1), uint64(10), int64(-20)).Return(int64(30), nil).Once()
				f.inventoryRepo.On("AdjustStockTx", mock.Anything, tx, uint64(2), uint64(10), int64(20)).Return(int64(20), nil).Once()

				f.movementRepo.On("CompleteMovementTx", mock.Anything, tx, uint64(6), float64(0), mock.Anything).Return(int64(1), nil).Once()
			},
			wantTotal: 0,
			wantErr:   false,
		},
		{
			name:       "error: movement not found",
			movementID: 99,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.movementRepo.On("GetMovementForUpdateTx", mock.Anything, tx, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:       "error: already completed",
			movementID: 5,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.movementRepo.On("GetMovementForUpdateTx", mock.Anything, tx, uint64(5)).Return(&model.StockMovementEntity{
					ID:     5,
					Status: constant.MovementStatusCompleted,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidMovementStatus,
		},
		{
			name:       "error: insufficient stock rolls back, movement stays pending",
			movementID: 7,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.movementRepo.On("GetMovementForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.StockMovementEntity{
					ID:          7,
					Type:        constant.MovementTypeExport,
					WarehouseID: 1,
					Status:      constant.MovementStatusPending,
				}, nil).Once()
				f.movementRepo.On("GetItemsTx", mock.Anything, tx, uint64(7)).Return([]model.StockMovementItemEntity{
					{ID: 1, MovementID: 7, VariantID: 10, Quantity: 100},
				}, nil).Once()

				insufficientStockErr := cerr.SetCustomError(constant.ErrInsufficientStock)
				f.inventoryRepo.On("AdjustStockTx", mock.Anything, tx, uint64(1), uint64(10), int64(-100)).Return(int64(0), insufficientStockErr).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name:       "error: status CAS lost the race",
			movementID: 8,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.movementRepo.On("GetMovementForUpdateTx", mock.Anything, tx, uint64(8)).Return(&model.StockMovementEntity{
					ID:          8,
					Type:        constant.MovementTypeImport,
					WarehouseID: 1,
					Status:      constant.MovementStatusPending,
				}, nil).Once()
				f.movementRepo.On("GetItemsTx", mock.Anything, tx, uint64(8)).Return([]model.StockMovementItemEntity{
					{ID: 1, MovementID: 8, VariantID: 10, Quantity: 5},
				}, nil).Once()

				f.inventoryRepo.On("AdjustStockTx", mock.Anything, tx, uint64(1), uint64(10), int64(5)).Return(int64(5), nil).Once()

				f.movementRepo.On("CompleteMovementTx", mock.Anything, tx, uint64(8), float64(0), mock.Anything).Return(int64(0), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidMovementStatus,
		},
		{
			name:       "error: row lock wait timeout maps to concurrency conflict",
			movementID: 9,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.movementRepo.On("GetMovementForUpdateTx", mock.Anything, tx, uint64(9)).Return(&model.StockMovementEntity{
					ID:          9,
					Type:        constant.MovementTypeImport,
					WarehouseID: 1,
					Status:      constant.MovementStatusPending,
				}, nil).Once()
				f.movementRepo.On("GetItemsTx", mock.Anything, tx, uint64(9)).Return([]model.StockMovementItemEntity{
					{ID: 1, MovementID: 9, VariantID: 10, Quantity: 5},
				}, nil).Once()

				lockErr := &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded; try restarting transaction"}
				f.inventoryRepo.On("AdjustStockTx", mock.Anything, tx, uint64(1), uint64(10), int64(5)).Return(int64(0), lockErr).Once()
			},
			wantErr: true,
			errCode: constant.ErrConcurrencyConflict,
		},
		{
			name:       "error: deadlock on movement row maps to concurrency conflict",
			movementID: 10,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				deadlockErr := &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock; try restarting transaction"}
				f.movementRepo.On("GetMovementForUpdateTx", mock.Anything, tx, uint64(10)).Return(nil, deadlockErr).Once()
			},
			wantErr: true,
			errCode: constant.ErrConcurrencyConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appmovement.NewMovementApp(f.config, f.txRepo, f.movementRepo, f.inventoryRepo, f.warehouseRepo, f.supplierRepo, nil)

			got, err := app.CompleteMovement(context.Background(), tt.movementID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CompleteMovement() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Status != constant.MovementStatusCompleted {
				t.Fatalf("CompleteMovement() status = %d, want completed", got.Status)
			}
			if got.TotalAmount != tt.wantTotal {
				t.Fatalf("CompleteMovement() total = %v, want %v", got.TotalAmount, tt.wantTotal)
			}
			if got.CompletedAt == nil {
				t.Fatal("CompleteMovement() CompletedAt should not be nil")
			}
		})
	}
}

func TestMovementApp_CancelMovement(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		movementRepo  *movementmocks.MovementRepository
		inventoryRepo *inventorymocks.InventoryRepository
		warehouseRepo *warehousemocks.WarehouseRepository
		supplierRepo  *suppliermocks.SupplierRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:        txmocks.NewTxRepository(t),
			movementRepo:  movementmocks.NewMovementRepository(t),
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
			warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			supplierRepo:  suppliermocks.NewSupplierRepository(t),
		}
	}
	tests := []struct {
		name       string
		movementID uint64
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success: cancel pending movement",
			movementID: 5,
			mockCall: func(f fields) {
				f.movementRepo.On("CancelMovement", mock.Anything, uint64(5)).Return(int64(1), nil).Once()
				f.movementRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.StockMovementEntity{
					ID:     5,
					Status: constant.MovementStatusCancelled,
				}, nil).Once()
			},
			wantErr: false,
		},
		{
			name:       "error: movement not found",
			movementID: 99,
			mockCall: func(f fields) {
				f.movementRepo.On("CancelMovement", mock.Anything, uint64(99)).Return(int64(0), nil).Once()
				f.movementRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:       "error: movement already completed",
			movementID: 5,
			mockCall: func(f fields) {
				f.movementRepo.On("CancelMovement", mock.Anything, uint64(5)).Return(int64(0), nil).Once()
				f.movementRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.StockMovementEntity{
					ID:     5,
					Status: constant.MovementStatusCompleted,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidMovementStatus,
		},
		{
			name:       "error: lock contention on cancel maps to concurrency conflict",
			movementID: 6,
			mockCall: func(f fields) {
				deadlockErr := &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock; try restarting transaction"}
				f.movementRepo.On("CancelMovement", mock.Anything, uint64(6)).Return(int64(0), deadlockErr).Once()
			},
			wantErr: true,
			errCode: constant.ErrConcurrencyConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appmovement.NewMovementApp(&config.Config{}, f.txRepo, f.movementRepo, f.inventoryRepo, f.warehouseRepo, f.supplierRepo, nil)

			got, err := app.CancelMovement(context.Background(), tt.movementID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CancelMovement() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Status != constant.MovementStatusCancelled {
				t.Fatalf("CancelMovement() status = %d, want cancelled", got.Status)
			}
		})
	}
}
