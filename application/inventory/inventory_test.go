package inventory_test

import (
	"context"
	"errors"
	"testing"

	appinventory "github.com/ecomstack/inventory-service/application/inventory"
	"github.com/ecomstack/inventory-service/constant"
	inventorymocks "github.com/ecomstack/inventory-service/mocks/repository/inventory"
	warehousemocks "github.com/ecomstack/inventory-service/mocks/repository/warehouse"
	catalogmocks "github.com/ecomstack/inventory-service/mocks/thirdparty/catalog"
	"github.com/ecomstack/inventory-service/model"
	cerr "github.com/ecomstack/inventory-service/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestInventoryApp_ListInventory(t *testing.T) {
	type fields struct {
		inventoryRepo *inventorymocks.InventoryRepository
		warehouseRepo *warehousemocks.WarehouseRepository
		catalogClient *catalogmocks.Client
	}
	newFields := func(t *testing.T) fields {
		return fields{
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
			warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			catalogClient: catalogmocks.NewClient(t),
		}
	}
	tests := []struct {
		name     string
		filter   *model.InventoryFilter
		mockCall func(f fields)
		wantPage int
		wantPer  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: defaults applied for page and limit",
			filter: &model.InventoryFilter{},
			mockCall: func(f fields) {
				f.inventoryRepo.On("List", mock.Anything, mock.MatchedBy(func(filter *model.InventoryFilter) bool {
					return filter.Page == 1 && filter.Limit == 10
				})).Return([]model.InventoryListItem{
					{WarehouseID: 1, VariantID: 10, Quantity: 5},
				}, int64(1), nil).Once()
			},
			wantPage: 1,
			wantPer:  10,
			wantErr:  false,
		},
		{
			name:   "error: repository failure",
			filter: &model.InventoryFilter{Page: 2, Limit: 20},
			mockCall: func(f fields) {
				f.inventoryRepo.On("List", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appinventory.NewInventoryApp(f.inventoryRepo, f.warehouseRepo, f.catalogClient)

			got, err := app.ListInventory(context.Background(), tt.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListInventory() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Page != tt.wantPage || got.PerPage != tt.wantPer {
				t.Fatalf("ListInventory() page = %d per_page = %d, want %d %d", got.Page, got.PerPage, tt.wantPage, tt.wantPer)
			}
		})
	}
}

func TestInventoryApp_GetQuantity(t *testing.T) {
	type fields struct {
		inventoryRepo *inventorymocks.InventoryRepository
		warehouseRepo *warehousemocks.WarehouseRepository
		catalogClient *catalogmocks.Client
	}
	newFields := func(t *testing.T) fields {
		return fields{
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
			warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			catalogClient: catalogmocks.NewClient(t),
		}
	}
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantQty  int64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: existing ledger row",
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.WarehouseEntity{ID: 1}, nil).Once()
				f.inventoryRepo.On("GetQuantity", mock.Anything, uint64(1), uint64(10)).Return(int64(42), nil).Once()
			},
			wantQty: 42,
			wantErr: false,
		},
		{
			name: "success: untouched pair reads as zero",
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.WarehouseEntity{ID: 1}, nil).Once()
				f.inventoryRepo.On("GetQuantity", mock.Anything, uint64(1), uint64(10)).Return(int64(0), nil).Once()
			},
			wantQty: 0,
			wantErr: false,
		},
		{
			name: "error: warehouse not found",
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository failure",
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.WarehouseEntity{ID: 1}, nil).Once()
				f.inventoryRepo.On("GetQuantity", mock.Anything, uint64(1), uint64(10)).Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appinventory.NewInventoryApp(f.inventoryRepo, f.warehouseRepo, f.catalogClient)

			got, err := app.GetQuantity(context.Background(), 1, 10)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetQuantity() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.WarehouseID != 1 || got.VariantID != 10 {
				t.Fatalf("GetQuantity() pair = (%d, %d), want (1, 10)", got.WarehouseID, got.VariantID)
			}
			if got.Quantity != tt.wantQty {
				t.Fatalf("GetQuantity() quantity = %d, want %d", got.Quantity, tt.wantQty)
			}
		})
	}
}

func TestInventoryApp_GetStats(t *testing.T) {
	type fields struct {
		inventoryRepo *inventorymocks.InventoryRepository
		warehouseRepo *warehousemocks.WarehouseRepository
		catalogClient *catalogmocks.Client
	}
	newFields := func(t *testing.T) fields {
		return fields{
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
			warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			catalogClient: catalogmocks.NewClient(t),
		}
	}
	tests := []struct {
		name        string
		warehouseID uint64
		mockCall    func(f fields)
		want        *model.InventoryStats
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name:        "success: total value derived from quantities and prices",
			warehouseID: 1,
			mockCall: func(f fields) {
				f.inventoryRepo.On("SumQuantity", mock.Anything, uint64(1)).Return(int64(70), nil).Once()
				f.inventoryRepo.On("CountLowStock", mock.Anything, uint64(1)).Return(int64(2), nil).Once()
				f.inventoryRepo.On("ListQuantities", mock.Anything, uint64(1)).Return([]model.VariantQuantity{
					{VariantID: 10, Quantity: 50},
					{VariantID: 11, Quantity: 20},
				}, nil).Once()
				f.catalogClient.On("GetVariantPrice", mock.Anything, uint64(10)).Return(float64(100000), nil).Once()
				f.catalogClient.On("GetVariantPrice", mock.Anything, uint64(11)).Return(float64(25000), nil).Once()
			},
			want: &model.InventoryStats{
				TotalItems:    70,
				LowStockCount: 2,
				TotalValue:    5500000,
			},
			wantErr: false,
		},
		{
			name:        "error: price lookup failure",
			warehouseID: 1,
			mockCall: func(f fields) {
				f.inventoryRepo.On("SumQuantity", mock.Anything, uint64(1)).Return(int64(70), nil).Once()
				f.inventoryRepo.On("CountLowStock", mock.Anything, uint64(1)).Return(int64(2), nil).Once()
				f.inventoryRepo.On("ListQuantities", mock.Anything, uint64(1)).Return([]model.VariantQuantity{
					{VariantID: 10, Quantity: 50},
				}, nil).Once()
				f.catalogClient.On("GetVariantPrice", mock.Anything, uint64(10)).Return(float64(0), errors.New("catalog unavailable")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appinventory.NewInventoryApp(f.inventoryRepo, f.warehouseRepo, f.catalogClient)

			got, err := app.GetStats(context.Background(), tt.warehouseID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetStats() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.TotalItems != tt.want.TotalItems {
				t.Fatalf("GetStats() total items = %d, want %d", got.TotalItems, tt.want.TotalItems)
			}
			if got.LowStockCount != tt.want.LowStockCount {
				t.Fatalf("GetStats() low stock = %d, want %d", got.LowStockCount, tt.want.LowStockCount)
			}
			if got.TotalValue != tt.want.TotalValue {
				t.Fatalf("GetStats() total value = %v, want %v", got.TotalValue, tt.want.TotalValue)
			}
		})
	}
}

func TestInventoryApp_UpdateThresholds(t *testing.T) {
	type fields struct {
		inventoryRepo *inventorymocks.InventoryRepository
		warehouseRepo *warehousemocks.WarehouseRepository
		catalogClient *catalogmocks.Client
	}
	newFields := func(t *testing.T) fields {
		return fields{
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
			warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			catalogClient: catalogmocks.NewClient(t),
		}
	}
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: thresholds upserted",
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.WarehouseEntity{ID: 1}, nil).Once()
				f.inventoryRepo.On("UpdateThresholds", mock.Anything, uint64(1), uint64(10), mock.Anything).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: warehouse not found",
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appinventory.NewInventoryApp(f.inventoryRepo, f.warehouseRepo, f.catalogClient)

			err := app.UpdateThresholds(context.Background(), 1, 10, &model.UpdateThresholdRequest{MinQuantity: 5, MaxQuantity: 100})
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateThresholds() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestInventoryApp_LowStockCheck(t *testing.T) {
	inventoryRepo := inventorymocks.NewInventoryRepository(t)
	warehouseRepo := warehousemocks.NewWarehouseRepository(t)
	catalogClient := catalogmocks.NewClient(t)

	inventoryRepo.On("CountLowStock", mock.Anything, uint64(1)).Return(int64(3), nil).Once()
	inventoryRepo.On("CountLowStock", mock.Anything, uint64(2)).Return(int64(0), nil).Once()

	app := appinventory.NewInventoryApp(inventoryRepo, warehouseRepo, catalogClient)

	total, err := app.LowStockCheck(context.Background(), []uint64{1, 2})
	if err != nil {
		t.Fatalf("LowStockCheck() error = %v", err)
	}
	if total != 3 {
		t.Fatalf("LowStockCheck() total = %d, want 3", total)
	}
}
