package warehouse_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appwarehouse "github.com/ecomstack/inventory-service/application/warehouse"
	"github.com/ecomstack/inventory-service/constant"
	warehousemocks "github.com/ecomstack/inventory-service/mocks/repository/warehouse"
	"github.com/ecomstack/inventory-service/model"
	cerr "github.com/ecomstack/inventory-service/utils/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/mock"
)

func TestWarehouseApp_CreateWarehouse(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateWarehouseRequest
		mockCall func(repo *warehousemocks.WarehouseRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create warehouse",
			req:  &model.CreateWarehouseRequest{Name: "Central", Code: "WH-CTR"},
			mockCall: func(repo *warehousemocks.WarehouseRepository) {
				repo.On("GetByCode", mock.Anything, "WH-CTR").Return(nil, nil).Once()
				repo.On("Insert", mock.Anything, mock.MatchedBy(func(w *model.WarehouseEntity) bool {
					return w.Code == "WH-CTR" && w.IsActive
				})).Return(uint64(1), nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: duplicate code",
			req:  &model.CreateWarehouseRequest{Name: "Central", Code: "WH-CTR"},
			mockCall: func(repo *warehousemocks.WarehouseRepository) {
				repo.On("GetByCode", mock.Anything, "WH-CTR").Return(&model.WarehouseEntity{ID: 9, Code: "WH-CTR"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateCode,
		},
		{
			name: "error: concurrent create loses on unique code key",
			req:  &model.CreateWarehouseRequest{Name: "Central", Code: "WH-CTR"},
			mockCall: func(repo *warehousemocks.WarehouseRepository) {
				repo.On("GetByCode", mock.Anything, "WH-CTR").Return(nil, nil).Once()
				dupErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'WH-CTR' for key 'uq_warehouse_code'"}
				repo.On("Insert", mock.Anything, mock.Anything).Return(uint64(0), dupErr).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateCode,
		},
		{
			name: "error: lookup failure",
			req:  &model.CreateWarehouseRequest{Name: "Central", Code: "WH-CTR"},
			mockCall: func(repo *warehousemocks.WarehouseRepository) {
				repo.On("GetByCode", mock.Anything, "WH-CTR").Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := warehousemocks.NewWarehouseRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appwarehouse.NewWarehouseApp(repo)

			got, err := app.CreateWarehouse(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateWarehouse() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.ID != 1 {
				t.Fatalf("CreateWarehouse() id = %d, want 1", got.ID)
			}
			if !got.IsActive {
				t.Fatal("CreateWarehouse() new warehouse should be active")
			}
		})
	}
}

func TestWarehouseApp_DisableWarehouse(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(repo *warehousemocks.WarehouseRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: disable warehouse",
			mockCall: func(repo *warehousemocks.WarehouseRepository) {
				repo.On("SetActive", mock.Anything, uint64(1), false).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: warehouse not found",
			mockCall: func(repo *warehousemocks.WarehouseRepository) {
				repo.On("SetActive", mock.Anything, uint64(1), false).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := warehousemocks.NewWarehouseRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appwarehouse.NewWarehouseApp(repo)

			err := app.DisableWarehouse(context.Background(), 1)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DisableWarehouse() error = %v, wantErr %v", err, tt.wantErr)
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

func TestWarehouseApp_UpdateWarehouse(t *testing.T) {
	repo := warehousemocks.NewWarehouseRepository(t)
	repo.On("GetByID", mock.Anything, uint64(1)).Return(&model.WarehouseEntity{
		ID:   1,
		Name: "Old",
		Code: "WH-CTR",
	}, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(w *model.WarehouseEntity) bool {
		return w.ID == 1 && w.Name == "New" && w.Code == "WH-CTR"
	})).Return(nil).Once()

	app := appwarehouse.NewWarehouseApp(repo)

	got, err := app.UpdateWarehouse(context.Background(), 1, &model.UpdateWarehouseRequest{Name: "New"})
	if err != nil {
		t.Fatalf("UpdateWarehouse() error = %v", err)
	}
	if got.Name != "New" {
		t.Fatalf("UpdateWarehouse() name = %s, want New", got.Name)
	}
	// Code is immutable on update
	if got.Code != "WH-CTR" {
		t.Fatalf("UpdateWarehouse() code = %s, want WH-CTR", got.Code)
	}
}
