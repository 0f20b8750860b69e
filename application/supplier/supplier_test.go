package supplier_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appsupplier "github.com/ecomstack/inventory-service/application/supplier"
	"github.com/ecomstack/inventory-service/constant"
	suppliermocks "github.com/ecomstack/inventory-service/mocks/repository/supplier"
	"github.com/ecomstack/inventory-service/model"
	cerr "github.com/ecomstack/inventory-service/utils/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/mock"
)

func TestSupplierApp_CreateSupplier(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateSupplierRequest
		mockCall func(repo *suppliermocks.SupplierRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create supplier",
			req:  &model.CreateSupplierRequest{Name: "Acme", Code: "SUP-ACM"},
			mockCall: func(repo *suppliermocks.SupplierRepository) {
				repo.On("GetByCode", mock.Anything, "SUP-ACM").Return(nil, nil).Once()
				repo.On("Insert", mock.Anything, mock.MatchedBy(func(s *model.SupplierEntity) bool {
					return s.Code == "SUP-ACM" && s.IsActive
				})).Return(uint64(2), nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: duplicate code",
			req:  &model.CreateSupplierRequest{Name: "Acme", Code: "SUP-ACM"},
			mockCall: func(repo *suppliermocks.SupplierRepository) {
				repo.On("GetByCode", mock.Anything, "SUP-ACM").Return(&model.SupplierEntity{ID: 7, Code: "SUP-ACM"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateCode,
		},
		{
			name: "error: concurrent create loses on unique code key",
			req:  &model.CreateSupplierRequest{Name: "Acme", Code: "SUP-ACM"},
			mockCall: func(repo *suppliermocks.SupplierRepository) {
				repo.On("GetByCode", mock.Anything, "SUP-ACM").Return(nil, nil).Once()
				dupErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'SUP-ACM' for key 'uq_supplier_code'"}
				repo.On("Insert", mock.Anything, mock.Anything).Return(uint64(0), dupErr).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateCode,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := suppliermocks.NewSupplierRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appsupplier.NewSupplierApp(repo)

			got, err := app.CreateSupplier(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateSupplier() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.ID != 2 {
				t.Fatalf("CreateSupplier() id = %d, want 2", got.ID)
			}
		})
	}
}

func TestSupplierApp_DisableSupplier(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(repo *suppliermocks.SupplierRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: disable supplier",
			mockCall: func(repo *suppliermocks.SupplierRepository) {
				repo.On("SetActive", mock.Anything, uint64(2), false).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: supplier not found",
			mockCall: func(repo *suppliermocks.SupplierRepository) {
				repo.On("SetActive", mock.Anything, uint64(2), false).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := suppliermocks.NewSupplierRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appsupplier.NewSupplierApp(repo)

			err := app.DisableSupplier(context.Background(), 2)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DisableSupplier() error = %v, wantErr %v", err, tt.wantErr)
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
