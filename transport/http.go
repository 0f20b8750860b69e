package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	authapp "github.com/ecomstack/inventory-service/application/auth"
	inventoryapp "github.com/ecomstack/inventory-service/application/inventory"
	movementapp "github.com/ecomstack/inventory-service/application/movement"
	supplierapp "github.com/ecomstack/inventory-service/application/supplier"
	warehouseapp "github.com/ecomstack/inventory-service/application/warehouse"
	"github.com/ecomstack/inventory-service/constant"
	"github.com/ecomstack/inventory-service/model"
	utilsContext "github.com/ecomstack/inventory-service/utils/context"
	"github.com/ecomstack/inventory-service/utils/errors"
	validatorx "github.com/ecomstack/inventory-service/utils/validator"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	WarehouseApp warehouseapp.WarehouseApp
	SupplierApp  supplierapp.SupplierApp
	InventoryApp inventoryapp.InventoryApp
	MovementApp  movementapp.MovementApp

	db *sqlx.DB
}

func NewTransport(
	warehouseApp warehouseapp.WarehouseApp,
	supplierApp supplierapp.SupplierApp,
	inventoryApp inventoryapp.InventoryApp,
	movementApp movementapp.MovementApp,
	authApp authapp.AuthApp,
	internalAPIKey string,
	db *sqlx.DB,
) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		WarehouseApp: warehouseApp,
		SupplierApp:  supplierApp,
		InventoryApp: inventoryApp,
		MovementApp:  movementApp,
		db:           db,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Health check
	router.HandleFunc("/healthz", rh.Healthz).Methods(http.MethodGet)

	// Registries
	router.HandleFunc("/warehouses", rh.ListWarehouses).Methods(http.MethodGet)
	router.HandleFunc("/warehouses", rh.CreateWarehouse).Methods(http.MethodPost)
	router.HandleFunc("/warehouses/{id}", rh.GetWarehouse).Methods(http.MethodGet)
	router.HandleFunc("/warehouses/{id}", rh.UpdateWarehouse).Methods(http.MethodPut)
	router.HandleFunc("/warehouses/{id}/disable", rh.DisableWarehouse).Methods(http.MethodPost)

	router.HandleFunc("/suppliers", rh.ListSuppliers).Methods(http.MethodGet)
	router.HandleFunc("/suppliers", rh.CreateSupplier).Methods(http.MethodPost)
	router.HandleFunc("/suppliers/{id}", rh.GetSupplier).Methods(http.MethodGet)
	router.HandleFunc("/suppliers/{id}", rh.UpdateSupplier).Methods(http.MethodPut)
	router.HandleFunc("/suppliers/{id}/disable", rh.DisableSupplier).Methods(http.MethodPost)

	// Inventory ledger (read) + thresholds
	router.HandleFunc("/inventory", rh.ListInventory).Methods(http.MethodGet)
	router.HandleFunc("/inventory/stats", rh.GetInventoryStats).Methods(http.MethodGet)
	router.HandleFunc("/inventory/{warehouseId}/{variantId}", rh.GetInventoryQuantity).Methods(http.MethodGet)
	router.HandleFunc("/inventory/{warehouseId}/{variantId}/thresholds", rh.UpdateThresholds).Methods(http.MethodPut)

	// Stock movements
	router.HandleFunc("/stock-movements", rh.CreateMovement).Methods(http.MethodPost)
	router.HandleFunc("/stock-movements", rh.ListMovements).Methods(http.MethodGet)
	router.HandleFunc("/stock-movements/{id}", rh.GetMovement).Methods(http.MethodGet)
	router.HandleFunc("/stock-movements/{id}/complete", rh.CompleteMovement).Methods(http.MethodPost)
	router.HandleFunc("/stock-movements/{id}/cancel", rh.CancelMovement).Methods(http.MethodPost)

	// Internal endpoints (worker callbacks, guarded by static API key)
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/inventory/low-stock-check", rh.LowStockCheck).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(authApp))

	return router
}

// Healthz handler
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} transport.response
// @Router /healthz [get]
func (s *RestHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInternal))
			return
		}
	}
	writeSuccess(w, map[string]string{"status": "ok"})
}

// ListWarehouses handler
// @Summary List warehouses
// @Description List warehouses, optionally filtered on active flag
// @Tags Warehouse
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} model.WarehouseEntity
// @Failure 401 {object} transport.response
// @Security BearerAuth
// @Router /warehouses [get]
func (s *RestHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activeOnly := parseBoolParam(r, "active")

	res, err := s.WarehouseApp.ListWarehouses(ctx, activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateWarehouse handler
// @Summary Create warehouse
// @Description Create a new warehouse; code must be unique
// @Tags Warehouse
// @Accept json
// @Produce json
// @Param request body model.CreateWarehouseRequest true "Create Warehouse Request"
// @Success 200 {object} model.WarehouseEntity
// @Failure 409 {object} transport.response
// @Security BearerAuth
// @Router /warehouses [post]
func (s *RestHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.CreateWarehouse(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetWarehouse handler
// @Summary Get warehouse detail
// @Tags Warehouse
// @Produce json
// @Param id path int true "Warehouse ID"
// @Success 200 {object} model.WarehouseEntity
// @Failure 404 {object} transport.response
// @Security BearerAuth
// @Router /warehouses/{id} [get]
func (s *RestHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.GetWarehouse(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateWarehouse handler
// @Summary Update warehouse
// @Tags Warehouse
// @Accept json
// @Produce json
// @Param id path int true "Warehouse ID"
// @Param request body model.UpdateWarehouseRequest true "Update Warehouse Request"
// @Success 200 {object} model.WarehouseEntity
// @Failure 404 {object} transport.response
// @Security BearerAuth
// @Router /warehouses/{id} [put]
func (s *RestHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.UpdateWarehouse(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DisableWarehouse handler
// @Summary Disable warehouse
// @Description Set is_active=false; warehouses are never deleted
// @Tags Warehouse
// @Produce json
// @Param id path int true "Warehouse ID"
// @Success 200 {object} transport.response
// @Failure 404 {object} transport.response
// @Security BearerAuth
// @Router /warehouses/{id}/disable [post]
func (s *RestHandler) DisableWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.WarehouseApp.DisableWarehouse(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListSuppliers handler
// @Summary List suppliers
// @Tags Supplier
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} model.SupplierEntity
// @Security BearerAuth
// @Router /suppliers [get]
func (s *RestHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activeOnly := parseBoolParam(r, "active")

	res, err := s.SupplierApp.ListSuppliers(ctx, activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateSupplier handler
// @Summary Create supplier
// @Tags Supplier
// @Accept json
// @Produce json
// @Param request body model.CreateSupplierRequest true "Create Supplier Request"
// @Success 200 {object} model.SupplierEntity
// @Failure 409 {object} transport.response
// @Security BearerAuth
// @Router /suppliers [post]
func (s *RestHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SupplierApp.CreateSupplier(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetSupplier handler
// @Summary Get supplier detail
// @Tags Supplier
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} model.SupplierEntity
// @Failure 404 {object} transport.response
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (s *RestHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SupplierApp.GetSupplier(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateSupplier handler
// @Summary Update supplier
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param request body model.UpdateSupplierRequest true "Update Supplier Request"
// @Success 200 {object} model.SupplierEntity
// @Failure 404 {object} transport.response
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (s *RestHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SupplierApp.UpdateSupplier(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DisableSupplier handler
// @Summary Disable supplier
// @Tags Supplier
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} transport.response
// @Failure 404 {object} transport.response
// @Security BearerAuth
// @Router /suppliers/{id}/disable [post]
func (s *RestHandler) DisableSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SupplierApp.DisableSupplier(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListInventory handler
// @Summary List inventory rows
// @Description Paginated (warehouse, variant) quantity rows with optional filters
// @Tags Inventory
// @Produce json
// @Param warehouseId query int false "Warehouse ID"
// @Param search query string false "Variant SKU or name search"
// @Param lowStock query bool false "Only rows at or below min quantity"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} model.InventoryListResponse
// @Security BearerAuth
// @Router /inventory [get]
func (s *RestHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	warehouseID, _ := strconv.ParseUint(q.Get("warehouseId"), 10, 64)
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	lowStock, _ := strconv.ParseBool(q.Get("lowStock"))

	filter := &model.InventoryFilter{
		WarehouseID:  warehouseID,
		Search:       q.Get("search"),
		LowStockOnly: lowStock,
		Page:         page,
		Limit:        limit,
	}

	res, err := s.InventoryApp.ListInventory(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetInventoryStats handler
// @Summary Inventory statistics
// @Description Total items, low-stock count and total value, recomputed on demand
// @Tags Inventory
// @Produce json
// @Param warehouseId query int false "Warehouse ID"
// @Success 200 {object} model.InventoryStats
// @Security BearerAuth
// @Router /inventory/stats [get]
func (s *RestHandler) GetInventoryStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	warehouseID, _ := strconv.ParseUint(r.URL.Query().Get("warehouseId"), 10, 64)

	res, err := s.InventoryApp.GetStats(ctx, warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetInventoryQuantity handler
// @Summary Get one ledger quantity
// @Description Current quantity for a (warehouse, variant) pair; 0 if no movement ever touched it
// @Tags Inventory
// @Produce json
// @Param warehouseId path int true "Warehouse ID"
// @Param variantId path int true "Variant ID"
// @Success 200 {object} model.InventoryQuantityResponse
// @Failure 404 {object} transport.response
// @Security BearerAuth
// @Router /inventory/{warehouseId}/{variantId} [get]
func (s *RestHandler) GetInventoryQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	warehouseID, err := parseIDVar(r, "warehouseId")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	variantID, err := parseIDVar(r, "variantId")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.GetQuantity(ctx, warehouseID, variantID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateThresholds handler
// @Summary Update inventory thresholds
// @Description Set min/max quantity and bin location for a (warehouse, variant) pair
// @Tags Inventory
// @Accept json
// @Produce json
// @Param warehouseId path int true "Warehouse ID"
// @Param variantId path int true "Variant ID"
// @Param request body model.UpdateThresholdRequest true "Threshold Request"
// @Success 200 {object} transport.response
// @Failure 404 {object} transport.response
// @Security BearerAuth
// @Router /inventory/{warehouseId}/{variantId}/thresholds [put]
func (s *RestHandler) UpdateThresholds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	warehouseID, err := parseIDVar(r, "warehouseId")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	variantID, err := parseIDVar(r, "variantId")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateThresholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.InventoryApp.UpdateThresholds(ctx, warehouseID, variantID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// CreateMovement handler
// @Summary Create stock movement
// @Description Create a PENDING import/export/transfer movement; ledger unchanged until complete
// @Tags StockMovement
// @Accept json
// @Produce json
// @Param request body model.CreateMovementRequest true "Create Movement Request"
// @Success 200 {object} model.StockMovementEntity
// @Failure 400 {object} transport.response
// @Failure 409 {object} transport.response
// @Security BearerAuth
// @Router /stock-movements [post]
func (s *RestHandler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.MovementApp.CreateMovement(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListMovements handler
// @Summary List stock movements
// @Tags StockMovement
// @Produce json
// @Param warehouseId query int false "Warehouse ID (source or destination)"
// @Param type query string false "Movement type"
// @Param status query int false "Movement status"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} model.MovementListResponse
// @Security BearerAuth
// @Router /stock-movements [get]
func (s *RestHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	warehouseID, _ := strconv.ParseUint(q.Get("warehouseId"), 10, 64)
	status, _ := strconv.Atoi(q.Get("status"))
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := &model.MovementFilter{
		WarehouseID: warehouseID,
		Type:        q.Get("type"),
		Status:      status,
		Page:        page,
		Limit:       limit,
	}

	res, err := s.MovementApp.ListMovements(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetMovement handler
// @Summary Get stock movement detail with items
// @Tags StockMovement
// @Produce json
// @Param id path int true "Movement ID"
// @Success 200 {object} model.MovementDetail
// @Failure 404 {object} transport.response
// @Security BearerAuth
// @Router /stock-movements/{id} [get]
func (s *RestHandler) GetMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.MovementApp.GetMovement(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CompleteMovement handler
// @Summary Complete stock movement
// @Description Apply all line-item ledger deltas atomically and mark the movement COMPLETED
// @Tags StockMovement
// @Produce json
// @Param id path int true "Movement ID"
// @Success 200 {object} model.StockMovementEntity
// @Failure 409 {object} transport.response
// @Security BearerAuth
// @Router /stock-movements/{id}/complete [post]
func (s *RestHandler) CompleteMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.MovementApp.CompleteMovement(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelMovement handler
// @Summary Cancel stock movement
// @Description Cancel a PENDING movement; the ledger is never touched
// @Tags StockMovement
// @Produce json
// @Param id path int true "Movement ID"
// @Success 200 {object} model.StockMovementEntity
// @Failure 409 {object} transport.response
// @Security BearerAuth
// @Router /stock-movements/{id}/cancel [post]
func (s *RestHandler) CancelMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.MovementApp.CancelMovement(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

type lowStockCheckRequest struct {
	WarehouseIDs []uint64 `json:"warehouse_ids" validate:"required,min=1"`
}

// LowStockCheck handler (internal, called by the movement-completed worker)
func (s *RestHandler) LowStockCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req lowStockCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	count, err := s.InventoryApp.LowStockCheck(ctx, req.WarehouseIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]int64{"low_stock_rows": count})
}

func parseIDVar(r *http.Request, name string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[name], 10, 64)
}

func parseBoolParam(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
