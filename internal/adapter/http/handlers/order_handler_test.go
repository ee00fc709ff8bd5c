package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"catrental/internal/adapter/http/handlers/mocks"
	"catrental/internal/domain/entities"
	"catrental/internal/domain/geo"
	"catrental/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validOrderBody = `{"machine_type":"Excavator","quantity":2,"latitude":12.9,"longitude":77.5,"check_in_date":"2026-02-01T00:00:00Z","check_out_date":"2026-02-10T00:00:00Z"}`

func newOrderRouter(h *OrderHandler, caller *entities.Caller) *gin.Engine {
	r := gin.New()
	if caller != nil {
		r.Use(withCaller(*caller))
	}
	r.POST("/v1/orders", h.PlaceOrder)
	r.GET("/v1/orders", h.ListMyOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	return r
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl))

		w := serve(newOrderRouter(h, nil), http.MethodPost, "/v1/orders", validOrderBody)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl))

		w := serve(newOrderRouter(h, &testCustomer), http.MethodPost, "/v1/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl))

		body := `{"machine_type":"Excavator","check_in_date":"2026-02-01T00:00:00Z","check_out_date":"2026-02-10T00:00:00Z"}`
		w := serve(newOrderRouter(h, &testCustomer), http.MethodPost, "/v1/orders", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		order := entities.Order{ID: "ord-1", UserID: "cust-1", MachineType: "Excavator", Quantity: 2, Status: entities.OrderStatusPending}
		transfers := []entities.Transfer{
			{ID: "tr-1", OrderID: "ord-1", MachineID: "m-1", Status: entities.TransferStatusPending, DistanceKm: 1.2},
			{ID: "tr-2", OrderID: "ord-1", MachineID: "m-2", Status: entities.TransferStatusPending, DistanceKm: 3.4},
		}
		uc.EXPECT().
			PlaceOrder(gomock.Any(), testCustomer, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Caller, cmd usecase.PlaceOrderCommand) (usecase.OrderWithTransfers, error) {
				if cmd.MachineType != "Excavator" || cmd.Quantity != 2 {
					t.Fatalf("unexpected command %+v", cmd)
				}
				if cmd.Destination != (geo.Point{Lat: 12.9, Lon: 77.5}) {
					t.Fatalf("unexpected destination %+v", cmd.Destination)
				}
				return usecase.OrderWithTransfers{Order: order, Transfers: transfers}, nil
			})

		w := serve(newOrderRouter(h, &testCustomer), http.MethodPost, "/v1/orders", validOrderBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body struct {
			OrderID          string `json:"order_id"`
			TransfersCreated int    `json:"transfers_created"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.OrderID != "ord-1" || body.TransfersCreated != 2 {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("omitted quantity defaults to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().
			PlaceOrder(gomock.Any(), testCustomer, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Caller, cmd usecase.PlaceOrderCommand) (usecase.OrderWithTransfers, error) {
				if cmd.Quantity != 1 {
					t.Fatalf("expected quantity 1, got %d", cmd.Quantity)
				}
				return usecase.OrderWithTransfers{Order: entities.Order{ID: "ord-1", Quantity: 1}}, nil
			})

		body := `{"machine_type":"Excavator","latitude":12.9,"longitude":77.5,"check_in_date":"2026-02-01T00:00:00Z","check_out_date":"2026-02-10T00:00:00Z"}`
		w := serve(newOrderRouter(h, &testCustomer), http.MethodPost, "/v1/orders", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("explicit zero quantity is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().
			PlaceOrder(gomock.Any(), testCustomer, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Caller, cmd usecase.PlaceOrderCommand) (usecase.OrderWithTransfers, error) {
				if cmd.Quantity != 0 {
					t.Fatalf("expected quantity 0 to reach validation, got %d", cmd.Quantity)
				}
				return usecase.OrderWithTransfers{}, usecase.ErrInvalidQuantity
			})

		body := `{"machine_type":"Excavator","quantity":0,"latitude":12.9,"longitude":77.5,"check_in_date":"2026-02-01T00:00:00Z","check_out_date":"2026-02-10T00:00:00Z"}`
		w := serve(newOrderRouter(h, &testCustomer), http.MethodPost, "/v1/orders", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeError(t, w).Error.Code; code != "INVALID_REQUEST" {
			t.Fatalf("expected INVALID_REQUEST, got %s", code)
		}
	})

	t.Run("shortage carries counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().PlaceOrder(gomock.Any(), testCustomer, gomock.Any()).
			Return(usecase.OrderWithTransfers{}, &usecase.InsufficientMachinesError{Found: 1, Needed: 2})

		w := serve(newOrderRouter(h, &testCustomer), http.MethodPost, "/v1/orders", validOrderBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code string `json:"code"`
			} `json:"error"`
			Found  int `json:"found"`
			Needed int `json:"needed"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Success || body.Error.Code != "INSUFFICIENT_MACHINES" || body.Found != 1 || body.Needed != 2 {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("validation and role errors", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{usecase.ErrCheckInNotInFuture, http.StatusBadRequest},
			{usecase.ErrInvalidDateRange, http.StatusBadRequest},
			{usecase.ErrInvalidDestination, http.StatusBadRequest},
			{usecase.ErrForbidden, http.StatusForbidden},
			{errors.New("dynamodb unavailable"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIOrderUseCase(ctrl)
			h := NewOrderHandler(uc)
			uc.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.OrderWithTransfers{}, tc.err)

			w := serve(newOrderRouter(h, &testCustomer), http.MethodPost, "/v1/orders", validOrderBody)
			if w.Code != tc.code {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func TestOrderHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().ListMyOrders(gomock.Any(), testCustomer).
			Return([]entities.Order{{ID: "ord-2"}, {ID: "ord-1"}}, nil)

		w := serve(newOrderRouter(h, &testCustomer), http.MethodGet, "/v1/orders", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["order_id"] != "ord-2" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().GetOrder(gomock.Any(), testCustomer, "ord-9").Return(usecase.OrderWithTransfers{}, usecase.ErrOrderNotFound)

		w := serve(newOrderRouter(h, &testCustomer), http.MethodGet, "/v1/orders/ord-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if got := decodeError(t, w).Error.Code; got != "ORDER_NOT_FOUND" {
			t.Fatalf("expected ORDER_NOT_FOUND, got %s", got)
		}
	})

	t.Run("get ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().GetOrder(gomock.Any(), testCustomer, "ord-1").Return(usecase.OrderWithTransfers{
			Order:     entities.Order{ID: "ord-1"},
			Transfers: []entities.Transfer{{ID: "tr-1"}},
		}, nil)

		w := serve(newOrderRouter(h, &testCustomer), http.MethodGet, "/v1/orders/ord-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Order     map[string]any   `json:"order"`
			Transfers []map[string]any `json:"transfers"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Order["order_id"] != "ord-1" || len(body.Transfers) != 1 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}
