package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"catrental/internal/adapter/http/handlers/mocks"
	"catrental/internal/domain/entities"
	"catrental/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRentalRequestRouter(h *RentalRequestHandler, caller entities.Caller) *gin.Engine {
	r := gin.New()
	r.Use(withCaller(caller))
	r.POST("/v1/requests", h.Create)
	r.GET("/v1/requests", h.List)
	r.PATCH("/v1/requests/:id", h.Resolve)
	return r
}

func TestRentalRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalRequestUseCase(ctrl)
		h := NewRentalRequestHandler(uc)

		uc.EXPECT().Create(gomock.Any(), testCustomer, usecase.CreateRentalRequestCommand{
			MachineID: "m-1",
			Type:      entities.RentalRequestSupport,
			Comments:  "hydraulic leak",
		}).Return(entities.RentalRequest{
			ID: "req-1", MachineID: "m-1", DealerID: "dealer-1", UserID: "cust-1",
			Type: entities.RentalRequestSupport, Status: entities.RentalRequestInProgress, RequestDate: testNow,
		}, nil)

		w := serve(newRentalRequestRouter(h, testCustomer), http.MethodPost, "/v1/requests",
			`{"machine_id":"m-1","request_type":" Support ","comments":"hydraulic leak"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["request_id"] != "req-1" || body["status"] != "In-Progress" || body["dealer_id"] != "dealer-1" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("missing request type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRentalRequestHandler(mocks.NewMockIRentalRequestUseCase(ctrl))

		w := serve(newRentalRequestRouter(h, testCustomer), http.MethodPost, "/v1/requests", `{"machine_id":"m-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown machine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalRequestUseCase(ctrl)
		h := NewRentalRequestHandler(uc)

		uc.EXPECT().Create(gomock.Any(), testCustomer, gomock.Any()).Return(entities.RentalRequest{}, usecase.ErrMachineNotFound)

		w := serve(newRentalRequestRouter(h, testCustomer), http.MethodPost, "/v1/requests", `{"machine_id":"ghost","request_type":"Support"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if got := decodeError(t, w).Error.Code; got != "MACHINE_NOT_FOUND" {
			t.Fatalf("expected MACHINE_NOT_FOUND, got %s", got)
		}
	})
}

func TestRentalRequestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRentalRequestUseCase(ctrl)
	h := NewRentalRequestHandler(uc)

	uc.EXPECT().List(gomock.Any(), testAdmin, entities.RentalRequestInProgress).Return([]entities.RentalRequest{
		{ID: "req-2", Status: entities.RentalRequestInProgress},
		{ID: "req-1", Status: entities.RentalRequestInProgress},
	}, nil)

	w := serve(newRentalRequestRouter(h, testAdmin), http.MethodGet, "/v1/requests?status=In-Progress", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 2 || body[0]["request_id"] != "req-2" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestRentalRequestHandler_Resolve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalRequestUseCase(ctrl)
		h := NewRentalRequestHandler(uc)

		uc.EXPECT().Resolve(gomock.Any(), testAdmin, "req-1", entities.RentalRequestApproved, "ok").
			Return(entities.RentalRequest{ID: "req-1", Status: entities.RentalRequestApproved, AdminComments: "ok"}, nil)

		w := serve(newRentalRequestRouter(h, testAdmin), http.MethodPatch, "/v1/requests/req-1", `{"status":"Approved","admin_comments":"ok"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("error kinds", func(t *testing.T) {
		cases := map[error]int{
			usecase.ErrRentalRequestNotFound:      http.StatusNotFound,
			usecase.ErrRentalRequestResolved:      http.StatusConflict,
			usecase.ErrInvalidRentalRequestStatus: http.StatusBadRequest,
			usecase.ErrForbidden:                  http.StatusForbidden,
		}
		for ucErr, want := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIRentalRequestUseCase(ctrl)
			h := NewRentalRequestHandler(uc)
			uc.EXPECT().Resolve(gomock.Any(), gomock.Any(), "req-1", gomock.Any(), gomock.Any()).Return(entities.RentalRequest{}, ucErr)

			w := serve(newRentalRequestRouter(h, testAdmin), http.MethodPatch, "/v1/requests/req-1", `{"status":"Denied"}`)
			if w.Code != want {
				t.Fatalf("%v: expected %d, got %d", ucErr, want, w.Code)
			}
			ctrl.Finish()
		}
	})
}
