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

func newTransferRouter(h *TransferHandler, caller entities.Caller) *gin.Engine {
	r := gin.New()
	r.Use(withCaller(caller))
	r.GET("/v1/transfers", h.List)
	r.PATCH("/v1/transfers/:id/approve", h.Approve)
	r.PATCH("/v1/transfers/:id/decline", h.Decline)
	return r
}

func TestTransferHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransferUseCase(ctrl)
		h := NewTransferHandler(uc)

		uc.EXPECT().Approve(gomock.Any(), testAdmin, "tr-1").Return(usecase.ApprovalResult{
			Transfer:    entities.Transfer{ID: "tr-1", Status: entities.TransferStatusApproved, AdminComments: "Approved by Ravi"},
			Machine:     entities.Machine{ID: "m-1", UserID: "cust-1", Status: entities.MachineStatusInTransit},
			OrderStatus: entities.OrderStatusApproved,
		}, nil)

		w := serve(newTransferRouter(h, testAdmin), http.MethodPatch, "/v1/transfers/tr-1/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body struct {
			Transfer      map[string]any `json:"transfer"`
			AssignedTo    string         `json:"assigned_to"`
			MachineStatus string         `json:"machine_status"`
			OrderStatus   string         `json:"order_status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Transfer["status"] != "approved" || body.AssignedTo != "cust-1" || body.MachineStatus != "In-transit" || body.OrderStatus != "Approved" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("lost race is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransferUseCase(ctrl)
		h := NewTransferHandler(uc)

		uc.EXPECT().Approve(gomock.Any(), testAdmin, "tr-1").Return(usecase.ApprovalResult{}, usecase.ErrMachineNoLongerAvailable)

		w := serve(newTransferRouter(h, testAdmin), http.MethodPatch, "/v1/transfers/tr-1/approve", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if got := decodeError(t, w).Error.Code; got != "MACHINE_NO_LONGER_AVAILABLE" {
			t.Fatalf("expected MACHINE_NO_LONGER_AVAILABLE, got %s", got)
		}
	})

	t.Run("error kinds", func(t *testing.T) {
		cases := map[error]int{
			usecase.ErrTransferNotFound:   http.StatusNotFound,
			usecase.ErrTransferNotPending: http.StatusConflict,
			usecase.ErrForbidden:          http.StatusForbidden,
		}
		for err, code := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockITransferUseCase(ctrl)
			h := NewTransferHandler(uc)
			uc.EXPECT().Approve(gomock.Any(), gomock.Any(), "tr-1").Return(usecase.ApprovalResult{}, err)

			w := serve(newTransferRouter(h, testAdmin), http.MethodPatch, "/v1/transfers/tr-1/approve", "")
			if w.Code != code {
				t.Fatalf("%v: expected %d, got %d", err, code, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func TestTransferHandler_Decline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTransferHandler(mocks.NewMockITransferUseCase(ctrl))

		w := serve(newTransferRouter(h, testAdmin), http.MethodPatch, "/v1/transfers/tr-1/decline", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w).Error.Code; got != "DECLINE_REASON_REQUIRED" {
			t.Fatalf("expected DECLINE_REASON_REQUIRED, got %s", got)
		}
	})

	t.Run("blank reason rejected by use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransferUseCase(ctrl)
		h := NewTransferHandler(uc)

		uc.EXPECT().Decline(gomock.Any(), testAdmin, "tr-1", "").Return(entities.Transfer{}, usecase.ErrDeclineReasonRequired)

		w := serve(newTransferRouter(h, testAdmin), http.MethodPatch, "/v1/transfers/tr-1/decline", `{"reason":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransferUseCase(ctrl)
		h := NewTransferHandler(uc)

		uc.EXPECT().Decline(gomock.Any(), testAdmin, "tr-1", "machine under repair").
			Return(entities.Transfer{ID: "tr-1", Status: entities.TransferStatusDeclined, AdminComments: "machine under repair"}, nil)

		w := serve(newTransferRouter(h, testAdmin), http.MethodPatch, "/v1/transfers/tr-1/decline", `{"reason":" machine under repair "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "declined" || body["admin_comments"] != "machine under repair" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestTransferHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status filter is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransferUseCase(ctrl)
		h := NewTransferHandler(uc)

		uc.EXPECT().List(gomock.Any(), testAdmin, entities.TransferStatusPending).
			Return([]entities.Transfer{{ID: "tr-2"}, {ID: "tr-1"}}, nil)

		w := serve(newTransferRouter(h, testAdmin), http.MethodGet, "/v1/transfers?status=pending", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 transfers, got %d", len(body))
		}
	})

	t.Run("bad status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransferUseCase(ctrl)
		h := NewTransferHandler(uc)

		uc.EXPECT().List(gomock.Any(), testAdmin, entities.TransferStatus("bogus")).Return(nil, usecase.ErrInvalidTransferStatus)

		w := serve(newTransferRouter(h, testAdmin), http.MethodGet, "/v1/transfers?status=bogus", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
