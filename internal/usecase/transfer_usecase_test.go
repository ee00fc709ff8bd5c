package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"catrental/internal/domain/entities"
	mock_interfaces "catrental/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func seedPendingTransfer(s *memStore, transferID, orderID, machineID, toUser string, quantity int) {
	s.orders[orderID] = entities.Order{
		ID:           orderID,
		UserID:       toUser,
		Quantity:     quantity,
		Status:       entities.OrderStatusPending,
		CheckInDate:  fixedNow.Add(24 * time.Hour),
		CheckOutDate: fixedNow.Add(72 * time.Hour),
	}
	s.transfers[transferID] = entities.Transfer{
		ID:          transferID,
		OrderID:     orderID,
		MachineID:   machineID,
		DealerID:    "dealer-1",
		FromUserID:  "dealer-1",
		ToUserID:    toUser,
		Destination: bangalore,
		Status:      entities.TransferStatusPending,
	}
}

func TestTransferUseCase_Approve_ConcurrentClaimSucceedsOnce(t *testing.T) {
	for round := 0; round < 20; round++ {
		s := newMemStore()
		s.machines["m-1"] = readyMachine("m-1", "Excavator", kmNorth(bangalore, 3))
		seedPendingTransfer(s, "t-a", "o-a", "m-1", "cust-a", 1)
		seedPendingTransfer(s, "t-b", "o-b", "m-1", "cust-b", 1)
		uc := NewTransferUseCase(s.transferRepo(), s.machineRepo(), s.orderRepo())

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, id := range []string{"t-a", "t-b"} {
			wg.Add(1)
			go func(i int, id string) {
				defer wg.Done()
				_, errs[i] = uc.Approve(context.Background(), admin, id)
			}(i, id)
		}
		wg.Wait()

		successes, conflicts := 0, 0
		for _, err := range errs {
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrMachineNoLongerAvailable):
				conflicts++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if successes != 1 || conflicts != 1 {
			t.Fatalf("expected exactly one winner, got successes=%d conflicts=%d", successes, conflicts)
		}

		m := s.machines["m-1"]
		if m.Status != entities.MachineStatusInTransit {
			t.Fatalf("expected machine in transit, got %s", m.Status)
		}
		winner, loser := "t-a", "t-b"
		if errs[0] != nil {
			winner, loser = loser, winner
		}
		if s.transfers[winner].Status != entities.TransferStatusApproved {
			t.Fatalf("expected winner approved, got %s", s.transfers[winner].Status)
		}
		if s.transfers[loser].Status != entities.TransferStatusPending {
			t.Fatalf("expected loser pending, got %s", s.transfers[loser].Status)
		}
		if m.UserID != s.transfers[winner].ToUserID {
			t.Fatalf("machine assigned to %s, expected %s", m.UserID, s.transfers[winner].ToUserID)
		}
	}
}

func TestTransferUseCase_Approve(t *testing.T) {
	t.Run("assigns machine and promotes order", func(t *testing.T) {
		s := newMemStore()
		m := readyMachine("m-1", "Excavator", kmNorth(bangalore, 3))
		m.EngineHoursPerDay, m.IdleHours, m.OperatingDays = 4, 4, 9
		s.machines["m-1"] = m
		seedPendingTransfer(s, "t-1", "o-1", "m-1", "cust-1", 1)
		uc := NewTransferUseCase(s.transferRepo(), s.machineRepo(), s.orderRepo())

		res, err := uc.Approve(context.Background(), admin, "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Transfer.Status != entities.TransferStatusApproved || res.Transfer.AdminComments != "Approved by Ravi" {
			t.Fatalf("unexpected transfer: %+v", res.Transfer)
		}
		got := s.machines["m-1"]
		if got.UserID != "cust-1" || *got.Location != bangalore {
			t.Fatalf("unexpected machine assignment: %+v", got)
		}
		if !got.CheckInDate.Equal(fixedNow.Add(24*time.Hour)) || !got.CheckOutDate.Equal(fixedNow.Add(72*time.Hour)) {
			t.Fatalf("expected order dates on machine, got %v-%v", got.CheckInDate, got.CheckOutDate)
		}
		if got.EngineHoursPerDay != 0 || got.IdleHours != 0 || got.OperatingDays != 0 {
			t.Fatalf("expected counters reset: %+v", got)
		}
		if res.OrderStatus != entities.OrderStatusApproved || s.orders["o-1"].Status != entities.OrderStatusApproved {
			t.Fatalf("expected order approved, got %s", s.orders["o-1"].Status)
		}
	})

	t.Run("order stays pending until quantity is met", func(t *testing.T) {
		s := newMemStore()
		s.machines["m-1"] = readyMachine("m-1", "Excavator", kmNorth(bangalore, 3))
		seedPendingTransfer(s, "t-1", "o-1", "m-1", "cust-1", 2)
		uc := NewTransferUseCase(s.transferRepo(), s.machineRepo(), s.orderRepo())

		res, err := uc.Approve(context.Background(), admin, "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OrderStatus != entities.OrderStatusPending {
			t.Fatalf("expected pending order, got %s", res.OrderStatus)
		}
	})

	t.Run("other dealership reads as not found", func(t *testing.T) {
		s := newMemStore()
		seedPendingTransfer(s, "t-1", "o-1", "m-1", "cust-1", 1)
		uc := NewTransferUseCase(s.transferRepo(), s.machineRepo(), s.orderRepo())

		other := admin
		other.DealershipID = "dealer-2"
		if _, err := uc.Approve(context.Background(), other, "t-1"); !errors.Is(err, ErrTransferNotFound) {
			t.Fatalf("expected ErrTransferNotFound, got %v", err)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		s := newMemStore()
		seedPendingTransfer(s, "t-1", "o-1", "m-1", "cust-1", 1)
		tr := s.transfers["t-1"]
		tr.Status = entities.TransferStatusDeclined
		s.transfers["t-1"] = tr
		uc := NewTransferUseCase(s.transferRepo(), s.machineRepo(), s.orderRepo())

		if _, err := uc.Approve(context.Background(), admin, "t-1"); !errors.Is(err, ErrTransferNotPending) {
			t.Fatalf("expected ErrTransferNotPending, got %v", err)
		}
	})

	t.Run("customer forbidden", func(t *testing.T) {
		uc := NewTransferUseCase(nil, nil, nil)
		if _, err := uc.Approve(context.Background(), customer, "t-1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin without dealership forbidden", func(t *testing.T) {
		uc := NewTransferUseCase(nil, nil, nil)
		if _, err := uc.Approve(context.Background(), entities.Caller{UserID: "a", Role: entities.RoleAdmin}, "t-1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestTransferUseCase_Approve_ReleasesClaimWhenTransferChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	transfers := mock_interfaces.NewMockITransferRepository(ctrl)
	machines := mock_interfaces.NewMockIMachineRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewTransferUseCase(transfers, machines, orders)

	pending := entities.Transfer{ID: "t-1", OrderID: "o-1", MachineID: "m-1", DealerID: "dealer-1", ToUserID: "cust-1", Status: entities.TransferStatusPending}
	previous := readyMachine("m-1", "Excavator", kmNorth(bangalore, 1))
	claimed := previous
	claimed.Status = entities.MachineStatusInTransit

	transfers.EXPECT().GetByID(gomock.Any(), "t-1").Return(pending, nil)
	orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Quantity: 1, Status: entities.OrderStatusPending}, nil)
	machines.EXPECT().ClaimIfReady(gomock.Any(), "m-1", gomock.Any()).Return(claimed, previous, nil)
	transfers.EXPECT().UpdateStatusIf(gomock.Any(), "t-1", entities.TransferStatusPending, entities.TransferStatusApproved, "Approved by Ravi").
		Return(entities.Transfer{}, nil)
	machines.EXPECT().ReleaseClaim(gomock.Any(), previous, "cust-1").Return(previous, nil)

	if _, err := uc.Approve(context.Background(), admin, "t-1"); !errors.Is(err, ErrTransferNotPending) {
		t.Fatalf("expected ErrTransferNotPending, got %v", err)
	}
}

func TestTransferUseCase_Approve_ClaimLostLeavesTransferUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	transfers := mock_interfaces.NewMockITransferRepository(ctrl)
	machines := mock_interfaces.NewMockIMachineRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewTransferUseCase(transfers, machines, orders)

	transfers.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Transfer{ID: "t-1", OrderID: "o-1", MachineID: "m-1", DealerID: "dealer-1", Status: entities.TransferStatusPending}, nil)
	orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)
	machines.EXPECT().ClaimIfReady(gomock.Any(), "m-1", gomock.Any()).Return(entities.Machine{}, entities.Machine{}, nil)

	if _, err := uc.Approve(context.Background(), admin, "t-1"); !errors.Is(err, ErrMachineNoLongerAvailable) {
		t.Fatalf("expected ErrMachineNoLongerAvailable, got %v", err)
	}
}

func TestTransferUseCase_Decline(t *testing.T) {
	t.Run("reason required", func(t *testing.T) {
		uc := NewTransferUseCase(nil, nil, nil)
		if _, err := uc.Decline(context.Background(), admin, "t-1", "  "); !errors.Is(err, ErrDeclineReasonRequired) {
			t.Fatalf("expected ErrDeclineReasonRequired, got %v", err)
		}
	})

	t.Run("declines without touching the machine", func(t *testing.T) {
		s := newMemStore()
		s.machines["m-1"] = readyMachine("m-1", "Excavator", kmNorth(bangalore, 3))
		seedPendingTransfer(s, "t-1", "o-1", "m-1", "cust-1", 1)
		uc := NewTransferUseCase(s.transferRepo(), s.machineRepo(), s.orderRepo())

		tr, err := uc.Decline(context.Background(), admin, "t-1", "machine needs service")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.Status != entities.TransferStatusDeclined || tr.AdminComments != "machine needs service" {
			t.Fatalf("unexpected transfer: %+v", tr)
		}
		if s.machines["m-1"].Status != entities.MachineStatusReady {
			t.Fatalf("machine should stay ready")
		}
		if _, err := uc.Decline(context.Background(), admin, "t-1", "again"); !errors.Is(err, ErrTransferNotPending) {
			t.Fatalf("expected ErrTransferNotPending on second decline, got %v", err)
		}
	})
}

func TestTransferUseCase_List(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewTransferUseCase(nil, nil, nil)
		if _, err := uc.List(context.Background(), admin, "unknown"); !errors.Is(err, ErrInvalidTransferStatus) {
			t.Fatalf("expected ErrInvalidTransferStatus, got %v", err)
		}
	})

	t.Run("scoped to dealership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transfers := mock_interfaces.NewMockITransferRepository(ctrl)
		uc := NewTransferUseCase(transfers, nil, nil)

		transfers.EXPECT().ListByDealerID(gomock.Any(), "dealer-1", entities.TransferStatusPending).Return([]entities.Transfer{{ID: "t-1"}}, nil)

		got, err := uc.List(context.Background(), admin, entities.TransferStatusPending)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}
