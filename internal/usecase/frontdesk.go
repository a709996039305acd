package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"frontdesk/internal/domain/ledger"
	"frontdesk/internal/domain/staff"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
)

var (
	ErrSnapshotFailed     = errs.New("ledger snapshot could not be persisted")
	ErrNotServiceProvider = errs.New("role has no service provider")
)

// SnapshotStore persists the full ledger state after every mutation.
type SnapshotStore interface {
	Save(snap *ledger.Snapshot) error
}

// CompletionLog records service fulfilment notes. Append failures are
// surfaced as warnings, never as command failures.
type CompletionLog interface {
	Append(at time.Time, roomNumber, serviceName, provider, details string) error
}

type FrontDeskUseCase interface {
	CreateReservation(customerID, customerName, roomNumber string, length int) (ledger.ReservationView, error)
	UpdateReservation(customerID string, roomNumber *string, length *int) error
	DeleteReservation(customerID string) error
	PendingReservations() []ledger.ReservationView
	CheckedInCustomers() []ledger.ReservationView

	CheckIn(customerID string, paymentDone bool) (ledger.CardView, error)
	CheckOut(customerID string) (*ledger.CheckOutSummary, error)

	RequestService(roomNumber, serviceName string) error
	CompleteService(role staff.Role, roomNumber, serviceName, details string) error
	PendingServices(role staff.Role) ([]ledger.PendingService, error)

	GenerateServiceRecord(customerID string) (string, error)
	RoomOccupancyDetails() []ledger.RoomOccupancy

	AddCardToRoom(roomNumber, cardID string) (ledger.CardView, error)
	CardsForRoom(roomNumber string) ([]ledger.CardView, error)
	DeleteCard(cardID string) error
	ActivateCard(cardID string) error
	DeactivateCard(cardID string) error
}

// frontDeskUseCaseImpl serializes every command and query behind a single
// mutex: the ledger's invariants (notably the room-conflict check at
// check-in) are read-then-write and not safe under concurrent mutation.
type frontDeskUseCaseImpl struct {
	mu            sync.Mutex
	ledger        *ledger.Ledger
	store         SnapshotStore
	completionLog CompletionLog
	clock         clock.Clock
}

func NewFrontDeskUseCase(l *ledger.Ledger, store SnapshotStore, completionLog CompletionLog, clk clock.Clock) FrontDeskUseCase {
	return &frontDeskUseCaseImpl{
		ledger:        l,
		store:         store,
		completionLog: completionLog,
		clock:         clk,
	}
}

// persist snapshots the ledger after a successful mutation. A write failure
// propagates to the caller; the in-memory state is already mutated, so the
// next successful command re-persists it.
func (f *frontDeskUseCaseImpl) persist() error {
	if err := f.store.Save(f.ledger.Snapshot()); err != nil {
		return errs.Mark(err, ErrSnapshotFailed)
	}
	return nil
}

func (f *frontDeskUseCaseImpl) CreateReservation(customerID, customerName, roomNumber string, length int) (ledger.ReservationView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stay, replaced, err := f.ledger.CreateReservation(customerID, customerName, roomNumber, length, f.clock.Now())
	if err != nil {
		return ledger.ReservationView{}, err
	}
	if replaced != nil {
		// Overwriting an existing reservation mirrors the desk tool's
		// historical behavior; it is flagged as a likely latent bug, so
		// make the replacement visible at least in the logs.
		slog.Warn("reservation overwritten",
			"customer_id", customerID,
			"previous_room", replaced.Room().Number(),
			"new_room", roomNumber)
	}

	view := ledger.ReservationView{
		CustomerID:   customerID,
		CustomerName: stay.Customer().Name(),
		RoomNumber:   stay.Room().Number(),
		Length:       stay.Length(),
		StartDate:    stay.StartDate(),
		IsActive:     stay.IsActive(),
	}
	return view, f.persist()
}

func (f *frontDeskUseCaseImpl) UpdateReservation(customerID string, roomNumber *string, length *int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ledger.UpdateReservation(customerID, roomNumber, length); err != nil {
		return err
	}
	return f.persist()
}

func (f *frontDeskUseCaseImpl) DeleteReservation(customerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ledger.DeleteReservation(customerID); err != nil {
		return err
	}
	return f.persist()
}

func (f *frontDeskUseCaseImpl) PendingReservations() []ledger.ReservationView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.PendingReservations()
}

func (f *frontDeskUseCaseImpl) CheckedInCustomers() []ledger.ReservationView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.ActiveStays()
}

func (f *frontDeskUseCaseImpl) CheckIn(customerID string, paymentDone bool) (ledger.CardView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	card, err := f.ledger.CheckIn(customerID, paymentDone, f.clock.Now())
	if err != nil {
		return ledger.CardView{}, err
	}

	view := ledger.CardView{
		CardID:     card.ID(),
		RoomNumber: card.Room().Number(),
		IsActive:   card.IsActive(),
		HolderID:   customerID,
	}
	if customer, ok := f.ledger.Customer(customerID); ok {
		view.HolderName = customer.Name()
	}
	return view, f.persist()
}

func (f *frontDeskUseCaseImpl) CheckOut(customerID string) (*ledger.CheckOutSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	summary, err := f.ledger.CheckOut(customerID, f.clock.Now())
	if err != nil {
		return nil, err
	}
	return summary, f.persist()
}

func (f *frontDeskUseCaseImpl) RequestService(roomNumber, serviceName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.ledger.RequestService(roomNumber, serviceName); err != nil {
		return err
	}
	return f.persist()
}

func (f *frontDeskUseCaseImpl) CompleteService(role staff.Role, roomNumber, serviceName, details string) error {
	provider, ok := staff.ProviderFor(role)
	if !ok {
		return ErrNotServiceProvider
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	item, err := f.ledger.CompleteService(roomNumber, serviceName, provider)
	if err != nil {
		return err
	}

	if logErr := f.completionLog.Append(f.clock.Now(), roomNumber, item.Name(), provider, details); logErr != nil {
		slog.Warn("service completion log append failed", "error", logErr)
	}
	return f.persist()
}

func (f *frontDeskUseCaseImpl) PendingServices(role staff.Role) ([]ledger.PendingService, error) {
	provider, ok := staff.ProviderFor(role)
	if !ok {
		return nil, ErrNotServiceProvider
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.PendingServicesFor(provider), nil
}

// GenerateServiceRecord renders the desk's printable record of completed
// services for the customer's current or most recent stay. A customer with
// no stay yields an informational message, not an error.
func (f *frontDeskUseCaseImpl) GenerateServiceRecord(customerID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	roomNumber, lines, total, err := f.ledger.ServiceRecord(customerID)
	if err != nil {
		if errors.Is(err, ledger.ErrCustomerNotFound) || errors.Is(err, ledger.ErrNotCheckedIn) {
			return fmt.Sprintf("Customer with ID %s is not checked in or has no active stay.", customerID), nil
		}
		return "", err
	}

	customerName := customerID
	if customer, ok := f.ledger.Customer(customerID); ok {
		customerName = customer.Name()
	}

	if len(lines) == 0 {
		return fmt.Sprintf("No services used by Customer %s in Room %s.", customerName, roomNumber), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Service Record for Customer %s (ID: %s) ---\n", customerName, customerID)
	fmt.Fprintf(&b, "Room: %s\n", roomNumber)
	for _, line := range lines {
		fmt.Fprintf(&b, "- %s: $%.2f\n", line.ServiceName, line.Price)
	}
	b.WriteString("-------------------------------------------------------------------\n")
	fmt.Fprintf(&b, "Total Service Charges: $%.2f\n", total)
	return b.String(), nil
}

func (f *frontDeskUseCaseImpl) RoomOccupancyDetails() []ledger.RoomOccupancy {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.RoomOccupancyDetails()
}

func (f *frontDeskUseCaseImpl) AddCardToRoom(roomNumber, cardID string) (ledger.CardView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	card, err := f.ledger.AddCard(roomNumber, cardID)
	if err != nil {
		return ledger.CardView{}, err
	}
	view := ledger.CardView{
		CardID:     card.ID(),
		RoomNumber: card.Room().Number(),
		IsActive:   card.IsActive(),
	}
	return view, f.persist()
}

func (f *frontDeskUseCaseImpl) CardsForRoom(roomNumber string) ([]ledger.CardView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.CardsForRoom(roomNumber)
}

func (f *frontDeskUseCaseImpl) DeleteCard(cardID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ledger.DeleteCard(cardID); err != nil {
		return err
	}
	return f.persist()
}

func (f *frontDeskUseCaseImpl) ActivateCard(cardID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ledger.ActivateCard(cardID); err != nil {
		return err
	}
	return f.persist()
}

func (f *frontDeskUseCaseImpl) DeactivateCard(cardID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ledger.DeactivateCard(cardID); err != nil {
		return err
	}
	return f.persist()
}
