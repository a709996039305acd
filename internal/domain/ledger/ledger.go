package ledger

import (
	"fmt"
	"time"
)

// Ledger is the front desk's root aggregate. It owns every customer, room,
// card, provider and reservation, and is the only mutator of cross-entity
// state. Callers are expected to serialize access; the ledger itself holds
// no lock.
type Ledger struct {
	name string

	customers     map[string]*Customer
	customerOrder []string

	rooms     map[string]*Room
	roomOrder []string

	// reservations holds one entry per customer with a non-discarded stay,
	// pre-check-in or active.
	reservations map[string]*Stay

	providers     map[string]*ServiceProvider
	providerOrder []string

	cards []*Card
}

func New(name string) *Ledger {
	return &Ledger{
		name:         name,
		customers:    make(map[string]*Customer),
		rooms:        make(map[string]*Room),
		reservations: make(map[string]*Stay),
		providers:    make(map[string]*ServiceProvider),
	}
}

func (l *Ledger) Name() string { return l.name }

// ---------------------------------------------------------------------------
// Setup: rooms and providers

func (l *Ledger) AddRoom(roomNumber string) *Room {
	if room, ok := l.rooms[roomNumber]; ok {
		return room
	}
	room := NewRoom(roomNumber)
	l.rooms[roomNumber] = room
	l.roomOrder = append(l.roomOrder, roomNumber)
	return room
}

func (l *Ledger) Room(roomNumber string) (*Room, bool) {
	room, ok := l.rooms[roomNumber]
	return room, ok
}

func (l *Ledger) Rooms() []*Room {
	rooms := make([]*Room, 0, len(l.roomOrder))
	for _, number := range l.roomOrder {
		rooms = append(rooms, l.rooms[number])
	}
	return rooms
}

func (l *Ledger) RegisterProvider(name string) *ServiceProvider {
	if provider, ok := l.providers[name]; ok {
		return provider
	}
	provider := NewServiceProvider(name)
	l.providers[name] = provider
	l.providerOrder = append(l.providerOrder, name)
	return provider
}

func (l *Ledger) Provider(name string) (*ServiceProvider, bool) {
	provider, ok := l.providers[name]
	return provider, ok
}

// Providers returns the registry in registration order, which is also the
// service-lookup search order.
func (l *Ledger) Providers() []*ServiceProvider {
	providers := make([]*ServiceProvider, 0, len(l.providerOrder))
	for _, name := range l.providerOrder {
		providers = append(providers, l.providers[name])
	}
	return providers
}

func (l *Ledger) Customer(customerID string) (*Customer, bool) {
	customer, ok := l.customers[customerID]
	return customer, ok
}

// ---------------------------------------------------------------------------
// Reservations

// CreateReservation books a room for a customer, creating the customer on
// first contact. A reservation already held by the customer is overwritten;
// the previous stay is returned so the caller can surface the replacement.
func (l *Ledger) CreateReservation(customerID, name, roomNumber string, length int, now time.Time) (*Stay, *Stay, error) {
	if length <= 0 {
		return nil, nil, ErrInvalidStayLength
	}
	room, ok := l.rooms[roomNumber]
	if !ok {
		return nil, nil, ErrRoomNotFound
	}

	customer, ok := l.customers[customerID]
	if !ok {
		customer = NewCustomer(name, customerID)
		l.customers[customerID] = customer
		l.customerOrder = append(l.customerOrder, customerID)
	}

	replaced := l.reservations[customerID]
	stay := newStay(customer, room, now, length)
	customer.assignStay(stay)
	l.reservations[customerID] = stay
	return stay, replaced, nil
}

// UpdateReservation replaces the given fields of a not-yet-active
// reservation. Checked-in stays are immutable outside the check-in/out flow.
func (l *Ledger) UpdateReservation(customerID string, roomNumber *string, length *int) error {
	stay, ok := l.reservations[customerID]
	if !ok {
		return ErrReservationNotFound
	}
	if stay.isActive {
		return ErrReservationActive
	}
	if length != nil && *length <= 0 {
		return ErrInvalidStayLength
	}

	if roomNumber != nil {
		room, ok := l.rooms[*roomNumber]
		if !ok {
			return ErrRoomNotFound
		}
		stay.room = room
	}
	if length != nil {
		stay.length = *length
	}
	return nil
}

func (l *Ledger) DeleteReservation(customerID string) error {
	stay, ok := l.reservations[customerID]
	if !ok {
		return ErrReservationNotFound
	}
	if stay.isActive {
		return ErrReservationActive
	}
	delete(l.reservations, customerID)
	if customer, ok := l.customers[customerID]; ok && customer.stay == stay {
		customer.assignStay(nil)
	}
	return nil
}

// PendingReservations lists reservations awaiting check-in, in customer
// registration order.
func (l *Ledger) PendingReservations() []ReservationView {
	var views []ReservationView
	for _, customerID := range l.customerOrder {
		stay, ok := l.reservations[customerID]
		if !ok || stay.isActive {
			continue
		}
		views = append(views, l.reservationView(customerID, stay))
	}
	return views
}

// ActiveStays lists checked-in customers in registration order.
func (l *Ledger) ActiveStays() []ReservationView {
	var views []ReservationView
	for _, customerID := range l.customerOrder {
		stay, ok := l.reservations[customerID]
		if !ok || !stay.isActive {
			continue
		}
		views = append(views, l.reservationView(customerID, stay))
	}
	return views
}

func (l *Ledger) reservationView(customerID string, stay *Stay) ReservationView {
	return ReservationView{
		CustomerID:   customerID,
		CustomerName: stay.customer.name,
		RoomNumber:   stay.room.roomNumber,
		Length:       stay.length,
		StartDate:    stay.startDate,
		IsActive:     stay.isActive,
	}
}

// ---------------------------------------------------------------------------
// Check-in / check-out

// CheckIn activates a reserved stay, issues a fresh card for the stay's room
// and hands it to the customer. At most one active stay may occupy a room.
func (l *Ledger) CheckIn(customerID string, paymentDone bool, now time.Time) (*Card, error) {
	customer, ok := l.customers[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	stay, ok := l.reservations[customerID]
	if !ok {
		return nil, ErrReservationNotFound
	}
	if !paymentDone {
		return nil, ErrPaymentRequired
	}
	if stay.isActive {
		return nil, ErrAlreadyCheckedIn
	}
	if occupant := l.activeStayOnRoom(stay.room); occupant != nil {
		return nil, ErrRoomOccupied
	}

	card := NewCard(l.nextCardID(customerID, stay.room), stay.room)
	card.Activate()
	l.cards = append(l.cards, card)
	customer.assignCard(card)

	stay.begin(now)
	return card, nil
}

// CheckOut ends the active stay: all cards of the stay's room are
// deactivated and removed, the reservation entry is discarded and the
// accumulated service charges are reported (not collected).
func (l *Ledger) CheckOut(customerID string, now time.Time) (*CheckOutSummary, error) {
	customer, ok := l.customers[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	stay := customer.stay
	if stay == nil || !stay.isActive {
		return nil, ErrNotCheckedIn
	}
	if !l.hasActiveCardForRoom(stay.room) {
		return nil, ErrNoActiveCard
	}

	summary := &CheckOutSummary{
		CustomerID:     customerID,
		CustomerName:   customer.name,
		RoomNumber:     stay.room.roomNumber,
		CheckedInAt:    stay.startDate,
		CheckedOutAt:   now,
		ServiceCharges: stay.ServiceCharges(),
	}

	l.retireCardsForRoom(stay.room)
	stay.end(now)
	delete(l.reservations, customerID)
	return summary, nil
}

func (l *Ledger) activeStayOnRoom(room *Room) *Stay {
	for _, customerID := range l.customerOrder {
		customer := l.customers[customerID]
		if customer.stay != nil && customer.stay.isActive && customer.stay.room.Equal(room) {
			return customer.stay
		}
	}
	return nil
}

func (l *Ledger) hasActiveCardForRoom(room *Room) bool {
	for _, card := range l.cards {
		if card.room.Equal(room) && card.isActive {
			return true
		}
	}
	return false
}

// retireCardsForRoom deactivates and removes every card bound to the room
// and clears it from whichever customer holds it.
func (l *Ledger) retireCardsForRoom(room *Room) {
	kept := l.cards[:0]
	for _, card := range l.cards {
		if !card.room.Equal(room) {
			kept = append(kept, card)
			continue
		}
		card.Deactivate()
		for _, customer := range l.customers {
			if customer.card == card {
				customer.clearCard()
			}
		}
	}
	l.cards = kept
}

// nextCardID follows the desk's issuance scheme: CARD-<customer>-<n>, where
// n counts cards currently bound to the room plus one.
func (l *Ledger) nextCardID(customerID string, room *Room) string {
	count := 0
	for _, card := range l.cards {
		if card.room.Equal(room) {
			count++
		}
	}
	return fmt.Sprintf("CARD-%s-%d", customerID, count+1)
}

// ---------------------------------------------------------------------------
// Services

// RequestService queues a catalog service for the room's active stay. The
// providers are searched in registration order; the first item with a
// matching name wins.
func (l *Ledger) RequestService(roomNumber, serviceName string) (*ItemService, error) {
	room, ok := l.rooms[roomNumber]
	if !ok {
		return nil, ErrRoomNotFound
	}
	stay := l.activeStayOnRoom(room)
	if stay == nil {
		return nil, ErrNotCheckedIn
	}

	for _, provider := range l.Providers() {
		if item, ok := provider.FindItem(serviceName); ok {
			requested := item.requestedCopy()
			stay.addPendingService(requested)
			return requested, nil
		}
	}
	return nil, ErrServiceNotFound
}

// CompleteService fulfils the first pending item with the given name on the
// room's active stay, provided it belongs to the acting provider. Completing
// the same service twice fails with ErrServiceNotFound: the first completion
// moved the item to the service record.
func (l *Ledger) CompleteService(roomNumber, serviceName, providerName string) (*ItemService, error) {
	room, ok := l.rooms[roomNumber]
	if !ok {
		return nil, ErrRoomNotFound
	}
	stay := l.activeStayOnRoom(room)
	if stay == nil {
		return nil, ErrNotCheckedIn
	}

	nameMatched := false
	for i, item := range stay.pendingServices {
		if item.name != serviceName || item.completed {
			continue
		}
		nameMatched = true
		if item.providerName != providerName {
			continue
		}
		return stay.completePending(i), nil
	}
	if nameMatched {
		return nil, ErrProviderMismatch
	}
	return nil, ErrServiceNotFound
}

// PendingServicesFor lists every pending, uncompleted item across all rooms
// belonging to the given provider.
func (l *Ledger) PendingServicesFor(providerName string) []PendingService {
	var pending []PendingService
	for _, customerID := range l.customerOrder {
		stay, ok := l.reservations[customerID]
		if !ok || !stay.isActive {
			continue
		}
		for _, item := range stay.pendingServices {
			if item.completed || item.providerName != providerName {
				continue
			}
			pending = append(pending, PendingService{
				RoomNumber:  stay.room.roomNumber,
				ServiceName: item.name,
				Price:       item.price,
				Provider:    item.providerName,
			})
		}
	}
	return pending
}

// ServiceRecord returns the completed services of the customer's current or
// most recent stay.
func (l *Ledger) ServiceRecord(customerID string) (string, []ServiceRecordLine, float64, error) {
	customer, ok := l.customers[customerID]
	if !ok {
		return "", nil, 0, ErrCustomerNotFound
	}
	stay := customer.stay
	if stay == nil {
		return "", nil, 0, ErrNotCheckedIn
	}

	lines := make([]ServiceRecordLine, 0, len(stay.serviceRecord))
	for _, item := range stay.serviceRecord {
		lines = append(lines, ServiceRecordLine{
			ServiceName: item.name,
			Price:       item.price,
			Provider:    item.providerName,
		})
	}
	return stay.room.roomNumber, lines, stay.ServiceCharges(), nil
}

// ---------------------------------------------------------------------------
// Cards

// AddCard registers an inactive card for a room. Card IDs are unique across
// the ledger.
func (l *Ledger) AddCard(roomNumber, cardID string) (*Card, error) {
	room, ok := l.rooms[roomNumber]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if _, ok := l.findCard(cardID); ok {
		return nil, ErrCardExists
	}
	card := NewCard(cardID, room)
	l.cards = append(l.cards, card)
	return card, nil
}

// DeleteCard removes the card and clears it from any customer holding it.
func (l *Ledger) DeleteCard(cardID string) error {
	idx, ok := l.findCard(cardID)
	if !ok {
		return ErrCardNotFound
	}
	card := l.cards[idx]
	for _, customer := range l.customers {
		if customer.card == card {
			customer.clearCard()
		}
	}
	l.cards = append(l.cards[:idx], l.cards[idx+1:]...)
	return nil
}

func (l *Ledger) ActivateCard(cardID string) error {
	idx, ok := l.findCard(cardID)
	if !ok {
		return ErrCardNotFound
	}
	l.cards[idx].Activate()
	return nil
}

func (l *Ledger) DeactivateCard(cardID string) error {
	idx, ok := l.findCard(cardID)
	if !ok {
		return ErrCardNotFound
	}
	l.cards[idx].Deactivate()
	return nil
}

func (l *Ledger) CardsForRoom(roomNumber string) ([]CardView, error) {
	room, ok := l.rooms[roomNumber]
	if !ok {
		return nil, ErrRoomNotFound
	}
	var views []CardView
	for _, card := range l.cards {
		if card.room.Equal(room) {
			views = append(views, l.cardView(card))
		}
	}
	return views, nil
}

func (l *Ledger) Cards() []*Card {
	return l.cards
}

func (l *Ledger) findCard(cardID string) (int, bool) {
	for i, card := range l.cards {
		if card.cardID == cardID {
			return i, true
		}
	}
	return 0, false
}

func (l *Ledger) cardView(card *Card) CardView {
	view := CardView{
		CardID:     card.cardID,
		RoomNumber: card.room.roomNumber,
		IsActive:   card.isActive,
	}
	for _, customerID := range l.customerOrder {
		customer := l.customers[customerID]
		if customer.card == card {
			view.HolderID = customer.customerID
			view.HolderName = customer.name
			break
		}
	}
	return view
}

// ---------------------------------------------------------------------------
// Reporting

// RoomOccupancyDetails reports, room by room, the occupying customer, every
// card bound to the room and the names of its pending services.
func (l *Ledger) RoomOccupancyDetails() []RoomOccupancy {
	details := make([]RoomOccupancy, 0, len(l.roomOrder))
	for _, roomNumber := range l.roomOrder {
		room := l.rooms[roomNumber]
		occupancy := RoomOccupancy{RoomNumber: roomNumber}

		for _, card := range l.cards {
			if card.room.Equal(room) {
				occupancy.Cards = append(occupancy.Cards, l.cardView(card))
			}
		}

		if stay := l.activeStayOnRoom(room); stay != nil {
			occupancy.Occupied = true
			occupancy.CustomerID = stay.customer.customerID
			occupancy.CustomerName = stay.customer.name
			for _, item := range stay.pendingServices {
				occupancy.PendingServices = append(occupancy.PendingServices, item.name)
			}
		}

		details = append(details, occupancy)
	}
	return details
}
