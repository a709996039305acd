package ledger

import (
	"sort"
	"time"

	"frontdesk/internal/pkg/errs"
)

// Snapshot is the persistence contract: one JSON document holding the whole
// entity graph by key. References (card→room, stay→customer/room) are stored
// as keys and re-linked on restore so identity is shared, never copied.
type Snapshot struct {
	Name             string                    `json:"name"`
	Customers        []CustomerRecord          `json:"customers"`
	Rooms            []RoomRecord              `json:"rooms"`
	Reservations     map[string]StayRecord     `json:"reservations"`
	ServiceProviders map[string]ProviderRecord `json:"service_providers"`
	Cards            []CardRecord              `json:"cards"`

	// Service collections are keyed by room number. Only active stays carry
	// services, and at most one active stay occupies a room, so the keying
	// is unambiguous.
	RoomServices        map[string][]ItemRecord `json:"room_services"`
	RoomPendingServices map[string][]ItemRecord `json:"room_pending_services"`
}

type CustomerRecord struct {
	Name       string  `json:"name"`
	CustomerID string  `json:"customer_id"`
	CardID     *string `json:"card_id,omitempty"`
}

type RoomRecord struct {
	RoomNumber string `json:"room_number"`
}

type StayRecord struct {
	CustomerID string     `json:"customer_id"`
	RoomNumber string     `json:"room_number"`
	StartDate  time.Time  `json:"start_date"`
	Length     int        `json:"length"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	IsActive   bool       `json:"is_active"`
}

type ProviderRecord struct {
	Name  string       `json:"name"`
	Items []ItemRecord `json:"items"`
}

type CardRecord struct {
	CardID     string `json:"card_id"`
	RoomNumber string `json:"room_number"`
	IsActive   bool   `json:"is_active"`
}

type ItemRecord struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Completed    bool    `json:"completed"`
	ProviderName string  `json:"provider_name,omitempty"`
}

// Snapshot captures the ledger's full state.
func (l *Ledger) Snapshot() *Snapshot {
	snap := &Snapshot{
		Name:                l.name,
		Reservations:        make(map[string]StayRecord),
		ServiceProviders:    make(map[string]ProviderRecord),
		RoomServices:        make(map[string][]ItemRecord),
		RoomPendingServices: make(map[string][]ItemRecord),
	}

	for _, roomNumber := range l.roomOrder {
		snap.Rooms = append(snap.Rooms, RoomRecord{RoomNumber: roomNumber})
	}

	for _, customerID := range l.customerOrder {
		customer := l.customers[customerID]
		record := CustomerRecord{Name: customer.name, CustomerID: customerID}
		if customer.card != nil {
			cardID := customer.card.cardID
			record.CardID = &cardID
		}
		snap.Customers = append(snap.Customers, record)
	}

	for _, card := range l.cards {
		snap.Cards = append(snap.Cards, CardRecord{
			CardID:     card.cardID,
			RoomNumber: card.room.roomNumber,
			IsActive:   card.isActive,
		})
	}

	for name, provider := range l.providers {
		record := ProviderRecord{Name: name, Items: make([]ItemRecord, 0, len(provider.items))}
		for _, item := range provider.items {
			record.Items = append(record.Items, itemRecord(item))
		}
		snap.ServiceProviders[name] = record
	}

	for customerID, stay := range l.reservations {
		snap.Reservations[customerID] = StayRecord{
			CustomerID: customerID,
			RoomNumber: stay.room.roomNumber,
			StartDate:  stay.startDate,
			Length:     stay.length,
			EndDate:    stay.endDate,
			IsActive:   stay.isActive,
		}
		if !stay.isActive {
			continue
		}
		roomNumber := stay.room.roomNumber
		snap.RoomServices[roomNumber] = itemRecords(stay.serviceRecord)
		snap.RoomPendingServices[roomNumber] = itemRecords(stay.pendingServices)
	}

	return snap
}

// Restore rebuilds a ledger from a snapshot, re-linking every reference by
// key. Provider search order is not representable in a JSON object, so
// providers are restored in name order.
func Restore(snap *Snapshot) (*Ledger, error) {
	l := New(snap.Name)

	for _, record := range snap.Rooms {
		l.AddRoom(record.RoomNumber)
	}

	providerNames := make([]string, 0, len(snap.ServiceProviders))
	for name := range snap.ServiceProviders {
		providerNames = append(providerNames, name)
	}
	sort.Strings(providerNames)
	for _, name := range providerNames {
		provider := l.RegisterProvider(name)
		for _, record := range snap.ServiceProviders[name].Items {
			item := NewItemService(record.Name, record.Price)
			provider.AddItem(item)
			if record.Completed {
				item.MarkCompleted()
			}
		}
	}

	for _, record := range snap.Cards {
		room, ok := l.rooms[record.RoomNumber]
		if !ok {
			return nil, errs.Mark(errs.New("card "+record.CardID+" references unknown room "+record.RoomNumber), ErrRoomNotFound)
		}
		card := NewCard(record.CardID, room)
		if record.IsActive {
			card.Activate()
		}
		l.cards = append(l.cards, card)
	}

	for _, record := range snap.Customers {
		customer := NewCustomer(record.Name, record.CustomerID)
		if record.CardID != nil {
			idx, ok := l.findCard(*record.CardID)
			if !ok {
				return nil, errs.Mark(errs.New("customer "+record.CustomerID+" references unknown card "+*record.CardID), ErrCardNotFound)
			}
			customer.assignCard(l.cards[idx])
		}
		l.customers[record.CustomerID] = customer
		l.customerOrder = append(l.customerOrder, record.CustomerID)
	}

	for customerID, record := range snap.Reservations {
		customer, ok := l.customers[customerID]
		if !ok {
			return nil, errs.Mark(errs.New("reservation references unknown customer "+customerID), ErrCustomerNotFound)
		}
		room, ok := l.rooms[record.RoomNumber]
		if !ok {
			return nil, errs.Mark(errs.New("reservation for "+customerID+" references unknown room "+record.RoomNumber), ErrRoomNotFound)
		}
		stay := newStay(customer, room, record.StartDate, record.Length)
		stay.endDate = record.EndDate
		stay.isActive = record.IsActive
		customer.assignStay(stay)
		l.reservations[customerID] = stay

		if stay.isActive {
			stay.serviceRecord = restoreItems(snap.RoomServices[record.RoomNumber])
			stay.pendingServices = restoreItems(snap.RoomPendingServices[record.RoomNumber])
		}
	}

	return l, nil
}

func itemRecord(item *ItemService) ItemRecord {
	return ItemRecord{
		Name:         item.name,
		Price:        item.price,
		Completed:    item.completed,
		ProviderName: item.providerName,
	}
}

func itemRecords(items []*ItemService) []ItemRecord {
	records := make([]ItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, itemRecord(item))
	}
	return records
}

func restoreItems(records []ItemRecord) []*ItemService {
	if len(records) == 0 {
		return nil
	}
	items := make([]*ItemService, 0, len(records))
	for _, record := range records {
		item := NewItemService(record.Name, record.Price)
		item.providerName = record.ProviderName
		if record.Completed {
			item.MarkCompleted()
		}
		items = append(items, item)
	}
	return items
}
