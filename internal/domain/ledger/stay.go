package ledger

import "time"

// Stay is one customer's reservation/occupancy of one room. It is created
// inactive by a reservation, activated exactly once at check-in and ended
// exactly once at check-out; both transitions are driven by the Ledger.
type Stay struct {
	customer  *Customer
	room      *Room
	startDate time.Time
	length    int
	endDate   *time.Time
	isActive  bool

	serviceRecord   []*ItemService
	pendingServices []*ItemService
}

func newStay(customer *Customer, room *Room, startDate time.Time, length int) *Stay {
	return &Stay{
		customer:  customer,
		room:      room,
		startDate: startDate,
		length:    length,
	}
}

func (s *Stay) Customer() *Customer  { return s.customer }
func (s *Stay) Room() *Room          { return s.room }
func (s *Stay) StartDate() time.Time { return s.startDate }
func (s *Stay) Length() int          { return s.length }
func (s *Stay) EndDate() *time.Time  { return s.endDate }
func (s *Stay) IsActive() bool       { return s.isActive }

func (s *Stay) ServiceRecord() []*ItemService   { return s.serviceRecord }
func (s *Stay) PendingServices() []*ItemService { return s.pendingServices }

// ServiceCharges totals the completed services of the stay. Pending items
// are not billed.
func (s *Stay) ServiceCharges() float64 {
	var total float64
	for _, item := range s.serviceRecord {
		total += item.price
	}
	return total
}

// begin marks the stay active and pins the start date to the actual
// check-in moment.
func (s *Stay) begin(at time.Time) {
	s.startDate = at
	s.isActive = true
}

func (s *Stay) end(at time.Time) {
	s.endDate = &at
	s.isActive = false
}

func (s *Stay) addPendingService(item *ItemService) {
	s.pendingServices = append(s.pendingServices, item)
}

// completePending marks the pending item at index i completed and relocates
// it to the service record.
func (s *Stay) completePending(i int) *ItemService {
	item := s.pendingServices[i]
	item.MarkCompleted()
	s.pendingServices = append(s.pendingServices[:i], s.pendingServices[i+1:]...)
	s.serviceRecord = append(s.serviceRecord, item)
	return item
}
