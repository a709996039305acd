//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"frontdesk/internal/domain/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestLedger() *ledger.Ledger {
	l := ledger.New("Front Desk")
	l.AddRoom("101")
	l.AddRoom("102")
	l.AddRoom("103")

	hotel := l.RegisterProvider("Hotel")
	hotel.AddItem(ledger.NewItemService("Hot Beverage", 2.50))
	hotel.AddItem(ledger.NewItemService("Traditional Breakfast", 15.00))

	support := l.RegisterProvider("RoomSupport")
	support.AddItem(ledger.NewItemService("Fresh Towels", 5.00))
	support.AddItem(ledger.NewItemService("Technical Support", 20.00))

	return l
}

func checkIn(t *testing.T, l *ledger.Ledger, customerID, name, room string) *ledger.Card {
	t.Helper()
	_, _, err := l.CreateReservation(customerID, name, room, 2, testTime)
	require.NoError(t, err)
	card, err := l.CheckIn(customerID, true, testTime)
	require.NoError(t, err)
	return card
}

func TestCreateReservation(t *testing.T) {
	t.Run("books a room and registers the customer", func(t *testing.T) {
		l := newTestLedger()

		stay, replaced, err := l.CreateReservation("C1", "Ada", "101", 3, testTime)
		require.NoError(t, err)
		require.NotNil(t, stay)
		assert.Nil(t, replaced)

		assert.Equal(t, "101", stay.Room().Number())
		assert.Equal(t, 3, stay.Length())
		assert.False(t, stay.IsActive())

		customer, ok := l.Customer("C1")
		require.True(t, ok)
		assert.Equal(t, "Ada", customer.Name())
	})

	t.Run("rejects unknown room", func(t *testing.T) {
		l := newTestLedger()
		_, _, err := l.CreateReservation("C1", "Ada", "999", 3, testTime)
		require.ErrorIs(t, err, ledger.ErrRoomNotFound)
	})

	t.Run("rejects non-positive length", func(t *testing.T) {
		l := newTestLedger()
		_, _, err := l.CreateReservation("C1", "Ada", "101", 0, testTime)
		require.ErrorIs(t, err, ledger.ErrInvalidStayLength)
	})

	t.Run("rebooking overwrites and returns the replaced stay", func(t *testing.T) {
		l := newTestLedger()
		first, _, err := l.CreateReservation("C1", "Ada", "101", 3, testTime)
		require.NoError(t, err)

		second, replaced, err := l.CreateReservation("C1", "Ada", "102", 1, testTime)
		require.NoError(t, err)
		assert.Same(t, first, replaced)
		assert.Equal(t, "102", second.Room().Number())

		views := l.PendingReservations()
		require.Len(t, views, 1)
		assert.Equal(t, "102", views[0].RoomNumber)
	})
}

func TestUpdateReservation(t *testing.T) {
	roomPtr := func(s string) *string { return &s }
	lenPtr := func(n int) *int { return &n }

	t.Run("updates room and length independently", func(t *testing.T) {
		l := newTestLedger()
		_, _, err := l.CreateReservation("C1", "Ada", "101", 3, testTime)
		require.NoError(t, err)

		require.NoError(t, l.UpdateReservation("C1", roomPtr("102"), nil))
		require.NoError(t, l.UpdateReservation("C1", nil, lenPtr(5)))

		views := l.PendingReservations()
		require.Len(t, views, 1)
		assert.Equal(t, "102", views[0].RoomNumber)
		assert.Equal(t, 5, views[0].Length)
	})

	t.Run("error cases", func(t *testing.T) {
		cases := []struct {
			name  string
			setup func(l *ledger.Ledger)
			room  *string
			len   *int
			errIs error
		}{
			{
				name:  "unknown reservation",
				setup: func(*ledger.Ledger) {},
				room:  roomPtr("102"),
				errIs: ledger.ErrReservationNotFound,
			},
			{
				name: "unknown room",
				setup: func(l *ledger.Ledger) {
					_, _, err := l.CreateReservation("C1", "Ada", "101", 3, testTime)
					require.NoError(t, err)
				},
				room:  roomPtr("999"),
				errIs: ledger.ErrRoomNotFound,
			},
			{
				name: "non-positive length",
				setup: func(l *ledger.Ledger) {
					_, _, err := l.CreateReservation("C1", "Ada", "101", 3, testTime)
					require.NoError(t, err)
				},
				len:   lenPtr(-1),
				errIs: ledger.ErrInvalidStayLength,
			},
			{
				name: "active stay is immutable",
				setup: func(l *ledger.Ledger) {
					checkIn(t, l, "C1", "Ada", "101")
				},
				len:   lenPtr(5),
				errIs: ledger.ErrReservationActive,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				l := newTestLedger()
				c.setup(l)
				require.ErrorIs(t, l.UpdateReservation("C1", c.room, c.len), c.errIs)
			})
		}
	})
}

func TestDeleteReservation(t *testing.T) {
	t.Run("removes a pending reservation", func(t *testing.T) {
		l := newTestLedger()
		_, _, err := l.CreateReservation("C1", "Ada", "101", 3, testTime)
		require.NoError(t, err)

		require.NoError(t, l.DeleteReservation("C1"))
		assert.Empty(t, l.PendingReservations())
		require.ErrorIs(t, l.DeleteReservation("C1"), ledger.ErrReservationNotFound)
	})

	t.Run("refuses to delete an active stay", func(t *testing.T) {
		l := newTestLedger()
		checkIn(t, l, "C1", "Ada", "101")
		require.ErrorIs(t, l.DeleteReservation("C1"), ledger.ErrReservationActive)
	})
}

func TestCheckIn(t *testing.T) {
	t.Run("activates the stay and issues an active card", func(t *testing.T) {
		l := newTestLedger()
		_, _, err := l.CreateReservation("C1", "Ada", "101", 2, testTime)
		require.NoError(t, err)

		at := testTime.Add(24 * time.Hour)
		card, err := l.CheckIn("C1", true, at)
		require.NoError(t, err)

		assert.Equal(t, "CARD-C1-1", card.ID())
		assert.True(t, card.IsActive())
		assert.Equal(t, "101", card.Room().Number())

		active := l.ActiveStays()
		require.Len(t, active, 1)
		assert.Equal(t, "C1", active[0].CustomerID)
		assert.Equal(t, at, active[0].StartDate)
		assert.Empty(t, l.PendingReservations())
	})

	t.Run("card sequence counts cards bound to the room", func(t *testing.T) {
		l := newTestLedger()
		_, err := l.AddCard("101", "SPARE-1")
		require.NoError(t, err)

		card := checkIn(t, l, "C1", "Ada", "101")
		assert.Equal(t, "CARD-C1-2", card.ID())
	})

	t.Run("error cases", func(t *testing.T) {
		cases := []struct {
			name    string
			setup   func(l *ledger.Ledger)
			id      string
			payment bool
			errIs   error
		}{
			{
				name:    "unknown customer",
				setup:   func(*ledger.Ledger) {},
				id:      "C9",
				payment: true,
				errIs:   ledger.ErrCustomerNotFound,
			},
			{
				name: "payment not done",
				setup: func(l *ledger.Ledger) {
					_, _, err := l.CreateReservation("C1", "Ada", "101", 2, testTime)
					require.NoError(t, err)
				},
				id:    "C1",
				errIs: ledger.ErrPaymentRequired,
			},
			{
				name: "already checked in",
				setup: func(l *ledger.Ledger) {
					checkIn(t, l, "C1", "Ada", "101")
				},
				id:      "C1",
				payment: true,
				errIs:   ledger.ErrAlreadyCheckedIn,
			},
			{
				name: "room occupied by another active stay",
				setup: func(l *ledger.Ledger) {
					checkIn(t, l, "C1", "Ada", "101")
					_, _, err := l.CreateReservation("C2", "Ben", "101", 2, testTime)
					require.NoError(t, err)
				},
				id:      "C2",
				payment: true,
				errIs:   ledger.ErrRoomOccupied,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				l := newTestLedger()
				c.setup(l)
				_, err := l.CheckIn(c.id, c.payment, testTime)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestCheckOut(t *testing.T) {
	t.Run("summarizes the stay, retires cards and frees the room", func(t *testing.T) {
		l := newTestLedger()
		card := checkIn(t, l, "C1", "Ada", "101")

		_, err := l.RequestService("101", "Hot Beverage")
		require.NoError(t, err)
		_, err = l.RequestService("101", "Fresh Towels")
		require.NoError(t, err)
		_, err = l.CompleteService("101", "Hot Beverage", "Hotel")
		require.NoError(t, err)

		at := testTime.Add(48 * time.Hour)
		summary, err := l.CheckOut("C1", at)
		require.NoError(t, err)

		assert.Equal(t, "C1", summary.CustomerID)
		assert.Equal(t, "Ada", summary.CustomerName)
		assert.Equal(t, "101", summary.RoomNumber)
		assert.Equal(t, testTime, summary.CheckedInAt)
		assert.Equal(t, at, summary.CheckedOutAt)
		assert.InDelta(t, 2.50, summary.ServiceCharges, 1e-9)

		assert.False(t, card.IsActive())
		cards, err := l.CardsForRoom("101")
		require.NoError(t, err)
		assert.Empty(t, cards)
		assert.Empty(t, l.ActiveStays())

		// room is free for the next guest
		card2 := checkIn(t, l, "C2", "Ben", "101")
		assert.True(t, card2.IsActive())
	})

	t.Run("unknown customer", func(t *testing.T) {
		l := newTestLedger()
		_, err := l.CheckOut("C9", testTime)
		require.ErrorIs(t, err, ledger.ErrCustomerNotFound)
	})

	t.Run("not checked in", func(t *testing.T) {
		l := newTestLedger()
		_, _, err := l.CreateReservation("C1", "Ada", "101", 2, testTime)
		require.NoError(t, err)
		_, err = l.CheckOut("C1", testTime)
		require.ErrorIs(t, err, ledger.ErrNotCheckedIn)
	})

	t.Run("no active card for the room", func(t *testing.T) {
		l := newTestLedger()
		card := checkIn(t, l, "C1", "Ada", "101")
		require.NoError(t, l.DeactivateCard(card.ID()))

		_, err := l.CheckOut("C1", testTime)
		require.ErrorIs(t, err, ledger.ErrNoActiveCard)
	})
}

func TestRequestService(t *testing.T) {
	t.Run("queues a pending copy with the provider stamped", func(t *testing.T) {
		l := newTestLedger()
		checkIn(t, l, "C1", "Ada", "101")

		item, err := l.RequestService("101", "Fresh Towels")
		require.NoError(t, err)
		assert.Equal(t, "Fresh Towels", item.Name())
		assert.Equal(t, "RoomSupport", item.Provider())
		assert.False(t, item.Completed())

		pending := l.PendingServicesFor("RoomSupport")
		require.Len(t, pending, 1)
		assert.Equal(t, "101", pending[0].RoomNumber)
		assert.InDelta(t, 5.00, pending[0].Price, 1e-9)
	})

	t.Run("catalog is untouched by repeated requests", func(t *testing.T) {
		l := newTestLedger()
		checkIn(t, l, "C1", "Ada", "101")

		first, err := l.RequestService("101", "Hot Beverage")
		require.NoError(t, err)
		second, err := l.RequestService("101", "Hot Beverage")
		require.NoError(t, err)
		assert.NotSame(t, first, second)

		_, err = l.CompleteService("101", "Hot Beverage", "Hotel")
		require.NoError(t, err)

		provider, ok := l.Provider("Hotel")
		require.True(t, ok)
		catalog, found := provider.FindItem("Hot Beverage")
		require.True(t, found)
		assert.False(t, catalog.Completed())
	})

	t.Run("unknown room", func(t *testing.T) {
		l := newTestLedger()
		_, err := l.RequestService("999", "Hot Beverage")
		require.ErrorIs(t, err, ledger.ErrRoomNotFound)
	})

	t.Run("room without active stay", func(t *testing.T) {
		l := newTestLedger()
		_, err := l.RequestService("101", "Hot Beverage")
		require.ErrorIs(t, err, ledger.ErrNotCheckedIn)
	})

	t.Run("unknown service", func(t *testing.T) {
		l := newTestLedger()
		checkIn(t, l, "C1", "Ada", "101")
		_, err := l.RequestService("101", "Helicopter Tour")
		require.ErrorIs(t, err, ledger.ErrServiceNotFound)
	})
}

func TestCompleteService(t *testing.T) {
	t.Run("moves the item to the service record", func(t *testing.T) {
		l := newTestLedger()
		checkIn(t, l, "C1", "Ada", "101")
		_, err := l.RequestService("101", "Technical Support")
		require.NoError(t, err)

		item, err := l.CompleteService("101", "Technical Support", "RoomSupport")
		require.NoError(t, err)
		assert.True(t, item.Completed())

		assert.Empty(t, l.PendingServicesFor("RoomSupport"))
		room, lines, total, err := l.ServiceRecord("C1")
		require.NoError(t, err)
		assert.Equal(t, "101", room)
		require.Len(t, lines, 1)
		assert.Equal(t, "Technical Support", lines[0].ServiceName)
		assert.InDelta(t, 20.00, total, 1e-9)
	})

	t.Run("second completion of the same service fails", func(t *testing.T) {
		l := newTestLedger()
		checkIn(t, l, "C1", "Ada", "101")
		_, err := l.RequestService("101", "Hot Beverage")
		require.NoError(t, err)

		_, err = l.CompleteService("101", "Hot Beverage", "Hotel")
		require.NoError(t, err)
		_, err = l.CompleteService("101", "Hot Beverage", "Hotel")
		require.ErrorIs(t, err, ledger.ErrServiceNotFound)
	})

	t.Run("wrong provider is a mismatch, not a miss", func(t *testing.T) {
		l := newTestLedger()
		checkIn(t, l, "C1", "Ada", "101")
		_, err := l.RequestService("101", "Hot Beverage")
		require.NoError(t, err)

		_, err = l.CompleteService("101", "Hot Beverage", "RoomSupport")
		require.ErrorIs(t, err, ledger.ErrProviderMismatch)

		// still pending for the right provider
		_, err = l.CompleteService("101", "Hot Beverage", "Hotel")
		require.NoError(t, err)
	})

	t.Run("never-requested service", func(t *testing.T) {
		l := newTestLedger()
		checkIn(t, l, "C1", "Ada", "101")
		_, err := l.CompleteService("101", "Fresh Towels", "RoomSupport")
		require.ErrorIs(t, err, ledger.ErrServiceNotFound)
	})
}

func TestCards(t *testing.T) {
	t.Run("add, activate, deactivate, delete", func(t *testing.T) {
		l := newTestLedger()

		card, err := l.AddCard("101", "K-1")
		require.NoError(t, err)
		assert.False(t, card.IsActive())

		require.NoError(t, l.ActivateCard("K-1"))
		assert.True(t, card.IsActive())
		require.NoError(t, l.DeactivateCard("K-1"))
		assert.False(t, card.IsActive())

		require.NoError(t, l.DeleteCard("K-1"))
		require.ErrorIs(t, l.DeleteCard("K-1"), ledger.ErrCardNotFound)
	})

	t.Run("duplicate card id", func(t *testing.T) {
		l := newTestLedger()
		_, err := l.AddCard("101", "K-1")
		require.NoError(t, err)
		_, err = l.AddCard("102", "K-1")
		require.ErrorIs(t, err, ledger.ErrCardExists)
	})

	t.Run("unknown room", func(t *testing.T) {
		l := newTestLedger()
		_, err := l.AddCard("999", "K-1")
		require.ErrorIs(t, err, ledger.ErrRoomNotFound)
		_, err = l.CardsForRoom("999")
		require.ErrorIs(t, err, ledger.ErrRoomNotFound)
	})

	t.Run("cards for room names the holder", func(t *testing.T) {
		l := newTestLedger()
		checkIn(t, l, "C1", "Ada", "101")

		views, err := l.CardsForRoom("101")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "CARD-C1-1", views[0].CardID)
		assert.True(t, views[0].IsActive)
		assert.Equal(t, "C1", views[0].HolderID)
		assert.Equal(t, "Ada", views[0].HolderName)
	})
}

func TestRoomOccupancyDetails(t *testing.T) {
	l := newTestLedger()
	checkIn(t, l, "C1", "Ada", "102")
	_, err := l.RequestService("102", "Hot Beverage")
	require.NoError(t, err)

	details := l.RoomOccupancyDetails()
	require.Len(t, details, 3)

	assert.Equal(t, "101", details[0].RoomNumber)
	assert.False(t, details[0].Occupied)
	assert.Empty(t, details[0].Cards)

	occupied := details[1]
	assert.Equal(t, "102", occupied.RoomNumber)
	assert.True(t, occupied.Occupied)
	assert.Equal(t, "C1", occupied.CustomerID)
	assert.Equal(t, "Ada", occupied.CustomerName)
	require.Len(t, occupied.Cards, 1)
	assert.Equal(t, []string{"Hot Beverage"}, occupied.PendingServices)
}
