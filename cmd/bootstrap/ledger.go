package bootstrap

import (
	"fmt"
	"log/slog"

	"frontdesk/internal/domain/ledger"
	"frontdesk/internal/domain/staff"
	"frontdesk/internal/infra/store"
	"frontdesk/internal/pkg/config"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		NewLedger,
		NewStaffDirectory,
	),
)

// NewLedger restores the ledger from the snapshot file, or builds a freshly
// seeded one when no snapshot exists yet.
func NewLedger(cfg config.Config, fileStore *store.FileStore) (*ledger.Ledger, error) {
	snap, err := fileStore.Load()
	if err != nil {
		return nil, err
	}
	if snap != nil {
		return ledger.Restore(snap)
	}

	slog.Info("no snapshot found, seeding fresh ledger", "file", cfg.Store.DataFile)
	return seedLedger(cfg.Store.LedgerName), nil
}

func NewStaffDirectory(cfg config.Config) (*staff.Directory, error) {
	return staff.NewDirectory(map[staff.Role]string{
		staff.RoleAdmin:        cfg.Auth.AdminPassword,
		staff.RoleHotelService: cfg.Auth.HotelServicePassword,
		staff.RoleRoomSupport:  cfg.Auth.RoomSupportPassword,
	})
}

func seedLedger(name string) *ledger.Ledger {
	l := ledger.New(name)

	for n := 101; n <= 115; n++ {
		l.AddRoom(fmt.Sprintf("%d", n))
	}

	hotel := l.RegisterProvider(staff.ProviderHotel)
	hotel.AddItem(ledger.NewItemService("Hot Beverage", 2.50))
	hotel.AddItem(ledger.NewItemService("Cold Beverage", 3.00))
	hotel.AddItem(ledger.NewItemService("Traditional Breakfast", 15.00))
	hotel.AddItem(ledger.NewItemService("Buffet Dinner", 25.00))
	hotel.AddItem(ledger.NewItemService("Spa Experience", 50.00))

	support := l.RegisterProvider(staff.ProviderRoomSupport)
	support.AddItem(ledger.NewItemService("Fresh Towels", 5.00))
	support.AddItem(ledger.NewItemService("Fresh Sheets", 10.00))
	support.AddItem(ledger.NewItemService("Replenish Toiletries", 3.00))
	support.AddItem(ledger.NewItemService("Technical Support", 20.00))

	return l
}
