//go:build unit

package staff_test

import (
	"testing"

	"frontdesk/internal/domain/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  staff.Role
		errIs error
	}{
		{name: "admin", input: "admin", want: staff.RoleAdmin},
		{name: "hotel service", input: "hotel_service", want: staff.RoleHotelService},
		{name: "room support", input: "room_support", want: staff.RoleRoomSupport},
		{name: "unknown", input: "manager", errIs: staff.ErrInvalidRole},
		{name: "empty", input: "", errIs: staff.ErrInvalidRole},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			role, err := staff.NewRole(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, role)
		})
	}
}

func TestProviderFor(t *testing.T) {
	provider, ok := staff.ProviderFor(staff.RoleHotelService)
	require.True(t, ok)
	assert.Equal(t, staff.ProviderHotel, provider)

	provider, ok = staff.ProviderFor(staff.RoleRoomSupport)
	require.True(t, ok)
	assert.Equal(t, staff.ProviderRoomSupport, provider)

	_, ok = staff.ProviderFor(staff.RoleAdmin)
	assert.False(t, ok)
}

func TestDirectoryAuthenticate(t *testing.T) {
	directory, err := staff.NewDirectory(map[staff.Role]string{
		staff.RoleAdmin:        "AD01",
		staff.RoleHotelService: "SERV01",
		staff.RoleRoomSupport:  "SERV02",
	})
	require.NoError(t, err)

	cases := []struct {
		name     string
		password string
		want     staff.Role
		ok       bool
	}{
		{name: "admin password", password: "AD01", want: staff.RoleAdmin, ok: true},
		{name: "hotel service password", password: "SERV01", want: staff.RoleHotelService, ok: true},
		{name: "room support password", password: "SERV02", want: staff.RoleRoomSupport, ok: true},
		{name: "wrong password", password: "nope", ok: false},
		{name: "empty password", password: "", ok: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			role, ok := directory.Authenticate(c.password)
			require.Equal(t, c.ok, ok)
			if c.ok {
				assert.Equal(t, c.want, role)
			}
		})
	}
}
