package staff

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleHotelService Role = "hotel_service"
	RoleRoomSupport  Role = "room_support"
)

// Provider names the two service-provider roles act on behalf of.
const (
	ProviderHotel       = "Hotel"
	ProviderRoomSupport = "RoomSupport"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHotelService, RoleRoomSupport:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// ProviderFor resolves a service-provider role to the catalog provider it
// fulfils services for. The admin role has no provider.
func ProviderFor(role Role) (string, bool) {
	switch role {
	case RoleHotelService:
		return ProviderHotel, true
	case RoleRoomSupport:
		return ProviderRoomSupport, true
	default:
		return "", false
	}
}
