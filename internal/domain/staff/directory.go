package staff

import "frontdesk/internal/pkg/password"

// Directory is the fixed password table of the front desk: one shared
// password per role, stored as bcrypt hashes.
type Directory struct {
	hashes map[Role]string
}

func NewDirectory(passwords map[Role]string) (*Directory, error) {
	hashes := make(map[Role]string, len(passwords))
	for role, plain := range passwords {
		hash, err := password.HashPassword(plain)
		if err != nil {
			return nil, err
		}
		hashes[role] = hash
	}
	return &Directory{hashes: hashes}, nil
}

// Authenticate returns the role whose password matches. Passwords are
// unique per role, so the first match is the only match.
func (d *Directory) Authenticate(plain string) (Role, bool) {
	for _, role := range []Role{RoleAdmin, RoleHotelService, RoleRoomSupport} {
		hash, ok := d.hashes[role]
		if !ok {
			continue
		}
		if err := password.ComparePassword(hash, plain); err == nil {
			return role, true
		}
	}
	return "", false
}
