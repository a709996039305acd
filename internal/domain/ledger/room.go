package ledger

// Room is a physical unit. Identity is the room number; rooms carry no
// behavior of their own.
type Room struct {
	roomNumber string
}

func NewRoom(roomNumber string) *Room {
	return &Room{roomNumber: roomNumber}
}

func (r *Room) Number() string { return r.roomNumber }

func (r *Room) Equal(other *Room) bool {
	if other == nil {
		return false
	}
	return r.roomNumber == other.roomNumber
}
