package ledger

// Card is an access credential bound to exactly one room for its whole
// lifetime. Only the active flag ever changes.
type Card struct {
	cardID   string
	room     *Room
	isActive bool
}

func NewCard(cardID string, room *Room) *Card {
	return &Card{cardID: cardID, room: room}
}

func (c *Card) ID() string     { return c.cardID }
func (c *Card) Room() *Room    { return c.room }
func (c *Card) IsActive() bool { return c.isActive }

func (c *Card) Activate()   { c.isActive = true }
func (c *Card) Deactivate() { c.isActive = false }
