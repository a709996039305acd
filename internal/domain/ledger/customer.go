package ledger

// Customer is a guest identity. It holds at most one current stay and at
// most one current card; the previous stay stays referenced until the next
// reservation replaces it.
type Customer struct {
	name       string
	customerID string
	stay       *Stay
	card       *Card
}

func NewCustomer(name, customerID string) *Customer {
	return &Customer{name: name, customerID: customerID}
}

func (c *Customer) Name() string { return c.name }
func (c *Customer) ID() string   { return c.customerID }
func (c *Customer) Stay() *Stay  { return c.stay }
func (c *Customer) Card() *Card  { return c.card }

func (c *Customer) assignStay(stay *Stay) { c.stay = stay }
func (c *Customer) assignCard(card *Card) { c.card = card }
func (c *Customer) clearCard()            { c.card = nil }
