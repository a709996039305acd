package ledger

// ItemService is a billable service offering. Catalog instances live on a
// provider; requesting one copies it onto a stay, where the copy moves from
// pending to the service record once fulfilled.
type ItemService struct {
	name         string
	price        float64
	completed    bool
	providerName string
}

func NewItemService(name string, price float64) *ItemService {
	return &ItemService{name: name, price: price}
}

func (i *ItemService) Name() string     { return i.name }
func (i *ItemService) Price() float64   { return i.price }
func (i *ItemService) Completed() bool  { return i.completed }
func (i *ItemService) Provider() string { return i.providerName }

// MarkCompleted is monotonic: a completed item never reverts.
func (i *ItemService) MarkCompleted() { i.completed = true }

// requestedCopy clones a catalog item for a stay's pending queue. The copy
// starts uncompleted regardless of the source.
func (i *ItemService) requestedCopy() *ItemService {
	return &ItemService{
		name:         i.name,
		price:        i.price,
		providerName: i.providerName,
	}
}
