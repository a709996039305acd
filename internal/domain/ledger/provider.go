package ledger

// ServiceProvider groups catalog items under a named vendor. Adding an item
// stamps the provider's name on it.
type ServiceProvider struct {
	name  string
	items []*ItemService
}

func NewServiceProvider(name string) *ServiceProvider {
	return &ServiceProvider{name: name}
}

func (p *ServiceProvider) Name() string { return p.name }

func (p *ServiceProvider) Items() []*ItemService {
	return p.items
}

func (p *ServiceProvider) AddItem(item *ItemService) {
	item.providerName = p.name
	p.items = append(p.items, item)
}

func (p *ServiceProvider) FindItem(name string) (*ItemService, bool) {
	for _, item := range p.items {
		if item.name == name {
			return item, true
		}
	}
	return nil, false
}
