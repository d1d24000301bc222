package checkout

import "sync/atomic"

var defaultProductNames = []string{
	"Digital Content Access",
	"Premium Media License",
	"Online Content Pass",
	"Digital Media Package",
	"Creator Content Access",
}

// ProductNameRotator hands out generic labels round-robin. Remote providers
// only ever see these, never the catalog title.
type ProductNameRotator struct {
	names []string
	next  atomic.Uint64
}

func NewProductNameRotator(names ...string) *ProductNameRotator {
	if len(names) == 0 {
		names = defaultProductNames
	}
	return &ProductNameRotator{names: names}
}

func (r *ProductNameRotator) Next() string {
	i := r.next.Add(1) - 1
	return r.names[i%uint64(len(r.names))]
}

func (r *ProductNameRotator) IsGeneric(name string) bool {
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}
