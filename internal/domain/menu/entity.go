package menu

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNoItemsSelected  = errors.New("no menu items selected")
	ErrUnknownItem      = errors.New("unknown menu item")
	ErrItemUnavailable  = errors.New("menu item unavailable")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrDuplicateItem    = errors.New("duplicate menu item in order")
	ErrNonPositiveTotal = errors.New("order total must be positive")
)

// Item is a purchasable catalog entry. Prices are integers in the smallest
// currency unit (yen).
type Item struct {
	id        uuid.UUID
	name      string
	price     int64
	available bool
}

func NewItem(id uuid.UUID, name string, price int64, available bool) Item {
	return Item{id: id, name: name, price: price, available: available}
}

func (i Item) ID() uuid.UUID   { return i.id }
func (i Item) Name() string    { return i.name }
func (i Item) Price() int64    { return i.price }
func (i Item) Available() bool { return i.available }

type OrderLine struct {
	itemID   uuid.UUID
	quantity int32
}

func NewOrderLine(itemID uuid.UUID, quantity int32) (OrderLine, error) {
	if quantity <= 0 {
		return OrderLine{}, ErrInvalidQuantity
	}
	return OrderLine{itemID: itemID, quantity: quantity}, nil
}

func (l OrderLine) ItemID() uuid.UUID { return l.itemID }
func (l OrderLine) Quantity() int32   { return l.quantity }

// Order is a validated set of order lines, at most one per item.
type Order struct {
	lines []OrderLine
}

func NewOrder(lines []OrderLine) (Order, error) {
	if len(lines) == 0 {
		return Order{}, ErrNoItemsSelected
	}
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, l := range lines {
		if _, dup := seen[l.itemID]; dup {
			return Order{}, ErrDuplicateItem
		}
		seen[l.itemID] = struct{}{}
	}
	return Order{lines: lines}, nil
}

func (o Order) Lines() []OrderLine { return o.lines }

func (o Order) ItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(o.lines))
	for i, l := range o.lines {
		ids[i] = l.itemID
	}
	return ids
}

// Total prices the order against the catalog snapshot. Every referenced item
// must exist and be available, and the computed sum must be strictly positive.
func (o Order) Total(catalog map[uuid.UUID]Item) (int64, error) {
	var total int64
	for _, l := range o.lines {
		item, ok := catalog[l.itemID]
		if !ok {
			return 0, ErrUnknownItem
		}
		if !item.available {
			return 0, ErrItemUnavailable
		}
		total += item.price * int64(l.quantity)
	}
	if total <= 0 {
		return 0, ErrNonPositiveTotal
	}
	return total, nil
}
