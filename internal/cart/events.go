package cart

// EventKind identifies the advisory notification emitted after a mutation.
// Events are observational, for toast-style UI feedback; they never carry
// control flow and no-op mutations emit none.
type EventKind string

const (
	EventItemAdded         EventKind = "item_added"
	EventQuantityUpdated   EventKind = "quantity_updated"
	EventItemRemoved       EventKind = "item_removed"
	EventCartCleared       EventKind = "cart_cleared"
	EventStockLimitReached EventKind = "stock_limit_reached"
)

// Event describes what a mutation did to the cart
type Event struct {
	Kind      EventKind
	ProductID string
	// Quantity is the entry's quantity after the mutation, where one applies
	Quantity int
}

// Listener receives events after each successful mutation
type Listener func(Event)
