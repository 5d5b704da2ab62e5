package costperuse

import (
	"slices"
	"time"
)

// SaveFunc persists the full item collection. It is called after every
// mutation, before subscribers are notified.
type SaveFunc func(items []Item) error

// Inventory is the sole owner of the item collection. All mutations go
// through it; everything else receives read-only snapshots via Items or
// Subscribe.
//
// Like the rest of the application, an Inventory is driven from a single
// goroutine: operations never overlap, so there is no locking.
type Inventory struct {
	items []Item
	save  SaveFunc

	subscribers []subscriber
	nextSub     int
}

type subscriber struct {
	id int
	fn func([]Item)
}

// NewInventory creates an inventory over an already-loaded collection.
// A nil save func disables persistence (useful for tests).
func NewInventory(items []Item, save SaveFunc) *Inventory {
	return &Inventory{items: items, save: save}
}

// Items returns a snapshot of the collection in storage order, newest-created
// first. The returned slice is the caller's to keep, the items are not.
func (v *Inventory) Items() []Item { return slices.Clone(v.items) }

// Len returns the number of tracked items.
func (v *Inventory) Len() int { return len(v.items) }

// Get returns the item with the given id.
func (v *Inventory) Get(id string) (Item, bool) {
	for _, it := range v.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Subscribe registers fn to observe the collection. It is invoked
// immediately with the current snapshot and again after every non-silent
// mutation. The returned func cancels the subscription.
func (v *Inventory) Subscribe(fn func([]Item)) (cancel func()) {
	id := v.nextSub
	v.nextSub++
	v.subscribers = append(v.subscribers, subscriber{id: id, fn: fn})
	fn(v.Items())
	return func() {
		v.subscribers = slices.DeleteFunc(v.subscribers, func(s subscriber) bool {
			return s.id == id
		})
	}
}

func (v *Inventory) notify() {
	snapshot := v.Items()
	for _, s := range v.subscribers {
		s.fn(snapshot)
	}
}

// persist writes the collection through the save func, then notifies unless
// silent.
func (v *Inventory) persist(silent bool) error {
	if v.save != nil {
		if err := v.save(v.items); err != nil {
			return err
		}
	}
	if !silent {
		v.notify()
	}
	return nil
}

// Add creates a new item per the Item lifecycle rules and prepends it to the
// collection. Price and resale are coerced, invalid resale degrades to zero;
// the caller is expected to have validated price beforehand.
func (v *Inventory) Add(name, price, category, resale string) (Item, error) {
	item := NewItem(name, price, category, resale)
	v.items = append([]Item{item}, v.items...)
	return item, v.persist(false)
}

// IncrementUse records one use of the item: bumps the counter, stamps
// LastUsed and appends to the usage history. Unknown ids are a no-op.
//
// With silent set the change is persisted but subscribers are not notified;
// the caller is expected to perform its own targeted view update. This is
// the high-frequency path: a use is a single tap and should not trigger a
// full re-render.
func (v *Inventory) IncrementUse(id string, silent bool) error {
	for n := range v.items {
		if v.items[n].ID != id {
			continue
		}
		now := time.Now()
		it := &v.items[n]
		it.UseCount++
		it.LastUsed = &now
		it.UsageHistory = append(it.UsageHistory, now)
		return v.persist(silent)
	}
	return nil
}

// Delete removes the item with the given id. Unknown ids are a no-op. The
// relative order of the remaining items is unchanged.
func (v *Inventory) Delete(id string) error {
	n := len(v.items)
	v.items = slices.DeleteFunc(v.items, func(i Item) bool { return i.ID == id })
	if len(v.items) == n {
		return nil
	}
	return v.persist(false)
}

// Update merges the patch into the item with the given id. Unknown ids are a
// no-op and do not notify.
func (v *Inventory) Update(id string, patch ItemPatch) error {
	for n := range v.items {
		if v.items[n].ID == id {
			patch.apply(&v.items[n])
			return v.persist(false)
		}
	}
	return nil
}
