package session

// KeyAuthenticated is the data key set by a successful login. It is the
// only thing the access guard ever reads.
const KeyAuthenticated = "authenticated"

// Bag is the request-scoped view of session state. Every request gets
// exactly one, whether or not it arrived with a cookie, so handlers never
// check for its absence — only its contents. A bag is lazily backed by a
// store record: nothing is persisted until something mutates it.
//
// A Bag is owned by a single request and is not safe for concurrent use.
type Bag struct {
	id        string
	data      map[string]any
	dirty     bool
	destroyed bool
}

// newBag returns a fresh, unpersisted bag with the given ID.
func newBag(id string) *Bag {
	return &Bag{
		id:   id,
		data: make(map[string]any),
	}
}

// restoreBag builds a clean bag from a stored record.
func restoreBag(rec *Record) *Bag {
	data := rec.Data
	if data == nil {
		data = make(map[string]any)
	}
	return &Bag{
		id:   rec.ID,
		data: data,
	}
}

// ID returns the session ID. Always non-empty: either the verified ID
// from the inbound cookie, or a freshly generated one.
func (b *Bag) ID() string {
	return b.id
}

func (b *Bag) Get(key string) (any, bool) {
	v, ok := b.data[key]
	return v, ok
}

// GetBool returns the value for key iff it is a bool; otherwise false.
func (b *Bag) GetBool(key string) bool {
	v, ok := b.data[key].(bool)
	return ok && v
}

// Set stores a value and marks the bag dirty. A dirty bag is persisted
// and a cookie issued at end of request — never call Set on a path that
// must not create a session record.
func (b *Bag) Set(key string, value any) {
	b.data[key] = value
	b.dirty = true
}

func (b *Bag) Delete(key string) {
	if _, ok := b.data[key]; !ok {
		return
	}
	delete(b.data, key)
	b.dirty = true
}

// Dirty reports whether the bag was mutated during this request.
func (b *Bag) Dirty() bool {
	return b.dirty
}

// MarkDestroyed flags the bag so the middleware clears the cookie and
// skips persistence. The caller is responsible for the store Destroy.
func (b *Bag) MarkDestroyed() {
	b.destroyed = true
	b.dirty = false
	b.data = make(map[string]any)
}

func (b *Bag) Destroyed() bool {
	return b.destroyed
}
