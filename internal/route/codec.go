package route

import "github.com/RolfLobo/dembrandt/internal/location"

// Codec binds the route grammar to a location store, so callers deal only
// in targets and never see raw location strings.
type Codec struct {
	store location.Store
}

// NewCodec returns a codec over store.
func NewCodec(store location.Store) *Codec {
	return &Codec{store: store}
}

// Current decodes the store's present value.
func (c *Codec) Current() Target {
	return Decode(c.store.Read())
}

// Write encodes t into the store. The store notifies its subscribers even
// when the encoded value matches the current location.
func (c *Codec) Write(t Target) {
	c.store.Write(Encode(t))
}

// Subscribe registers fn for every location change, decoded. The returned
// function cancels the registration.
func (c *Codec) Subscribe(fn func(Target)) func() {
	return c.store.Subscribe(func(raw string) {
		fn(Decode(raw))
	})
}
