package tyrouter

// witnessID is a private type of non-zero size. A pointer to a freshly
// allocated witnessID is a unique, comparable value for the lifetime of the
// process — exactly the property a type witness needs. (Pointers to
// distinct zero-size values may compare equal in Go, hence the padding.)
type witnessID struct{ _ byte }

// Witness is a per-type identity. Two witnesses compare equal if and only
// if they were produced by the same construction act (the same call to
// NewDecoder, or the same built-in decoder). It underpins the heterogeneous
// storage of decoded values in a trie walk: a value tagged with a witness
// can be safely recovered later by comparing witnesses instead of
// performing an unchecked type cast.
type Witness struct {
	id *witnessID
}

// newWitness allocates a fresh, globally unique witness.
func newWitness() Witness {
	return Witness{id: new(witnessID)}
}

// Equal reports whether w and other were produced by the same
// construction act.
func (w Witness) Equal(other Witness) bool {
	return w.id == other.id
}
