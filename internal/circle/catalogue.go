package circle

// Entry is one built-in (multiplier, modulus) pair.
type Entry struct {
	Multiplier int
	Modulus    int
}

var catalogue = [...]Entry{
	{219, 60}, {714, 634}, {866, 944}, {1457, 397},
	{1717, 728}, {947, 727}, {758, 454}, {1429, 1110}, {209, 243},
	{337, 564}, {308, 404}, {375, 102}, {726, 659}, {124, 31},
}

// Catalogue returns a copy of the slideshow entries in display order.
func Catalogue() []Entry {
	out := make([]Entry, len(catalogue))
	copy(out, catalogue[:])
	return out
}

// CatalogueLen is the number of built-in entries.
func CatalogueLen() int { return len(catalogue) }

// CatalogueAt returns entry i. It panics when i is out of range.
func CatalogueAt(i int) Entry { return catalogue[i] }
