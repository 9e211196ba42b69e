// internal/nodeid/types.go
package nodeid

// ID identifies one of the fixed sizing quantities.
type ID int

const (
	// ObjectCount is the number of objects held by the cache ("co").
	// Its value is dimensionless, not a size.
	ObjectCount ID = iota
	// CacheSize is the size of the cache in bytes ("cs").
	CacheSize
	// BenchSize is the size of the benchmark working set in bytes ("bs").
	BenchSize
)

// All lists every ID in resolution order.
var All = [...]ID{ObjectCount, CacheSize, BenchSize}

// String returns the short name used on the command line.
func (id ID) String() string {
	switch id {
	case ObjectCount:
		return "co"
	case CacheSize:
		return "cs"
	case BenchSize:
		return "bs"
	}
	return "unknown"
}

// IsSize reports whether the quantity is measured in bytes.
func (id ID) IsSize() bool {
	return id != ObjectCount
}

// Valid reports whether id is one of the known identifiers.
func (id ID) Valid() bool {
	return id >= ObjectCount && id <= BenchSize
}
