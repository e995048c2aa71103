package constants

const (
	// ColumnSize is the number of table entries per key byte position.
	ColumnSize = 256
	// IntKeyBytes is the width of a 32-bit integer key.
	IntKeyBytes = 4
	// LongKeyBytes is the width of a 64-bit integer key.
	LongKeyBytes = 8
)
