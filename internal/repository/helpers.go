package repository

// timeLayout is the storage format for all timestamps. The fraction is a
// fixed nine digits rather than RFC3339Nano: RFC3339Nano trims trailing
// zeros, which breaks the lexicographic ordering the started_at queries rely
// on (".1Z" would sort after ".15Z"). Fixed width keeps string order equal to
// time order at nanosecond precision.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
