package table

// Options are options for creating a new table
type Options struct {
	// HistoryLimit is how many rounds are kept for Undo() and History(). 0 is unlimited
	HistoryLimit int
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		HistoryLimit: 0,
	}
}
