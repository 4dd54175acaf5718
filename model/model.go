package model

// ListChange represents a planned rewrite of one list file.
type ListChange struct {
	Path    string
	Before  []string
	After   []string
	Dropped []string // entries removed as duplicates of an earlier entry
}

// Changed reports whether applying the change would modify the file.
func (c ListChange) Changed() bool {
	if len(c.Before) != len(c.After) {
		return true
	}
	for i := range c.Before {
		if c.Before[i] != c.After[i] {
			return true
		}
	}
	return false
}

// Summary holds the results of an operation for display.
type Summary struct {
	Cleaned   []string // files rewritten
	Unchanged []string // files already clean
	Failed    []string
	Dropped   int // duplicate entries removed across all files
	Message   string
}
