package session

// ValidateTransition reports whether moving from depth current to depth
// target is a legal single step: staying, going up any amount, or entering
// exactly one menu.
func ValidateTransition(current, target int) bool {
	return target <= current || target == current+1
}

// RelativePath returns the steps leading from one path to another: one ".."
// per level of from below the shared prefix, then the rest of to.
func RelativePath(from, to []string) []string {
	common := 0
	for common < len(from) && common < len(to) && from[common] == to[common] {
		common++
	}

	rel := make([]string, 0, len(from)-common+len(to)-common)
	for range from[common:] {
		rel = append(rel, "..")
	}
	return append(rel, to[common:]...)
}
