package ui

// truncate shortens s to at most max characters, with an ellipsis
func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
