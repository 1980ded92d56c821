package tui

// Color palette shared by the timer view.
const (
	ColorAccent = "#FF6B6B" // tomato, naturally
	ColorText   = "#FAFAFA"
	ColorMuted  = "#6C6C76"
)
