package components

const defaultWidth = 80

// viewWidth falls back to a sane width until the first WindowSizeMsg arrives
func viewWidth(width int) int {
	if width <= 0 {
		return defaultWidth
	}
	return width
}
