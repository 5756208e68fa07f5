package window

// Options are the desktop window settings, in pixels.
type Options struct {
	Title    string
	Width    int
	Height   int
	TickRate int
	FontSize float64
}
