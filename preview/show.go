package preview

import "image"

import "github.com/gdamore/tcell/v2"

// Show opens the terminal, draws img below title and waits for a key press.
func Show(img *image.Gray, title string, palette Palette) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	Run(screen, img, title, palette)
	return nil
}

// Run draws img below title on an initialized screen, redrawing on resize,
// until a key is pressed.
func Run(screen tcell.Screen, img *image.Gray, title string, palette Palette) {
	draw := func() {
		screen.Clear()
		Label(screen, 0, 0, title)
		Render(screen, img, 0, 1, palette)
		screen.Show()
	}
	draw()
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey, nil:
			return
		}
	}
}
