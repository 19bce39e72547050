// Package theme holds the color palette shared with the mobile client.
// Values mirror the app's constants file; the server never interprets them.
package theme

type Palette struct {
	Text            string
	Background      string
	Tint            string
	Icon            string
	TabIconDefault  string
	TabIconSelected string
	Card            string
}

var (
	Light = Palette{
		Text:            "#232628",
		Background:      "#FFFFFF",
		Tint:            "#A3D46B",
		Icon:            "#3B4347",
		TabIconDefault:  "#C9D3CC",
		TabIconSelected: "#A3D46B",
		Card:            "#E6ECE7",
	}
	Dark = Palette{
		Text:            "#E6ECE7",
		Background:      "#232628",
		Tint:            "#A3D46B",
		Icon:            "#C9D3CC",
		TabIconDefault:  "#3B4347",
		TabIconSelected: "#A3D46B",
		Card:            "#3B4347",
	}
)
