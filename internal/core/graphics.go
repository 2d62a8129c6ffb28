package core

// PanelItem is one block of the side panel shown next to the main grid.
// Exactly one of Text or Buf is meaningful.
type PanelItem struct {
	Text string
	Buf  *Buffer
}

// TextItem returns a text panel item.
func TextItem(text string) PanelItem {
	return PanelItem{Text: text}
}

// BufferItem returns a panel item that displays a small grid.
func BufferItem(buf *Buffer) PanelItem {
	return PanelItem{Buf: buf}
}

// IsBuffer reports whether the item displays a grid.
func (p PanelItem) IsBuffer() bool {
	return p.Buf != nil
}

// Graphics is everything a front-end needs to draw a game: a title,
// the main grid and an optional side panel.
type Graphics struct {
	Title string
	Buf   *Buffer
	Panel []PanelItem
}

// NewGraphics creates graphics with the given title, grid and panel items.
func NewGraphics(title string, buf *Buffer, panel ...PanelItem) *Graphics {
	return &Graphics{Title: title, Buf: buf, Panel: panel}
}

// HasPanel reports whether the side panel should be drawn.
func (g *Graphics) HasPanel() bool {
	return len(g.Panel) > 0
}

// SetText replaces the text of panel item i. Panics if the item is a grid.
func (g *Graphics) SetText(i int, text string) {
	if g.Panel[i].IsBuffer() {
		panic("core: panel item is not text")
	}
	g.Panel[i].Text = text
}

// PanelBuffer returns the grid of panel item i. Panics if the item is text.
func (g *Graphics) PanelBuffer(i int) *Buffer {
	if !g.Panel[i].IsBuffer() {
		panic("core: panel item is not a grid")
	}
	return g.Panel[i].Buf
}
