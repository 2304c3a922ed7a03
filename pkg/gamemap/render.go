package gamemap

import (
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Room box geometry. Boxes are 4 cells wide and 3 tall; neighbors at
// adjacent positions share a border column/row, so the horizontal
// pitch is 3 and the vertical pitch is 2. Rooms placed further apart
// leave gap cells where the connection pass draws its dotted paths.
const (
	boxWidth  = 4
	boxHeight = 3
	pitchX    = 3
	pitchY    = 2
)

// Render draws the discovered portion of one level. The output is a
// pure function of the model: the grid buffer is local to the call.
//
// Connections are drawn first and never overwrite an occupied cell;
// room boxes are drawn second and always win, so a box border can
// never carry a path glyph.
func (m *Model) Render(level int) string {
	cells := m.visitedOnLevel(level)
	if len(cells) == 0 {
		return ""
	}

	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := minX, minY
	for _, c := range cells {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	w := maxX - minX + 1
	h := maxY - minY + 1
	gridW := max(w*4-1, boxWidth)
	gridH := max(h*3-1, boxHeight)

	grid := make([][]byte, gridH)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", gridW))
	}

	visited := make(map[int]*Cell, len(cells))
	for _, c := range cells {
		visited[c.Room] = c
	}

	for _, c := range cells {
		m.drawConnections(grid, c, visited, minX, minY)
	}
	for _, c := range cells {
		drawBox(grid, c, minX, minY)
	}

	rows := make([]string, 0, gridH)
	for _, row := range grid {
		rows = append(rows, strings.TrimRight(string(row), " "))
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return strings.Join(rows, "\n")
}

// drawConnections draws this room's discovered exits: dotted lines
// east/west along the box's center row, a dotted line south down the
// box's second column, and single markers for up/down. Occupied cells
// are left alone.
func (m *Model) drawConnections(grid [][]byte, c *Cell, onLevel map[int]*Cell, minX, minY int) {
	col0 := (c.X - minX) * pitchX
	row0 := (c.Y - minY) * pitchY

	for _, d := range world.Directions() {
		target := c.Exits[d]
		if target == 0 {
			continue
		}
		tc, discovered := m.Rooms[target]
		if !discovered || !tc.Visited {
			continue
		}

		switch d {
		case world.East:
			if peer, ok := onLevel[target]; ok && peer.Y == c.Y && peer.X > c.X {
				dotRow(grid, row0+1, col0+boxWidth, (peer.X-minX)*pitchX-1)
			}
		case world.West:
			if peer, ok := onLevel[target]; ok && peer.Y == c.Y && peer.X < c.X {
				dotRow(grid, row0+1, (peer.X-minX)*pitchX+boxWidth, col0-1)
			}
		case world.South:
			if peer, ok := onLevel[target]; ok && peer.X == c.X && peer.Y > c.Y {
				dotCol(grid, col0+1, row0+boxHeight, (peer.Y-minY)*pitchY-1)
			}
		case world.Up:
			setIfBlank(grid, row0-1, col0+1, upChar)
		case world.Down:
			setIfBlank(grid, row0+boxHeight, col0+1, downChar)
		}
	}
}

// dotRow writes an alternating dotted line across a row, inclusive of
// from and to.
func dotRow(grid [][]byte, row, from, to int) {
	for col := from; col <= to; col++ {
		if (col-from)%2 == 0 {
			setIfBlank(grid, row, col, pathChar)
		}
	}
}

func dotCol(grid [][]byte, col, from, to int) {
	for row := from; row <= to; row++ {
		if (row-from)%2 == 0 {
			setIfBlank(grid, row, col, pathChar)
		}
	}
}

func setIfBlank(grid [][]byte, row, col int, ch byte) {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return
	}
	if grid[row][col] == ' ' {
		grid[row][col] = ch
	}
}

// drawBox draws one room's bordered box, overwriting whatever the
// connection pass put there. The first interior cell carries the
// room's display character (or the player glyph), the second the item
// indicator.
func drawBox(grid [][]byte, c *Cell, minX, minY int) {
	col0 := (c.X - minX) * pitchX
	row0 := (c.Y - minY) * pitchY

	set := func(row, col int, ch byte) {
		if row >= 0 && row < len(grid) && col >= 0 && col < len(grid[row]) {
			grid[row][col] = ch
		}
	}

	set(row0, col0, cornerChar)
	set(row0, col0+1, hWallChar)
	set(row0, col0+2, hWallChar)
	set(row0, col0+3, cornerChar)

	display := c.Char
	if c.Current {
		display = PlayerChar
	}
	if display == "" {
		display = DefaultRoomChar
	}
	item := byte(' ')
	if c.HasItems {
		item = ItemChar[0]
	}
	set(row0+1, col0, vWallChar)
	set(row0+1, col0+1, display[0])
	set(row0+1, col0+2, item)
	set(row0+1, col0+3, vWallChar)

	set(row0+2, col0, cornerChar)
	set(row0+2, col0+1, hWallChar)
	set(row0+2, col0+2, hWallChar)
	set(row0+2, col0+3, cornerChar)
}
