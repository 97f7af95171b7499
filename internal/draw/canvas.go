package draw

import (
	"image/color"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is a Surface that rasterises onto a terminal grid with 2x vertical
// resolution using half-block characters. Logical canvas coordinates are
// scaled to fit the terminal area.
type Canvas struct {
	termWidth      int // Actual terminal columns
	termHeight     int // Actual terminal rows
	subPixelHeight int // termHeight * 2

	// Flat slices indexed [y * termWidth + x].
	pixels []colorful.Color
	filled []bool

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // subPixelHeight / logicalHeight

	// 0-based terminal offsets when the render area is centered.
	offsetCol int
	offsetRow int

	fill colorful.Color
	xf   TransformStack

	// Last emitted cell per terminal position; unchanged cells are skipped.
	prev []uint64

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	intersectionBuf []float64
}

// NewCanvas creates a canvas mapping a logical area onto a terminal area.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		fill:          colorful.Color{},
		xf:            NewTransformStack(),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]colorful.Color, subPixelHeight*termWidth)
		c.filled = make([]bool, subPixelHeight*termWidth)
		c.prev = make([]uint64, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.ForceRedraw()
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render emit every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = cellInvalid
	}
}

// Width returns the logical width.
func (c *Canvas) Width() float64 {
	return c.logicalWidth
}

// Height returns the logical height.
func (c *Canvas) Height() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the terminal column count of the render area.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count of the render area.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// SetFillColor sets the color used by FillRect and FillCircle.
func (c *Canvas) SetFillColor(clr color.Color) {
	if cf, ok := colorful.MakeColor(clr); ok {
		c.fill = cf
	}
}

// Save pushes the current transform.
func (c *Canvas) Save() { c.xf.Save() }

// Restore pops the last saved transform.
func (c *Canvas) Restore() { c.xf.Restore() }

// Translate moves the drawing origin.
func (c *Canvas) Translate(x, y float64) { c.xf.Translate(x, y) }

// Rotate rotates the drawing space by angle radians.
func (c *Canvas) Rotate(angle float64) { c.xf.Rotate(angle) }

// ClearRect resets the pixels covered by the rectangle to empty.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	corners := c.xf.Rect(x, y, w, h)
	c.fillPolygon(corners[:], c.clearPixel)
}

// FillRect fills the rectangle, under the current transform, with the fill color.
// The outline is always drawn so that sub-pixel-thin shapes stay visible.
func (c *Canvas) FillRect(x, y, w, h float64) {
	corners := c.xf.Rect(x, y, w, h)
	c.fillPolygon(corners[:], c.setPixel)
	for i := range corners {
		c.drawLine(corners[i], corners[(i+1)%len(corners)])
	}
}

// FillCircle fills a disc of radius r centred at (cx, cy).
// A disc smaller than a pixel still sets its centre pixel.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	center := c.xf.Apply(cx, cy)
	pcx := center.X * c.scaleX
	pcy := center.Y * c.scaleY
	rx := r * c.scaleX
	ry := r * c.scaleY

	c.setPixel(int(math.Floor(pcx)), int(math.Floor(pcy)))
	if rx <= 0 || ry <= 0 {
		return
	}

	yStart := int(math.Floor(pcy - ry))
	yEnd := int(math.Ceil(pcy + ry))
	for y := yStart; y <= yEnd; y++ {
		dy := (float64(y) + 0.5 - pcy) / ry
		if dy < -1 || dy > 1 {
			continue
		}
		hw := rx * math.Sqrt(1-dy*dy)
		xStart := int(math.Ceil(pcx - hw - 0.5))
		xEnd := int(math.Floor(pcx + hw - 0.5))
		for x := xStart; x <= xEnd; x++ {
			c.setPixel(x, y)
		}
	}
}

// Filled reports whether the sub-pixel at logical (x, y) has been painted,
// and its color.
func (c *Canvas) Filled(x, y float64) (colorful.Color, bool) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.subPixelHeight {
		return colorful.Color{}, false
	}
	i := py*c.termWidth + px
	return c.pixels[i], c.filled[i]
}

// Clear resets all pixels and the transform stack.
func (c *Canvas) Clear() {
	clear(c.filled)
	c.xf.Reset()
}

// setPixel paints a pixel at actual sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		i := y*c.termWidth + x
		c.pixels[i] = c.fill
		c.filled[i] = true
	}
}

func (c *Canvas) clearPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.filled[y*c.termWidth+x] = false
	}
}

// drawLine draws a line between logical points using Bresenham's algorithm.
func (c *Canvas) drawLine(p1, p2 Point) {
	x1 := int(math.Floor(p1.X * c.scaleX))
	y1 := int(math.Floor(p1.Y * c.scaleY))
	x2 := int(math.Floor(p2.X * c.scaleX))
	y2 := int(math.Floor(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillPolygon fills a polygon given in logical coordinates using a scanline
// algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point, plot func(x, y int)) {
	if len(points) < 3 {
		return
	}

	var scaled [4]Point
	pts := scaled[:0]
	for _, p := range points {
		pts = append(pts, Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY})
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(pts)
		for i := 0; i < n; i++ {
			p1 := pts[i]
			p2 := pts[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := max(int(math.Ceil(intersections[i]-0.5)), 0)
			xEnd := min(int(math.Floor(intersections[i+1]-0.5)), c.termWidth-1)
			for x := xStart; x <= xEnd; x++ {
				plot(x, y)
			}
		}
	}
}

// Cell encoding: 24-bit top color, top-set flag, 24-bit bottom color, bottom-set flag.
const (
	cellTopSet    = 1 << 24
	cellBottomSet = 1 << 56
	cellInvalid   = ^uint64(0)
	defaultBg     = cellInvalid - 1 // Terminal default background
)

func packRGB(c colorful.Color) uint64 {
	r, g, b := c.Clamped().RGB255()
	return uint64(r)<<16 | uint64(g)<<8 | uint64(b)
}

func (c *Canvas) cellAt(row, col int) uint64 {
	var cell uint64
	top := row*2*c.termWidth + col
	if c.filled[top] {
		cell |= packRGB(c.pixels[top]) | cellTopSet
	}
	bottom := top + c.termWidth
	if c.filled[bottom] {
		cell |= packRGB(c.pixels[bottom])<<32 | cellBottomSet
	}
	return cell
}

// maxChunkSize is the maximum bytes to write at once for smooth SSH/network flow.
const maxChunkSize = 1400

// Render writes every cell that changed since the last Render as a 24-bit
// colored half-block.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	lastFg, lastBg := cellInvalid, cellInvalid
	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			cell := c.cellAt(row, col)
			idx := row*c.termWidth + col
			if c.prev[idx] == cell {
				continue
			}
			c.prev[idx] = cell

			c.moveCursor(row+1+c.offsetRow, col+1+c.offsetCol)

			top, bottom := cell&0xffffff, (cell>>32)&0xffffff
			topSet, bottomSet := cell&cellTopSet != 0, cell&cellBottomSet != 0
			switch {
			case topSet && bottomSet:
				c.setColors(&lastFg, &lastBg, top, bottom)
				c.renderBuf.WriteRune(BlockUpperHalf)
			case topSet:
				c.setColors(&lastFg, &lastBg, top, defaultBg)
				c.renderBuf.WriteRune(BlockUpperHalf)
			case bottomSet:
				c.setColors(&lastFg, &lastBg, bottom, defaultBg)
				c.renderBuf.WriteRune(BlockLowerHalf)
			default:
				c.setColors(&lastFg, &lastBg, lastFg, defaultBg)
				c.renderBuf.WriteByte(' ')
			}
		}
	}
	if c.renderBuf.Len() > 0 {
		c.renderBuf.WriteString("\033[0m")
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

func (c *Canvas) setColors(lastFg, lastBg *uint64, fg, bg uint64) {
	if fg != *lastFg && fg != cellInvalid {
		c.sgr(38, fg)
		*lastFg = fg
	}
	if bg != *lastBg {
		if bg == defaultBg {
			c.renderBuf.WriteString("\033[49m")
		} else {
			c.sgr(48, bg)
		}
		*lastBg = bg
	}
}

func (c *Canvas) sgr(kind int, rgb uint64) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(kind), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], (rgb>>16)&0xff, 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], (rgb>>8)&0xff, 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], rgb&0xff, 10))
	c.renderBuf.WriteByte('m')
}

func (c *Canvas) moveCursor(row, col int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			buf.WriteString(cursorTo(top, left) + "┌" + line + "┐")
			buf.WriteString(cursorTo(bottom, left) + "└" + line + "┘")
		} else {
			buf.WriteString(cursorTo(top, c.offsetCol+1) + line)
			buf.WriteString(cursorTo(bottom, c.offsetCol+1) + line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			buf.WriteString(cursorTo(row, left) + "│" + cursorTo(row, right) + "│")
		}
	}

	io.WriteString(w, buf.String())
}

func cursorTo(row, col int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
