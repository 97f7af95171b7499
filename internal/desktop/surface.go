// Package desktop runs the world in an ebiten window.
package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/asteroidfall/internal/draw"
)

// Surface implements draw.Surface on an ebiten image. Rectangles are filled
// as transformed paths so rotation works; circles use vector.DrawFilledCircle.
type Surface struct {
	dst           *ebiten.Image
	width, height float64
	fill          color.Color
	xf            draw.TransformStack

	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

var _ draw.Surface = (*Surface)(nil)

// NewSurface creates a surface with the given logical size. Call Target
// before drawing.
func NewSurface(width, height float64) *Surface {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &Surface{
		width:   width,
		height:  height,
		fill:    color.White,
		xf:      draw.NewTransformStack(),
		fillImg: fillImg,
	}
}

// Target directs subsequent drawing to dst and resets the transform.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
	s.xf.Reset()
}

func (s *Surface) Width() float64 { return s.width }
func (s *Surface) Height() float64 { return s.height }

func (s *Surface) SetFillColor(c color.Color) { s.fill = c }

func (s *Surface) Save() { s.xf.Save() }
func (s *Surface) Restore() { s.xf.Restore() }
func (s *Surface) Translate(x, y float64) { s.xf.Translate(x, y) }
func (s *Surface) Rotate(angle float64) { s.xf.Rotate(angle) }

// ClearRect makes the transformed rectangle fully transparent.
func (s *Surface) ClearRect(x, y, w, h float64) {
	s.fillQuad(s.xf.Rect(x, y, w, h), color.Transparent, ebiten.BlendClear)
}

// FillRect fills the transformed rectangle with the fill color.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.fillQuad(s.xf.Rect(x, y, w, h), s.fill, ebiten.BlendSourceOver)
}

// FillCircle fills a circle centred on the transformed (cx, cy).
func (s *Surface) FillCircle(cx, cy, r float64) {
	if s.dst == nil {
		return
	}
	c := s.xf.Apply(cx, cy)
	vector.DrawFilledCircle(s.dst, float32(c.X), float32(c.Y), float32(r), s.fill, true)
}

func (s *Surface) fillQuad(corners [4]draw.Point, clr color.Color, blend ebiten.Blend) {
	if s.dst == nil {
		return
	}

	var path vector.Path
	path.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, p := range corners[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	// RGBA is premultiplied, so the draw uses the premultiplied color scale mode.
	r, g, b, a := clr.RGBA()
	s.fillVs, s.fillIs = path.AppendVerticesAndIndicesForFilling(s.fillVs[:0], s.fillIs[:0])
	for i := range s.fillVs {
		s.fillVs[i].ColorR = float32(r) / 0xffff
		s.fillVs[i].ColorG = float32(g) / 0xffff
		s.fillVs[i].ColorB = float32(b) / 0xffff
		s.fillVs[i].ColorA = float32(a) / 0xffff
	}
	s.dst.DrawTriangles(s.fillVs, s.fillIs, s.fillImg, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		Blend:          blend,
		AntiAlias:      true,
	})
}
