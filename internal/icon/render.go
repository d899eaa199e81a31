// Package icon renders the application icon natively and encodes it as a
// multi-resolution ICO, so a missing asset can be produced without the
// Python imaging stack.
package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Size is the edge length of the master image every ICO entry is scaled from.
const Size = 256

var (
	tileColor   = color.RGBA{75, 85, 175, 255}
	shadowColor = color.RGBA{50, 55, 120, 255}
	pageColor   = color.RGBA{250, 250, 252, 255}
	borderColor = color.RGBA{200, 200, 210, 255}
	lineColor   = color.RGBA{120, 130, 180, 255}
	penColor    = color.RGBA{255, 200, 50, 255}
	tipColor    = color.RGBA{80, 80, 80, 255}
	eraserColor = color.RGBA{255, 150, 150, 255}
)

type point struct{ x, y float64 }

// canvas wraps an RGBA image and a reusable rasterizer.
type canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func newCanvas(size int) *canvas {
	return &canvas{
		img: image.NewRGBA(image.Rect(0, 0, size, size)),
		z:   vector.NewRasterizer(size, size),
	}
}

func (c *canvas) fill(col color.Color, pts ...point) {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.MoveTo(float32(pts[0].x), float32(pts[0].y))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.x), float32(p.y))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// rect fills the inclusive pixel box [x0,x1]x[y0,y1].
func (c *canvas) rect(col color.Color, x0, y0, x1, y1 float64) {
	c.fill(col, point{x0, y0}, point{x1 + 1, y0}, point{x1 + 1, y1 + 1}, point{x0, y1 + 1})
}

// roundedRect fills a box whose corners are quarter circles of radius r.
func (c *canvas) roundedRect(col color.Color, x0, y0, x1, y1, r float64) {
	x1++
	y1++
	const k = 0.5522847498 // cubic Bézier circle constant
	b := c.img.Bounds()
	z := c.z
	z.Reset(b.Dx(), b.Dy())
	z.MoveTo(float32(x0+r), float32(y0))
	z.LineTo(float32(x1-r), float32(y0))
	z.CubeTo(float32(x1-r+k*r), float32(y0), float32(x1), float32(y0+r-k*r), float32(x1), float32(y0+r))
	z.LineTo(float32(x1), float32(y1-r))
	z.CubeTo(float32(x1), float32(y1-r+k*r), float32(x1-r+k*r), float32(y1), float32(x1-r), float32(y1))
	z.LineTo(float32(x0+r), float32(y1))
	z.CubeTo(float32(x0+r-k*r), float32(y1), float32(x0), float32(y1-r+k*r), float32(x0), float32(y1-r))
	z.LineTo(float32(x0), float32(y0+r))
	z.CubeTo(float32(x0), float32(y0+r-k*r), float32(x0+r-k*r), float32(y0), float32(x0+r), float32(y0))
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// line strokes a segment of the given width with flat caps.
func (c *canvas) line(col color.Color, a, b point, width float64) {
	dx, dy := b.x-a.x, b.y-a.y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	c.fill(col,
		point{a.x + nx, a.y + ny},
		point{b.x + nx, b.y + ny},
		point{b.x - nx, b.y - ny},
		point{a.x - nx, a.y - ny},
	)
}

// Render draws the master icon: a rounded tile, a lined page with a drop
// shadow, and a pen laid diagonally across it.
func Render() *image.RGBA {
	c := newCanvas(Size)
	const size = float64(Size)

	margin := math.Floor(size / 10)
	c.roundedRect(tileColor, margin, margin, size-margin, size-margin, math.Floor(size/5))

	pageMargin := math.Floor(size / 4)
	left, top := pageMargin+10, pageMargin
	right, bottom := size-pageMargin-10, size-pageMargin+10

	const shadow = 4
	c.rect(shadowColor, left+shadow, top+shadow, right+shadow, bottom+shadow)
	c.rect(borderColor, left, top, right, bottom)
	c.rect(pageColor, left+2, top+2, right-2, bottom-2)

	for i := 0; i < 6; i++ {
		y := top + 25 + float64(i)*22
		if y >= bottom-20 {
			break
		}
		xStart, xEnd := left+15, right-15
		switch i {
		case 5:
			xEnd = xStart + math.Floor((xEnd-xStart)/2)
		case 2:
			xEnd = xStart + math.Floor((xEnd-xStart)*3/4)
		}
		c.line(lineColor, point{xStart, y}, point{xEnd, y}, 3)
	}

	const penWidth = 18
	penTop := point{size - margin - 30, margin + 50}
	penBottom := point{margin + 50, size - margin - 30}
	c.line(penColor, penTop, penBottom, penWidth)

	angle := math.Atan2(penBottom.y-penTop.y, penBottom.x-penTop.x)
	tip := point{penBottom.x + 25*math.Cos(angle), penBottom.y + 25*math.Sin(angle)}
	perp := angle + math.Pi/2
	half := float64(penWidth / 2)
	c.fill(tipColor,
		point{penBottom.x + half*math.Cos(perp), penBottom.y + half*math.Sin(perp)},
		point{penBottom.x - half*math.Cos(perp), penBottom.y - half*math.Sin(perp)},
		tip,
	)

	eraserEnd := point{penTop.x - 20*math.Cos(angle), penTop.y - 20*math.Sin(angle)}
	c.line(eraserColor, penTop, eraserEnd, penWidth)

	return c.img
}
