package main

import (
	"context"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw" // качественный даунскейл маски

	"github.com/Kelardry/kelardry-ao3-css/wave"
)

// один палетизированный кадр (для GIF-превью)
type PalFrame struct {
	Img   *image.Paletted
	Delay int // hundredths of a second
}

// суперсэмплинг маски точки
const ssaa = 4

// dotMask растит круг в 4x и ужимает до диаметра d — края получаются
// сглаженными, альфа маски несёт покрытие пикселя.
func dotMask(d int) *image.Alpha {
	big := image.NewAlpha(image.Rect(0, 0, d*ssaa, d*ssaa))
	r := float64(d*ssaa) / 2

	// построчная заливка круга
	for y := 0; y < d*ssaa; y++ {
		dy := float64(y) + 0.5 - r
		h := r*r - dy*dy
		if h <= 0 {
			continue
		}
		half := math.Sqrt(h)
		x0 := int(math.Ceil(r - half - 0.5))
		x1 := int(math.Floor(r + half - 0.5))
		for x := x0; x <= x1; x++ {
			big.SetAlpha(x, y, color.Alpha{A: 0xFF})
		}
	}

	small := image.NewAlpha(image.Rect(0, 0, d, d))
	xdraw.CatmullRom.Scale(small, small.Bounds(), big, big.Bounds(), draw.Src, nil)
	return small
}

// withOpacity умножает альфу цвета на текущую яркость точки
func withOpacity(c color.Color, op float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * op))
	return n
}

// BuildFrames рисует все кадры одного цикла волны.
// Каждый кадр: фон (обычно прозрачный) + точки; альфа каждой точки —
// значение кусочно-линейной функции в момент t = i/fps.
func BuildFrames(
	ctx context.Context,
	tl wave.Timeline,
	l wave.Layout,
	fps float64,
	dotColors []color.Color,
	bg color.Color,
	onFrame func(i int),
) ([]*image.RGBA, error) {

	total := tl.Frames(fps)
	mask := dotMask(l.Dot)
	_, _, _, bgA := bg.RGBA()

	frames := make([]*image.RGBA, 0, total)
	for fi := 0; fi < total; fi++ {
		select { case <-ctx.Done(): return nil, ctx.Err(); default: }

		rgba := image.NewRGBA(l.Bounds())
		if bgA > 0 {
			draw.Draw(rgba, rgba.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
		}

		t := tl.FrameTime(fi, fps)
		for di := 0; di < l.Count; di++ {
			col := withOpacity(dotColors[di%len(dotColors)], tl.OpacityAt(di, t))
			draw.DrawMask(rgba, l.DotRect(di),
				&image.Uniform{C: col}, image.Point{},
				mask, image.Point{}, draw.Over)
		}

		frames = append(frames, rgba)
		if onFrame != nil {
			onFrame(fi)
		}
	}
	return frames, nil
}

// PalettizeFrames квантует кадры для GIF: Plan9 + дизеринг Флойда-Стайнберга
func PalettizeFrames(ctx context.Context, frames []*image.RGBA, delayCS int) ([]*PalFrame, []int, error) {
	out := make([]*PalFrame, 0, len(frames))
	delays := make([]int, 0, len(frames))
	for _, fr := range frames {
		select { case <-ctx.Done(): return nil, nil, ctx.Err(); default: }

		pimg := image.NewPaletted(fr.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), fr, image.Point{})
		out = append(out, &PalFrame{Img: pimg, Delay: delayCS})
		delays = append(delays, delayCS)
	}
	return out, delays, nil
}
