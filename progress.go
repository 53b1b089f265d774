package main

import (
	"time"

	"github.com/schollz/progressbar/v3"
)

type Bars struct {
	Render *progressbar.ProgressBar
	Encode *progressbar.ProgressBar
}

func NewBars(totalRender, totalEncode int) *Bars {
	theme := progressbar.Theme{
		Saucer:        "=",
		SaucerHead:    ">",
		SaucerPadding: " ",
		BarStart:      "[",
		BarEnd:        "]",
	}
	render := progressbar.NewOptions(totalRender,
		progressbar.OptionSetTheme(theme),
		progressbar.OptionSetDescription("[кадры] растеризация"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	encode := progressbar.NewOptions(totalEncode,
		progressbar.OptionSetTheme(theme),
		progressbar.OptionSetDescription("[вывод] сборка"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	return &Bars{Render: render, Encode: encode}
}

func (b *Bars) SetRender(i int) { _ = b.Render.Set(i) }
func (b *Bars) SetEncode(i int) { _ = b.Encode.Set(i) }

func (b *Bars) Done() {
	_ = b.Render.Finish()
	_ = b.Encode.Finish()
}
