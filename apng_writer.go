package main

import (
	"image"
	"io"

	"github.com/kettek/apng"
)

// задержка кадра в fcTL: num/den секунды
type frameDelay struct {
	Num, Den uint16
}

func writeAPNGAll(w io.Writer, frames []*image.RGBA, delays []frameDelay) error {
	a := apng.APNG{
		Frames:    make([]apng.Frame, len(frames)),
		LoopCount: 0, // 0 — бесконечный цикл
	}
	for i, fr := range frames {
		a.Frames[i] = apng.Frame{
			Image:            fr,
			DelayNumerator:   delays[i].Num,
			DelayDenominator: delays[i].Den,
			// кадры полные, альфа пишется как есть
			DisposeOp: apng.DISPOSE_OP_NONE,
			BlendOp:   apng.BLEND_OP_SOURCE,
		}
	}
	return apng.Encode(w, a)
}
