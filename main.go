package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Kelardry/kelardry-ao3-css/wave"
)

var (
	outPath      = flag.String("out", "ellipsis.png", "куда сохранить анимацию")
	dotPx        = flag.Int("dot", 30, "диаметр точки, px")
	spacingPx    = flag.Int("spacing", 26, "расстояние между точками, px")
	paddingPx    = flag.Int("padding", 2, "поля по краям, px")
	fps          = flag.Float64("fps", 30.0, "кадров в секунду")
	dotColorsStr = flag.String("dotColors", "#000000", "цвета точек через запятую (hex); если меньше трёх — идут по кругу")
	bgHex        = flag.String("bg", "#00000000", "цвет фона (hex, по умолчанию прозрачный)")
	format       = flag.String("format", "apng", "формат вывода: apng или gif (превью)")
	pprofAddr    = flag.String("pprof", "", "включить pprof на адресе (например 127.0.0.1:6060), пусто = выключено")

	timeout = flag.Duration("timeout", 2*time.Minute, "жёсткий таймаут всего процесса")
)

func main() {
	flag.Parse()

	if *pprofAddr != "" {
		enablePPROF(*pprofAddr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *outPath, *dotPx, *spacingPx, *paddingPx, *fps, *dotColorsStr, *bgHex, *format); err != nil {
		log.Fatalf("❌ Ошибка: %v", err)
	}
	log.Printf("✅ Готово: %s", *outPath)
	log.Printf("в CSS: background-image: url('%s');", filepath.Base(*outPath))
}

func run(ctx context.Context, outPath string, dot, spacing, padding int, fps float64, dotColorsCSV, bgHex, format string) error {
	if fps < 1 || fps > 240 {
		return fmt.Errorf("fps должен быть в диапазоне [1..240], сейчас: %g", fps)
	}
	if dot < 4 || dot > 512 {
		return fmt.Errorf("неподходящий диаметр точки: %d (должен быть 4..512)", dot)
	}
	if spacing < 0 || spacing > 512 {
		return fmt.Errorf("неподходящее расстояние: %d (должно быть 0..512)", spacing)
	}
	if padding < 0 || padding > 64 {
		return fmt.Errorf("неподходящие поля: %d (должны быть 0..64)", padding)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "apng" && format != "gif" {
		return fmt.Errorf("неизвестный формат: %q (ожидается apng или gif)", format)
	}

	dotColors, err := ParseHexColors(dotColorsCSV)
	if err != nil { return fmt.Errorf("dotColors: %w", err) }
	if len(dotColors) == 0 {
		return errors.New("dotColors пуст — укажите хотя бы один цвет")
	}

	bg, err := ParseHexColor(bgHex)
	if err != nil { return fmt.Errorf("bg color: %w", err) }
	if format == "gif" && !isOpaque(bg) {
		// GIF не умеет полупрозрачность — подкладываем белый
		bg = color.White
	}

	tl := wave.Ellipsis()
	l := wave.Layout{Dot: dot, Spacing: spacing, Padding: padding, Count: tl.Dots()}
	total := tl.Frames(fps)

	log.Printf("волна: %d кадров при %g fps, цикл %.2fs, холст %dx%d px",
		total, fps, tl.Cycle, l.Width(), l.Height())
	for _, m := range tl.KeyMoments() {
		log.Printf("  t=%.2fs: точки %s", m.T, fmtLevels(m.Levels))
	}

	// прогресс-бары
	bars := NewBars(total, total)
	defer bars.Done()

	frames, err := BuildFrames(ctx, tl, l, fps, dotColors, bg, func(i int) { bars.SetRender(i + 1) })
	if err != nil { return fmt.Errorf("build frames: %w", err) }

	// запись через временный файл
	tmpOut := outPath + ".part"
	switch format {
	case "apng":
		// задержка кадра в долях секунды: round(1000/fps) мс
		d := frameDelay{Num: uint16(math.Round(1000.0 / fps)), Den: 1000}
		delays := make([]frameDelay, len(frames))
		for i := range delays { delays[i] = d }
		err = encodeAPNG(ctx, frames, delays, tmpOut, func(i int) { bars.SetEncode(i + 1) })
	case "gif":
		delayCS := int(math.Round(100.0 / fps))
		if delayCS < 1 { delayCS = 1 }
		pal, delays, perr := PalettizeFrames(ctx, frames, delayCS)
		if perr != nil {
			err = perr
			break
		}
		err = encodeGIF(ctx, pal, delays, tmpOut, func(i int) { bars.SetEncode(i + 1) })
	}
	if err != nil {
		_ = os.Remove(tmpOut)
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if err := os.Rename(tmpOut, outPath); err != nil {
		if err := copyFile(tmpOut, outPath); err != nil {
			return fmt.Errorf("rename/copy: %w", err)
		}
		_ = os.Remove(tmpOut)
	}

	if st, err := os.Stat(outPath); err == nil {
		log.Printf("размер файла: %.1f KB", float64(st.Size())/1024.0)
	}
	return nil
}

func encodeAPNG(ctx context.Context, frames []*image.RGBA, delays []frameDelay, outPath string, onFrame func(i int)) error {
	if len(frames) == 0 { return errors.New("нет кадров") }
	if len(delays) != len(frames) { return errors.New("len(delays) != len(frames)") }

	f, err := os.Create(outPath)
	if err != nil { return err }
	defer f.Close()

	for i := range frames {
		select { case <-ctx.Done(): return ctx.Err(); default: }
		onFrame(i)
	}
	return writeAPNGAll(f, frames, delays)
}

func encodeGIF(ctx context.Context, frames []*PalFrame, delays []int, outPath string, onFrame func(i int)) error {
	if len(frames) == 0 { return errors.New("нет кадров") }
	if len(delays) != len(frames) { return errors.New("len(delays) != len(frames)") }

	f, err := os.Create(outPath)
	if err != nil { return err }
	defer f.Close()

	for i := range frames {
		select { case <-ctx.Done(): return ctx.Err(); default: }
		onFrame(i)
	}
	return writeGIFAll(f, frames, delays)
}

func isOpaque(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0xFFFF
}

func fmtLevels(levels []float64) string {
	parts := make([]string, len(levels))
	for i, v := range levels {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil { return err }
	in, err := os.Open(src)
	if err != nil { return err }
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil { return err }
	defer func() { _ = out.Close() }()
	if _, err := out.ReadFrom(in); err != nil { return err }
	return out.Sync()
}
