package main

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
)

// один цвет: #RGB, #RRGGBB или #AARRGGBB
func ParseHexColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return nil, errors.New("hex color должен начинаться с #")
	}
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3:
		// короткая форма: каждая цифра дублируется
		r, err1 := strconv.ParseUint(strings.Repeat(h[0:1], 2), 16, 8)
		g, err2 := strconv.ParseUint(strings.Repeat(h[1:2], 2), 16, 8)
		b, err3 := strconv.ParseUint(strings.Repeat(h[2:3], 2), 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, errors.New("не hex: " + s)
		}
		return color.NRGBA{uint8(r), uint8(g), uint8(b), 0xFF}, nil
	case 6:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil { return nil, errors.New("не hex: " + s) }
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xFF}, nil
	case 8:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil { return nil, errors.New("не hex: " + s) }
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), uint8(v >> 24)}, nil
	}
	return nil, errors.New("hex color формат: #RGB, #RRGGBB или #AARRGGBB")
}

// список цветов через запятую
func ParseHexColors(csv string) ([]color.Color, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" { return nil, nil }
	parts := strings.Split(csv, ",")
	out := make([]color.Color, 0, len(parts))
	for _, p := range parts {
		c, err := ParseHexColor(strings.TrimSpace(p))
		if err != nil { return nil, err }
		out = append(out, c)
	}
	return out, nil
}
