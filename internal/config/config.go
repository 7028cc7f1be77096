package config

import "image/color"

const (
	WindowTitle  = "Circle Numbers"
	WindowWidth  = 1024
	WindowHeight = 768

	// Header (parameter bar) and footer dimensions
	HeaderHeight      = 138
	HeaderTopPadding  = 10
	FooterHeight      = ButtonHeight + 5
	FooterButtonTop   = 5
	CircleLabelTop    = 15
	ButtonWidth       = 80
	ButtonHeight      = 35
	ButtonPadding     = 5
	RandomButtonWidth = 240
	PageButtonWidth   = 48

	// Canvas height as a fraction of the space left for it
	ParameterBarFraction = 0.89
	FullScreenFraction   = 0.92

	ChordStrokeWidth  = 1
	CircleStrokeWidth = 1

	// Click tone
	ToneFrequency  = 880
	ToneDurationMS = 30
	ToneVolume     = 0.2
	ToneSampleRate = 44100
)

var (
	ChordColor       = color.RGBA{R: 40, G: 150, B: 239, A: 255}
	CanvasColor      = color.RGBA{A: 255}
	BackgroundColor  = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	HeaderColorTop   = color.RGBA{R: 244, G: 244, B: 36, A: 255}
	HeaderColorBelow = color.RGBA{R: 242, G: 242, B: 135, A: 255}

	ButtonColor         = color.RGBA{R: 136, G: 136, B: 136, A: 255}
	ButtonHoverColor    = color.RGBA{R: 112, G: 112, B: 112, A: 255}
	ButtonPressedColor  = color.RGBA{R: 88, G: 88, B: 88, A: 255}
	ButtonDisabledColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	ButtonBorderColor   = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)
