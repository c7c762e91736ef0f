package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	frameRateHz         = 60
	doubleClickWindowMS = 200
	// handleThickness is the handle's size in cells along the active axis.
	handleThickness = 1
	// statusBarHeight is reserved at the bottom for sizes/state/help.
	statusBarHeight = 1

	frameInterval     = time.Second / frameRateHz
	doubleClickWindow = doubleClickWindowMS * time.Millisecond
)
