//go:build linux

// Package gpiocdev reads an IR receiver through the Linux GPIO character
// device.
package gpiocdev

import (
	"fmt"
	"sync"

	gpiod "github.com/warthog618/go-gpiocdev"
)

// Consumer is the label the line is requested under, as shown by gpioinfo.
const Consumer = "irhid"

// Line is an irhid.Line backed by a requested GPIO line.
type Line struct {
	line *gpiod.Line

	mu  sync.Mutex
	err error
}

// Open requests offset on chip (for example "gpiochip0") as a pulled-up
// input.
func Open(chip string, offset int) (*Line, error) {
	l, err := gpiod.RequestLine(chip, offset,
		gpiod.AsInput,
		gpiod.WithPullUp,
		gpiod.WithConsumer(Consumer),
	)
	if err != nil {
		return nil, fmt.Errorf("request %s line %d: %w", chip, offset, err)
	}
	return &Line{line: l}, nil
}

// Get returns the line level. A failed read reports the idle level and is
// kept for Err.
func (l *Line) Get() bool {
	v, err := l.line.Value()
	if err != nil {
		l.mu.Lock()
		if l.err == nil {
			l.err = err
		}
		l.mu.Unlock()
		return true
	}
	return v != 0
}

// Err returns the first read error, if any.
func (l *Line) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *Line) Close() error {
	return l.line.Close()
}
