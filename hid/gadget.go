package hid

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// GadgetConfig names the /dev/hidgN character devices of a Linux USB gadget,
// one per HID function. An empty path leaves that report kind unsupported.
type GadgetConfig struct {
	Keyboard string
	Mouse    string
	Consumer string
}

// Gadget writes reports to Linux USB gadget HID functions. Each function must
// have been created with the matching ReportDescriptor, which
// `irhid descriptor` writes out.
type Gadget struct {
	mu       sync.Mutex
	keyboard io.WriteCloser
	mouse    io.WriteCloser
	consumer io.WriteCloser
	buf      [KeyboardReportSize]byte
}

// OpenGadget opens the configured devices for writing.
func OpenGadget(cfg GadgetConfig) (*Gadget, error) {
	g := &Gadget{}
	open := func(path string) (io.WriteCloser, error) {
		if path == "" {
			return nil, nil
		}
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("open gadget %s: %w", path, err)
		}
		return f, nil
	}

	var err error
	if g.keyboard, err = open(cfg.Keyboard); err != nil {
		return nil, err
	}
	if g.mouse, err = open(cfg.Mouse); err != nil {
		g.Close()
		return nil, err
	}
	if g.consumer, err = open(cfg.Consumer); err != nil {
		g.Close()
		return nil, err
	}
	if g.keyboard == nil && g.mouse == nil && g.consumer == nil {
		return nil, errors.New("open gadget: no device configured")
	}
	return g, nil
}

// NewGadget wraps already open writers; nil writers are unsupported kinds.
func NewGadget(keyboard, mouse, consumer io.WriteCloser) *Gadget {
	return &Gadget{keyboard: keyboard, mouse: mouse, consumer: consumer}
}

func (g *Gadget) write(w io.Writer, marshal func([]byte) int) error {
	if w == nil {
		return ErrUnsupported
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	n := marshal(g.buf[:])
	_, err := w.Write(g.buf[:n])
	return err
}

func (g *Gadget) WriteKeyboard(r *KeyboardReport) error {
	return g.write(g.keyboard, r.MarshalTo)
}

func (g *Gadget) WriteMouse(r *MouseReport) error {
	return g.write(g.mouse, r.MarshalTo)
}

func (g *Gadget) WriteConsumer(r *ConsumerReport) error {
	return g.write(g.consumer, r.MarshalTo)
}

// Close closes every open device and returns the first error.
func (g *Gadget) Close() error {
	var first error
	for _, w := range []io.WriteCloser{g.keyboard, g.mouse, g.consumer} {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
