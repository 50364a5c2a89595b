package dispatch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sparques/irhid/hid"
	"github.com/sparques/irhid/nec"
)

// ErrReservedCommand is returned for bindings on the repeat or fail codes.
var ErrReservedCommand = errors.New("command is reserved")

// KeymapFile is the YAML form of a keymap:
//
//	base: presenter
//	bindings:
//	  - command: 0x10
//	    action: key
//	    key: f5
//	    modifiers: [shift]
//	  - command: 0x02
//	    action: none
//
// Bindings are applied on top of the base variant in order; action "none"
// removes a command.
type KeymapFile struct {
	Base     string    `yaml:"base"`
	Bindings []Binding `yaml:"bindings"`
}

type Binding struct {
	Command   uint8    `yaml:"command"`
	Action    string   `yaml:"action"`
	Usage     string   `yaml:"usage"`
	Key       string   `yaml:"key"`
	Modifiers []string `yaml:"modifiers"`
	X         int8     `yaml:"x"`
	Y         int8     `yaml:"y"`
	Wheel     int8     `yaml:"wheel"`
	Button    string   `yaml:"button"`
	// OneShot defaults to true for keys and clicks, false otherwise.
	OneShot *bool `yaml:"one_shot"`
}

// LoadKeymap reads a YAML keymap file.
func LoadKeymap(path string, mouseSpeed int8) (Keymap, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	m, err := ParseKeymap(b, mouseSpeed)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return m, nil
}

// ParseKeymap builds a Keymap from YAML. mouseSpeed applies to a mouse base.
func ParseKeymap(b []byte, mouseSpeed int8) (Keymap, error) {
	var f KeymapFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	m := Keymap{}
	if f.Base != "" {
		base, err := VariantKeymap(f.Base, mouseSpeed)
		if err != nil {
			return nil, err
		}
		m = base
	}

	for i, bnd := range f.Bindings {
		if bnd.Command >= uint8(nec.ResultRepeat) {
			return nil, fmt.Errorf("binding %d: 0x%02X: %w", i, bnd.Command, ErrReservedCommand)
		}
		kind, err := ParseKind(bnd.Action)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		if kind == KindNone {
			delete(m, bnd.Command)
			continue
		}
		a, err := bnd.action(kind)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		m[bnd.Command] = a
	}
	return m, nil
}

func (b Binding) action(kind Kind) (Action, error) {
	a := Action{Kind: kind, X: b.X, Y: b.Y, Wheel: b.Wheel}
	var err error

	switch kind {
	case KindConsumer:
		a.Usage, err = hid.LookupUsage(b.Usage)
	case KindKey:
		a.OneShot = true
		if a.Key, err = hid.LookupKey(b.Key); err != nil {
			break
		}
		a.Modifiers, err = hid.LookupModifiers(b.Modifiers)
	case KindClick:
		a.OneShot = true
		button := b.Button
		if button == "" {
			button = "left"
		}
		a.Buttons, err = hid.LookupButton(button)
	case KindMove:
		if b.X == 0 && b.Y == 0 {
			err = errors.New("move needs x or y")
		}
	case KindWheel:
		if b.Wheel == 0 {
			err = errors.New("wheel needs a non-zero wheel")
		}
	}
	if err != nil {
		return Action{}, err
	}
	if b.OneShot != nil {
		a.OneShot = *b.OneShot
	}
	return a, nil
}
