package dispatch

import (
	"fmt"

	"github.com/sparques/irhid/hid"
)

// Kind selects what an Action sends.
type Kind uint8

const (
	KindNone Kind = iota
	KindConsumer
	KindKey
	KindMove
	KindWheel
	KindClick
)

var kindNames = [...]string{
	KindNone:     "none",
	KindConsumer: "consumer",
	KindKey:      "key",
	KindMove:     "move",
	KindWheel:    "wheel",
	KindClick:    "click",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return KindNone, fmt.Errorf("unknown action %q", s)
}

// Action is one keymap entry. Only the fields of its Kind are used.
//
// OneShot actions clear the dispatcher's last command, so a held button
// fires them once instead of on every repeat code.
type Action struct {
	Kind      Kind
	Usage     uint16
	Modifiers uint8
	Key       uint8
	X, Y      int8
	Wheel     int8
	Buttons   uint8
	OneShot   bool
}

func Consumer(usage uint16, oneShot bool) Action {
	return Action{Kind: KindConsumer, Usage: usage, OneShot: oneShot}
}

func Key(modifiers, key uint8, oneShot bool) Action {
	return Action{Kind: KindKey, Modifiers: modifiers, Key: key, OneShot: oneShot}
}

func Move(x, y int8) Action {
	return Action{Kind: KindMove, X: x, Y: y}
}

func Wheel(detents int8) Action {
	return Action{Kind: KindWheel, Wheel: detents}
}

func Click(buttons uint8) Action {
	return Action{Kind: KindClick, Buttons: buttons, OneShot: true}
}

// Perform sends the reports for a to dev. s times the click hold.
func (a Action) Perform(dev hid.Device, s hid.Sleeper) error {
	switch a.Kind {
	case KindConsumer:
		return hid.Consume(dev, a.Usage)
	case KindKey:
		return hid.Type(dev, a.Modifiers, a.Key)
	case KindMove:
		return hid.Move(dev, a.X, a.Y)
	case KindWheel:
		return hid.Scroll(dev, a.Wheel)
	case KindClick:
		return hid.Click(dev, s, a.Buttons)
	}
	return nil
}
