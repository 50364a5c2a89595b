package hid

import (
	"fmt"
	"strings"
)

var keyNames = map[string]uint8{
	"enter": KeyEnter, "escape": KeyEscape, "esc": KeyEscape,
	"backspace": KeyBackspace, "tab": KeyTab, "space": KeySpace,
	"f1": KeyF1, "f2": KeyF2, "f3": KeyF3, "f4": KeyF4, "f5": KeyF5, "f6": KeyF6,
	"f7": KeyF7, "f8": KeyF8, "f9": KeyF9, "f10": KeyF10, "f11": KeyF11, "f12": KeyF12,
	"home": KeyHome, "end": KeyEnd, "delete": KeyDelete,
	"page_up": KeyPageUp, "page_down": KeyPageDown,
	"right": KeyRight, "left": KeyLeft, "down": KeyDown, "up": KeyUp,
}

var modifierNames = map[string]uint8{
	"ctrl": ModLeftCtrl, "shift": ModLeftShift, "alt": ModLeftAlt, "gui": ModLeftGUI,
	"right_ctrl": ModRightCtrl, "right_shift": ModRightShift, "right_alt": ModRightAlt, "right_gui": ModRightGUI,
}

var usageNames = map[string]uint16{
	"play": UsagePlay, "pause": UsagePause, "record": UsageRecord,
	"fast_forward": UsageFastForward, "rewind": UsageRewind,
	"next_track": UsageNextTrack, "prev_track": UsagePrevTrack,
	"stop": UsageStop, "eject": UsageEject, "play_pause": UsagePlayPause,
	"mute": UsageMute, "volume_up": UsageVolumeUp, "volume_down": UsageVolumeDown,
	"brightness_up": UsageBrightnessUp, "brightness_down": UsageBrightnessDown,
	"calculator": UsageCalculator, "browser_home": UsageBrowserHome, "browser_back": UsageBrowserBack,
}

var buttonNames = map[string]uint8{
	"left": MouseButtonLeft, "right": MouseButtonRight, "middle": MouseButtonMiddle,
}

// LookupKey resolves a key name such as "a", "f5" or "page_down".
func LookupKey(name string) (uint8, error) {
	name = strings.ToLower(name)
	if len(name) == 1 && name[0] >= 'a' && name[0] <= 'z' {
		return KeyA + name[0] - 'a', nil
	}
	if k, ok := keyNames[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// LookupModifiers ORs together the named modifiers.
func LookupModifiers(names []string) (uint8, error) {
	var mods uint8
	for _, n := range names {
		m, ok := modifierNames[strings.ToLower(n)]
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
		mods |= m
	}
	return mods, nil
}

// LookupUsage resolves a consumer control name such as "volume_up".
func LookupUsage(name string) (uint16, error) {
	if u, ok := usageNames[strings.ToLower(name)]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("unknown consumer usage %q", name)
}

// LookupButton resolves "left", "right" or "middle".
func LookupButton(name string) (uint8, error) {
	if b, ok := buttonNames[strings.ToLower(name)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}
