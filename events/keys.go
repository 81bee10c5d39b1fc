// This file is part of Nazara.
//
// Nazara is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nazara is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nazara.  If not, see <https://www.gnu.org/licenses/>.

package events

import "fmt"

// Key identifies a physically distinct key. The set of keys is closed; a key
// not listed here cannot be represented and the normaliser will produce
// Unrecognised for it.
type Key int

// KeySetVersion is incremented whenever a Key is added to or removed from the
// closed set.
const KeySetVersion = 1

// NoKey is the zero value of the Key type. It is not a recognised key.
const NoKey Key = 0

// List of valid Key values.
const (
	// letters
	KeyA Key = iota + 1
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// digits on the main keyboard
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// escape and function keys
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	// editing and navigation
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyBackspace
	KeyEnter
	KeySpace
	KeyTab
	KeyCompose
	KeyCaret

	// numpad
	KeyNumLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadDecimal
	KeyNumpadComma
	KeyNumpadEnter
	KeyNumpadEquals

	// punctuation
	KeyApostrophe
	KeyAt
	KeyBackslash
	KeyColon
	KeyComma
	KeyEquals
	KeyGrave
	KeyLBracket
	KeyMinus
	KeyPeriod
	KeyRBracket
	KeySemicolon
	KeySlash
	KeyUnderline

	// modifier and lock keys
	KeyCapsLock
	KeyLAlt
	KeyLControl
	KeyLShift
	KeyLLogo
	KeyRAlt
	KeyRControl
	KeyRShift
	KeyRLogo

	// international and OEM keys
	KeyAbntC1
	KeyAbntC2
	KeyAx
	KeyConvert
	KeyKana
	KeyKanji
	KeyNoConvert
	KeyOEM102
	KeyYen
	KeyUnlabeled

	// system keys
	KeyApps
	KeyCalculator
	KeyMail
	KeyMyComputer
	KeyPower
	KeySleep
	KeySysrq
	KeyWake

	// media keys
	KeyMediaSelect
	KeyMediaStop
	KeyMute
	KeyNextTrack
	KeyPlayPause
	KeyPrevTrack
	KeyStop
	KeyVolumeDown
	KeyVolumeUp

	// browser and navigation keys
	KeyNavigateForward
	KeyNavigateBackward
	KeyWebBack
	KeyWebFavorites
	KeyWebForward
	KeyWebHome
	KeyWebRefresh
	KeyWebSearch
	KeyWebStop

	// clipboard keys
	KeyCopy
	KeyPaste
	KeyCut

	numKeys
)

var keyNames = [numKeys]string{
	NoKey:               "NoKey",
	KeyA:                "A",
	KeyB:                "B",
	KeyC:                "C",
	KeyD:                "D",
	KeyE:                "E",
	KeyF:                "F",
	KeyG:                "G",
	KeyH:                "H",
	KeyI:                "I",
	KeyJ:                "J",
	KeyK:                "K",
	KeyL:                "L",
	KeyM:                "M",
	KeyN:                "N",
	KeyO:                "O",
	KeyP:                "P",
	KeyQ:                "Q",
	KeyR:                "R",
	KeyS:                "S",
	KeyT:                "T",
	KeyU:                "U",
	KeyV:                "V",
	KeyW:                "W",
	KeyX:                "X",
	KeyY:                "Y",
	KeyZ:                "Z",
	Key0:                "0",
	Key1:                "1",
	Key2:                "2",
	Key3:                "3",
	Key4:                "4",
	Key5:                "5",
	Key6:                "6",
	Key7:                "7",
	Key8:                "8",
	Key9:                "9",
	KeyEscape:           "Escape",
	KeyF1:               "F1",
	KeyF2:               "F2",
	KeyF3:               "F3",
	KeyF4:               "F4",
	KeyF5:               "F5",
	KeyF6:               "F6",
	KeyF7:               "F7",
	KeyF8:               "F8",
	KeyF9:               "F9",
	KeyF10:              "F10",
	KeyF11:              "F11",
	KeyF12:              "F12",
	KeyF13:              "F13",
	KeyF14:              "F14",
	KeyF15:              "F15",
	KeyF16:              "F16",
	KeyF17:              "F17",
	KeyF18:              "F18",
	KeyF19:              "F19",
	KeyF20:              "F20",
	KeyF21:              "F21",
	KeyF22:              "F22",
	KeyF23:              "F23",
	KeyF24:              "F24",
	KeyPrintScreen:      "PrintScreen",
	KeyScrollLock:       "ScrollLock",
	KeyPause:            "Pause",
	KeyInsert:           "Insert",
	KeyHome:             "Home",
	KeyDelete:           "Delete",
	KeyEnd:              "End",
	KeyPageDown:         "PageDown",
	KeyPageUp:           "PageUp",
	KeyLeft:             "Left",
	KeyUp:               "Up",
	KeyRight:            "Right",
	KeyDown:             "Down",
	KeyBackspace:        "Backspace",
	KeyEnter:            "Enter",
	KeySpace:            "Space",
	KeyTab:              "Tab",
	KeyCompose:          "Compose",
	KeyCaret:            "Caret",
	KeyNumLock:          "NumLock",
	KeyNumpad0:          "Numpad0",
	KeyNumpad1:          "Numpad1",
	KeyNumpad2:          "Numpad2",
	KeyNumpad3:          "Numpad3",
	KeyNumpad4:          "Numpad4",
	KeyNumpad5:          "Numpad5",
	KeyNumpad6:          "Numpad6",
	KeyNumpad7:          "Numpad7",
	KeyNumpad8:          "Numpad8",
	KeyNumpad9:          "Numpad9",
	KeyNumpadAdd:        "NumpadAdd",
	KeyNumpadSubtract:   "NumpadSubtract",
	KeyNumpadMultiply:   "NumpadMultiply",
	KeyNumpadDivide:     "NumpadDivide",
	KeyNumpadDecimal:    "NumpadDecimal",
	KeyNumpadComma:      "NumpadComma",
	KeyNumpadEnter:      "NumpadEnter",
	KeyNumpadEquals:     "NumpadEquals",
	KeyApostrophe:       "Apostrophe",
	KeyAt:               "At",
	KeyBackslash:        "Backslash",
	KeyColon:            "Colon",
	KeyComma:            "Comma",
	KeyEquals:           "Equals",
	KeyGrave:            "Grave",
	KeyLBracket:         "LBracket",
	KeyMinus:            "Minus",
	KeyPeriod:           "Period",
	KeyRBracket:         "RBracket",
	KeySemicolon:        "Semicolon",
	KeySlash:            "Slash",
	KeyUnderline:        "Underline",
	KeyCapsLock:         "CapsLock",
	KeyLAlt:             "LAlt",
	KeyLControl:         "LControl",
	KeyLShift:           "LShift",
	KeyLLogo:            "LLogo",
	KeyRAlt:             "RAlt",
	KeyRControl:         "RControl",
	KeyRShift:           "RShift",
	KeyRLogo:            "RLogo",
	KeyAbntC1:           "AbntC1",
	KeyAbntC2:           "AbntC2",
	KeyAx:               "Ax",
	KeyConvert:          "Convert",
	KeyKana:             "Kana",
	KeyKanji:            "Kanji",
	KeyNoConvert:        "NoConvert",
	KeyOEM102:           "OEM102",
	KeyYen:              "Yen",
	KeyUnlabeled:        "Unlabeled",
	KeyApps:             "Apps",
	KeyCalculator:       "Calculator",
	KeyMail:             "Mail",
	KeyMyComputer:       "MyComputer",
	KeyPower:            "Power",
	KeySleep:            "Sleep",
	KeySysrq:            "Sysrq",
	KeyWake:             "Wake",
	KeyMediaSelect:      "MediaSelect",
	KeyMediaStop:        "MediaStop",
	KeyMute:             "Mute",
	KeyNextTrack:        "NextTrack",
	KeyPlayPause:        "PlayPause",
	KeyPrevTrack:        "PrevTrack",
	KeyStop:             "Stop",
	KeyVolumeDown:       "VolumeDown",
	KeyVolumeUp:         "VolumeUp",
	KeyNavigateForward:  "NavigateForward",
	KeyNavigateBackward: "NavigateBackward",
	KeyWebBack:          "WebBack",
	KeyWebFavorites:     "WebFavorites",
	KeyWebForward:       "WebForward",
	KeyWebHome:          "WebHome",
	KeyWebRefresh:       "WebRefresh",
	KeyWebSearch:        "WebSearch",
	KeyWebStop:          "WebStop",
	KeyCopy:             "Copy",
	KeyPaste:            "Paste",
	KeyCut:              "Cut",
}

// IsValid returns true if the Key is a member of the closed set.
func (k Key) IsValid() bool {
	return k > NoKey && k < numKeys
}

func (k Key) String() string {
	if k == NoKey || k.IsValid() {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Keys returns every recognised key in declaration order.
func Keys() []Key {
	k := make([]Key, 0, numKeys-1)
	for i := NoKey + 1; i < numKeys; i++ {
		k = append(k, i)
	}
	return k
}

// KeyFromString returns the Key with the specified name. The comparison is
// exact; names are those returned by Key.String().
func KeyFromString(name string) (Key, bool) {
	for i := NoKey + 1; i < numKeys; i++ {
		if keyNames[i] == name {
			return i, true
		}
	}
	return NoKey, false
}
