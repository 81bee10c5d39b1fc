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

package sdlevents

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/nazara-engine/nazara/events"
)

// SDL sets this bit in the keycode of a key that has no character
// representation. the rest of the keycode is the scancode.
const scancodeMask = 1 << 30

// scancodeKeycode returns the keycode SDL gives to a key without a character
// representation.
func scancodeKeycode(sc sdl.Scancode) sdl.Keycode {
	return sdl.Keycode(sc | scancodeMask)
}

// the keys that have no SDL keycode: Compose, Ax, AbntC2, Unlabeled, Wake,
// NavigateForward and NavigateBackward.
var keyTable = events.NewKeyTable([]events.KeyEntry[sdl.Keycode]{
	// letters
	{Code: sdl.K_a, Key: events.KeyA},
	{Code: sdl.K_b, Key: events.KeyB},
	{Code: sdl.K_c, Key: events.KeyC},
	{Code: sdl.K_d, Key: events.KeyD},
	{Code: sdl.K_e, Key: events.KeyE},
	{Code: sdl.K_f, Key: events.KeyF},
	{Code: sdl.K_g, Key: events.KeyG},
	{Code: sdl.K_h, Key: events.KeyH},
	{Code: sdl.K_i, Key: events.KeyI},
	{Code: sdl.K_j, Key: events.KeyJ},
	{Code: sdl.K_k, Key: events.KeyK},
	{Code: sdl.K_l, Key: events.KeyL},
	{Code: sdl.K_m, Key: events.KeyM},
	{Code: sdl.K_n, Key: events.KeyN},
	{Code: sdl.K_o, Key: events.KeyO},
	{Code: sdl.K_p, Key: events.KeyP},
	{Code: sdl.K_q, Key: events.KeyQ},
	{Code: sdl.K_r, Key: events.KeyR},
	{Code: sdl.K_s, Key: events.KeyS},
	{Code: sdl.K_t, Key: events.KeyT},
	{Code: sdl.K_u, Key: events.KeyU},
	{Code: sdl.K_v, Key: events.KeyV},
	{Code: sdl.K_w, Key: events.KeyW},
	{Code: sdl.K_x, Key: events.KeyX},
	{Code: sdl.K_y, Key: events.KeyY},
	{Code: sdl.K_z, Key: events.KeyZ},

	// digits
	{Code: sdl.K_0, Key: events.Key0},
	{Code: sdl.K_1, Key: events.Key1},
	{Code: sdl.K_2, Key: events.Key2},
	{Code: sdl.K_3, Key: events.Key3},
	{Code: sdl.K_4, Key: events.Key4},
	{Code: sdl.K_5, Key: events.Key5},
	{Code: sdl.K_6, Key: events.Key6},
	{Code: sdl.K_7, Key: events.Key7},
	{Code: sdl.K_8, Key: events.Key8},
	{Code: sdl.K_9, Key: events.Key9},

	// function keys
	{Code: sdl.K_ESCAPE, Key: events.KeyEscape},
	{Code: sdl.K_F1, Key: events.KeyF1},
	{Code: sdl.K_F2, Key: events.KeyF2},
	{Code: sdl.K_F3, Key: events.KeyF3},
	{Code: sdl.K_F4, Key: events.KeyF4},
	{Code: sdl.K_F5, Key: events.KeyF5},
	{Code: sdl.K_F6, Key: events.KeyF6},
	{Code: sdl.K_F7, Key: events.KeyF7},
	{Code: sdl.K_F8, Key: events.KeyF8},
	{Code: sdl.K_F9, Key: events.KeyF9},
	{Code: sdl.K_F10, Key: events.KeyF10},
	{Code: sdl.K_F11, Key: events.KeyF11},
	{Code: sdl.K_F12, Key: events.KeyF12},
	{Code: sdl.K_F13, Key: events.KeyF13},
	{Code: sdl.K_F14, Key: events.KeyF14},
	{Code: sdl.K_F15, Key: events.KeyF15},
	{Code: sdl.K_F16, Key: events.KeyF16},
	{Code: sdl.K_F17, Key: events.KeyF17},
	{Code: sdl.K_F18, Key: events.KeyF18},
	{Code: sdl.K_F19, Key: events.KeyF19},
	{Code: sdl.K_F20, Key: events.KeyF20},
	{Code: sdl.K_F21, Key: events.KeyF21},
	{Code: sdl.K_F22, Key: events.KeyF22},
	{Code: sdl.K_F23, Key: events.KeyF23},
	{Code: sdl.K_F24, Key: events.KeyF24},

	// navigation and editing
	{Code: sdl.K_PRINTSCREEN, Key: events.KeyPrintScreen},
	{Code: sdl.K_SCROLLLOCK, Key: events.KeyScrollLock},
	{Code: sdl.K_PAUSE, Key: events.KeyPause},
	{Code: sdl.K_INSERT, Key: events.KeyInsert},
	{Code: sdl.K_HOME, Key: events.KeyHome},
	{Code: sdl.K_DELETE, Key: events.KeyDelete},
	{Code: sdl.K_END, Key: events.KeyEnd},
	{Code: sdl.K_PAGEDOWN, Key: events.KeyPageDown},
	{Code: sdl.K_PAGEUP, Key: events.KeyPageUp},
	{Code: sdl.K_LEFT, Key: events.KeyLeft},
	{Code: sdl.K_UP, Key: events.KeyUp},
	{Code: sdl.K_RIGHT, Key: events.KeyRight},
	{Code: sdl.K_DOWN, Key: events.KeyDown},
	{Code: sdl.K_BACKSPACE, Key: events.KeyBackspace},
	{Code: sdl.K_RETURN, Key: events.KeyEnter},
	{Code: sdl.K_SPACE, Key: events.KeySpace},
	{Code: sdl.K_TAB, Key: events.KeyTab},
	{Code: sdl.K_CARET, Key: events.KeyCaret},

	// numpad
	{Code: sdl.K_NUMLOCKCLEAR, Key: events.KeyNumLock},
	{Code: sdl.K_KP_0, Key: events.KeyNumpad0},
	{Code: sdl.K_KP_1, Key: events.KeyNumpad1},
	{Code: sdl.K_KP_2, Key: events.KeyNumpad2},
	{Code: sdl.K_KP_3, Key: events.KeyNumpad3},
	{Code: sdl.K_KP_4, Key: events.KeyNumpad4},
	{Code: sdl.K_KP_5, Key: events.KeyNumpad5},
	{Code: sdl.K_KP_6, Key: events.KeyNumpad6},
	{Code: sdl.K_KP_7, Key: events.KeyNumpad7},
	{Code: sdl.K_KP_8, Key: events.KeyNumpad8},
	{Code: sdl.K_KP_9, Key: events.KeyNumpad9},
	{Code: sdl.K_KP_PLUS, Key: events.KeyNumpadAdd},
	{Code: sdl.K_KP_MINUS, Key: events.KeyNumpadSubtract},
	{Code: sdl.K_KP_MULTIPLY, Key: events.KeyNumpadMultiply},
	{Code: sdl.K_KP_DIVIDE, Key: events.KeyNumpadDivide},
	{Code: sdl.K_KP_PERIOD, Key: events.KeyNumpadDecimal},
	{Code: sdl.K_KP_COMMA, Key: events.KeyNumpadComma},
	{Code: sdl.K_KP_ENTER, Key: events.KeyNumpadEnter},
	{Code: sdl.K_KP_EQUALS, Key: events.KeyNumpadEquals},
	{Code: sdl.K_KP_EQUALSAS400, Key: events.KeyNumpadEquals},

	// punctuation
	{Code: sdl.K_QUOTE, Key: events.KeyApostrophe},
	{Code: sdl.K_AT, Key: events.KeyAt},
	{Code: sdl.K_BACKSLASH, Key: events.KeyBackslash},
	{Code: sdl.K_COLON, Key: events.KeyColon},
	{Code: sdl.K_COMMA, Key: events.KeyComma},
	{Code: sdl.K_EQUALS, Key: events.KeyEquals},
	{Code: sdl.K_BACKQUOTE, Key: events.KeyGrave},
	{Code: sdl.K_LEFTBRACKET, Key: events.KeyLBracket},
	{Code: sdl.K_MINUS, Key: events.KeyMinus},
	{Code: sdl.K_PERIOD, Key: events.KeyPeriod},
	{Code: sdl.K_RIGHTBRACKET, Key: events.KeyRBracket},
	{Code: sdl.K_SEMICOLON, Key: events.KeySemicolon},
	{Code: sdl.K_SLASH, Key: events.KeySlash},
	{Code: sdl.K_UNDERSCORE, Key: events.KeyUnderline},

	// modifier keys
	{Code: sdl.K_CAPSLOCK, Key: events.KeyCapsLock},
	{Code: sdl.K_LALT, Key: events.KeyLAlt},
	{Code: sdl.K_LCTRL, Key: events.KeyLControl},
	{Code: sdl.K_LSHIFT, Key: events.KeyLShift},
	{Code: sdl.K_LGUI, Key: events.KeyLLogo},
	{Code: sdl.K_RALT, Key: events.KeyRAlt},
	{Code: sdl.K_RCTRL, Key: events.KeyRControl},
	{Code: sdl.K_RSHIFT, Key: events.KeyRShift},
	{Code: sdl.K_RGUI, Key: events.KeyRLogo},

	// international keys. identified by scancode
	{Code: scancodeKeycode(sdl.SCANCODE_INTERNATIONAL1), Key: events.KeyAbntC1},
	{Code: scancodeKeycode(sdl.SCANCODE_INTERNATIONAL2), Key: events.KeyKana},
	{Code: scancodeKeycode(sdl.SCANCODE_INTERNATIONAL3), Key: events.KeyYen},
	{Code: scancodeKeycode(sdl.SCANCODE_INTERNATIONAL4), Key: events.KeyConvert},
	{Code: scancodeKeycode(sdl.SCANCODE_INTERNATIONAL5), Key: events.KeyNoConvert},
	{Code: scancodeKeycode(sdl.SCANCODE_LANG2), Key: events.KeyKanji},
	{Code: scancodeKeycode(sdl.SCANCODE_NONUSBACKSLASH), Key: events.KeyOEM102},

	// system and application keys
	{Code: sdl.K_APPLICATION, Key: events.KeyApps},
	{Code: sdl.K_CALCULATOR, Key: events.KeyCalculator},
	{Code: sdl.K_MAIL, Key: events.KeyMail},
	{Code: sdl.K_COMPUTER, Key: events.KeyMyComputer},
	{Code: sdl.K_POWER, Key: events.KeyPower},
	{Code: sdl.K_SLEEP, Key: events.KeySleep},
	{Code: sdl.K_SYSREQ, Key: events.KeySysrq},

	// media keys
	{Code: sdl.K_MEDIASELECT, Key: events.KeyMediaSelect},
	{Code: sdl.K_AUDIOSTOP, Key: events.KeyMediaStop},
	{Code: sdl.K_MUTE, Key: events.KeyMute},
	{Code: sdl.K_AUDIOMUTE, Key: events.KeyMute},
	{Code: sdl.K_AUDIONEXT, Key: events.KeyNextTrack},
	{Code: sdl.K_AUDIOPLAY, Key: events.KeyPlayPause},
	{Code: sdl.K_AUDIOPREV, Key: events.KeyPrevTrack},
	{Code: sdl.K_STOP, Key: events.KeyStop},
	{Code: sdl.K_VOLUMEDOWN, Key: events.KeyVolumeDown},
	{Code: sdl.K_VOLUMEUP, Key: events.KeyVolumeUp},

	// browser keys
	{Code: sdl.K_AC_BACK, Key: events.KeyWebBack},
	{Code: sdl.K_AC_BOOKMARKS, Key: events.KeyWebFavorites},
	{Code: sdl.K_AC_FORWARD, Key: events.KeyWebForward},
	{Code: sdl.K_AC_HOME, Key: events.KeyWebHome},
	{Code: sdl.K_AC_REFRESH, Key: events.KeyWebRefresh},
	{Code: sdl.K_AC_SEARCH, Key: events.KeyWebSearch},
	{Code: sdl.K_AC_STOP, Key: events.KeyWebStop},

	// clipboard
	{Code: sdl.K_COPY, Key: events.KeyCopy},
	{Code: sdl.K_PASTE, Key: events.KeyPaste},
	{Code: sdl.K_CUT, Key: events.KeyCut},
})

// KeyTable returns the table used to map SDL keycodes to canonical keys.
func KeyTable() *events.KeyTable[sdl.Keycode] {
	return keyTable
}
