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

package x11events

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/nazara-engine/nazara/events"
)

// the keys that have no X11 keysym: AbntC1, AbntC2, Ax, Unlabeled,
// NavigateForward and NavigateBackward.
var keyTable = events.NewKeyTable([]events.KeyEntry[xproto.Keysym]{
	// letters
	{Code: 'a', Key: events.KeyA},
	{Code: 'b', Key: events.KeyB},
	{Code: 'c', Key: events.KeyC},
	{Code: 'd', Key: events.KeyD},
	{Code: 'e', Key: events.KeyE},
	{Code: 'f', Key: events.KeyF},
	{Code: 'g', Key: events.KeyG},
	{Code: 'h', Key: events.KeyH},
	{Code: 'i', Key: events.KeyI},
	{Code: 'j', Key: events.KeyJ},
	{Code: 'k', Key: events.KeyK},
	{Code: 'l', Key: events.KeyL},
	{Code: 'm', Key: events.KeyM},
	{Code: 'n', Key: events.KeyN},
	{Code: 'o', Key: events.KeyO},
	{Code: 'p', Key: events.KeyP},
	{Code: 'q', Key: events.KeyQ},
	{Code: 'r', Key: events.KeyR},
	{Code: 's', Key: events.KeyS},
	{Code: 't', Key: events.KeyT},
	{Code: 'u', Key: events.KeyU},
	{Code: 'v', Key: events.KeyV},
	{Code: 'w', Key: events.KeyW},
	{Code: 'x', Key: events.KeyX},
	{Code: 'y', Key: events.KeyY},
	{Code: 'z', Key: events.KeyZ},

	// column zero is usually the lower case keysym but not for every keymap
	{Code: 'A', Key: events.KeyA},
	{Code: 'B', Key: events.KeyB},
	{Code: 'C', Key: events.KeyC},
	{Code: 'D', Key: events.KeyD},
	{Code: 'E', Key: events.KeyE},
	{Code: 'F', Key: events.KeyF},
	{Code: 'G', Key: events.KeyG},
	{Code: 'H', Key: events.KeyH},
	{Code: 'I', Key: events.KeyI},
	{Code: 'J', Key: events.KeyJ},
	{Code: 'K', Key: events.KeyK},
	{Code: 'L', Key: events.KeyL},
	{Code: 'M', Key: events.KeyM},
	{Code: 'N', Key: events.KeyN},
	{Code: 'O', Key: events.KeyO},
	{Code: 'P', Key: events.KeyP},
	{Code: 'Q', Key: events.KeyQ},
	{Code: 'R', Key: events.KeyR},
	{Code: 'S', Key: events.KeyS},
	{Code: 'T', Key: events.KeyT},
	{Code: 'U', Key: events.KeyU},
	{Code: 'V', Key: events.KeyV},
	{Code: 'W', Key: events.KeyW},
	{Code: 'X', Key: events.KeyX},
	{Code: 'Y', Key: events.KeyY},
	{Code: 'Z', Key: events.KeyZ},

	// digits
	{Code: '0', Key: events.Key0},
	{Code: '1', Key: events.Key1},
	{Code: '2', Key: events.Key2},
	{Code: '3', Key: events.Key3},
	{Code: '4', Key: events.Key4},
	{Code: '5', Key: events.Key5},
	{Code: '6', Key: events.Key6},
	{Code: '7', Key: events.Key7},
	{Code: '8', Key: events.Key8},
	{Code: '9', Key: events.Key9},

	// function keys
	{Code: xkEscape, Key: events.KeyEscape},
	{Code: xkF1, Key: events.KeyF1},
	{Code: xkF1 + 1, Key: events.KeyF2},
	{Code: xkF1 + 2, Key: events.KeyF3},
	{Code: xkF1 + 3, Key: events.KeyF4},
	{Code: xkF1 + 4, Key: events.KeyF5},
	{Code: xkF1 + 5, Key: events.KeyF6},
	{Code: xkF1 + 6, Key: events.KeyF7},
	{Code: xkF1 + 7, Key: events.KeyF8},
	{Code: xkF1 + 8, Key: events.KeyF9},
	{Code: xkF1 + 9, Key: events.KeyF10},
	{Code: xkF1 + 10, Key: events.KeyF11},
	{Code: xkF1 + 11, Key: events.KeyF12},
	{Code: xkF1 + 12, Key: events.KeyF13},
	{Code: xkF1 + 13, Key: events.KeyF14},
	{Code: xkF1 + 14, Key: events.KeyF15},
	{Code: xkF1 + 15, Key: events.KeyF16},
	{Code: xkF1 + 16, Key: events.KeyF17},
	{Code: xkF1 + 17, Key: events.KeyF18},
	{Code: xkF1 + 18, Key: events.KeyF19},
	{Code: xkF1 + 19, Key: events.KeyF20},
	{Code: xkF1 + 20, Key: events.KeyF21},
	{Code: xkF1 + 21, Key: events.KeyF22},
	{Code: xkF1 + 22, Key: events.KeyF23},
	{Code: xkF1 + 23, Key: events.KeyF24},

	// navigation and editing
	{Code: xkPrint, Key: events.KeyPrintScreen},
	{Code: xkScrollLock, Key: events.KeyScrollLock},
	{Code: xkPause, Key: events.KeyPause},
	{Code: xkInsert, Key: events.KeyInsert},
	{Code: xkHome, Key: events.KeyHome},
	{Code: xkDelete, Key: events.KeyDelete},
	{Code: xkEnd, Key: events.KeyEnd},
	{Code: xkPageDown, Key: events.KeyPageDown},
	{Code: xkPageUp, Key: events.KeyPageUp},
	{Code: xkLeft, Key: events.KeyLeft},
	{Code: xkUp, Key: events.KeyUp},
	{Code: xkRight, Key: events.KeyRight},
	{Code: xkDown, Key: events.KeyDown},
	{Code: xkBackSpace, Key: events.KeyBackspace},
	{Code: xkReturn, Key: events.KeyEnter},
	{Code: ' ', Key: events.KeySpace},
	{Code: xkTab, Key: events.KeyTab},
	{Code: xkISOLeftTab, Key: events.KeyTab},
	{Code: xkMultiKey, Key: events.KeyCompose},
	{Code: '^', Key: events.KeyCaret},

	// numpad. without num lock the first column of the numpad digits is the
	// navigation keysym
	{Code: xkNumLock, Key: events.KeyNumLock},
	{Code: xkKP0, Key: events.KeyNumpad0},
	{Code: xkKP0 + 1, Key: events.KeyNumpad1},
	{Code: xkKP0 + 2, Key: events.KeyNumpad2},
	{Code: xkKP0 + 3, Key: events.KeyNumpad3},
	{Code: xkKP0 + 4, Key: events.KeyNumpad4},
	{Code: xkKP0 + 5, Key: events.KeyNumpad5},
	{Code: xkKP0 + 6, Key: events.KeyNumpad6},
	{Code: xkKP0 + 7, Key: events.KeyNumpad7},
	{Code: xkKP0 + 8, Key: events.KeyNumpad8},
	{Code: xkKP0 + 9, Key: events.KeyNumpad9},
	{Code: xkKPInsert, Key: events.KeyNumpad0},
	{Code: xkKPEnd, Key: events.KeyNumpad1},
	{Code: xkKPDown, Key: events.KeyNumpad2},
	{Code: xkKPPageDown, Key: events.KeyNumpad3},
	{Code: xkKPLeft, Key: events.KeyNumpad4},
	{Code: xkKPBegin, Key: events.KeyNumpad5},
	{Code: xkKPRight, Key: events.KeyNumpad6},
	{Code: xkKPHome, Key: events.KeyNumpad7},
	{Code: xkKPUp, Key: events.KeyNumpad8},
	{Code: xkKPPageUp, Key: events.KeyNumpad9},
	{Code: xkKPAdd, Key: events.KeyNumpadAdd},
	{Code: xkKPSubtract, Key: events.KeyNumpadSubtract},
	{Code: xkKPMultiply, Key: events.KeyNumpadMultiply},
	{Code: xkKPDivide, Key: events.KeyNumpadDivide},
	{Code: xkKPDecimal, Key: events.KeyNumpadDecimal},
	{Code: xkKPDelete, Key: events.KeyNumpadDecimal},
	{Code: xkKPSeparator, Key: events.KeyNumpadComma},
	{Code: xkKPEnter, Key: events.KeyNumpadEnter},
	{Code: xkKPEqual, Key: events.KeyNumpadEquals},

	// punctuation
	{Code: '\'', Key: events.KeyApostrophe},
	{Code: '@', Key: events.KeyAt},
	{Code: '\\', Key: events.KeyBackslash},
	{Code: ':', Key: events.KeyColon},
	{Code: ',', Key: events.KeyComma},
	{Code: '=', Key: events.KeyEquals},
	{Code: '`', Key: events.KeyGrave},
	{Code: '[', Key: events.KeyLBracket},
	{Code: '-', Key: events.KeyMinus},
	{Code: '.', Key: events.KeyPeriod},
	{Code: ']', Key: events.KeyRBracket},
	{Code: ';', Key: events.KeySemicolon},
	{Code: '/', Key: events.KeySlash},
	{Code: '_', Key: events.KeyUnderline},

	// modifier keys
	{Code: xkCapsLock, Key: events.KeyCapsLock},
	{Code: xkAltL, Key: events.KeyLAlt},
	{Code: xkControlL, Key: events.KeyLControl},
	{Code: xkShiftL, Key: events.KeyLShift},
	{Code: xkSuperL, Key: events.KeyLLogo},
	{Code: xkAltR, Key: events.KeyRAlt},
	{Code: xkISOLevel3, Key: events.KeyRAlt},
	{Code: xkControlR, Key: events.KeyRControl},
	{Code: xkShiftR, Key: events.KeyRShift},
	{Code: xkSuperR, Key: events.KeyRLogo},

	// international keys. the 102nd key of an ISO keyboard is less-than in
	// the first column of most european keymaps
	{Code: xkHenkanMode, Key: events.KeyConvert},
	{Code: xkHiraKata, Key: events.KeyKana},
	{Code: xkKanji, Key: events.KeyKanji},
	{Code: xkMuhenkan, Key: events.KeyNoConvert},
	{Code: '<', Key: events.KeyOEM102},
	{Code: xkYen, Key: events.KeyYen},

	// system and application keys
	{Code: xkMenu, Key: events.KeyApps},
	{Code: xf86Calculator, Key: events.KeyCalculator},
	{Code: xf86Mail, Key: events.KeyMail},
	{Code: xf86MyComputer, Key: events.KeyMyComputer},
	{Code: xf86PowerOff, Key: events.KeyPower},
	{Code: xf86Sleep, Key: events.KeySleep},
	{Code: xkSysReq, Key: events.KeySysrq},
	{Code: xf86WakeUp, Key: events.KeyWake},

	// media keys
	{Code: xf86AudioMedia, Key: events.KeyMediaSelect},
	{Code: xf86AudioStop, Key: events.KeyMediaStop},
	{Code: xf86AudioMute, Key: events.KeyMute},
	{Code: xf86AudioNext, Key: events.KeyNextTrack},
	{Code: xf86AudioPlay, Key: events.KeyPlayPause},
	{Code: xf86AudioPause, Key: events.KeyPlayPause},
	{Code: xf86AudioPrev, Key: events.KeyPrevTrack},
	{Code: xkCancel, Key: events.KeyStop},
	{Code: xf86AudioLowerVolume, Key: events.KeyVolumeDown},
	{Code: xf86AudioRaiseVolume, Key: events.KeyVolumeUp},

	// browser keys
	{Code: xf86Back, Key: events.KeyWebBack},
	{Code: xf86Favorites, Key: events.KeyWebFavorites},
	{Code: xf86Forward, Key: events.KeyWebForward},
	{Code: xf86HomePage, Key: events.KeyWebHome},
	{Code: xf86Refresh, Key: events.KeyWebRefresh},
	{Code: xf86Search, Key: events.KeyWebSearch},
	{Code: xf86Stop, Key: events.KeyWebStop},

	// clipboard
	{Code: xf86Copy, Key: events.KeyCopy},
	{Code: xf86Paste, Key: events.KeyPaste},
	{Code: xf86Cut, Key: events.KeyCut},
})

// KeyTable returns the table used to map X11 keysyms to canonical keys.
func KeyTable() *events.KeyTable[xproto.Keysym] {
	return keyTable
}
