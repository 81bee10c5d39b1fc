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

import "github.com/BurntSushi/xgb/xproto"

// keysym values from X11/keysymdef.h and X11/XF86keysym.h. the printable
// latin-1 keysyms are the same as their character codes and are not listed
// here
const (
	xkBackSpace   xproto.Keysym = 0xff08
	xkTab         xproto.Keysym = 0xff09
	xkReturn      xproto.Keysym = 0xff0d
	xkPause       xproto.Keysym = 0xff13
	xkScrollLock  xproto.Keysym = 0xff14
	xkSysReq      xproto.Keysym = 0xff15
	xkEscape      xproto.Keysym = 0xff1b
	xkMultiKey    xproto.Keysym = 0xff20
	xkKanji       xproto.Keysym = 0xff21
	xkMuhenkan    xproto.Keysym = 0xff22
	xkHenkanMode  xproto.Keysym = 0xff23
	xkHiraKata    xproto.Keysym = 0xff27
	xkHome        xproto.Keysym = 0xff50
	xkLeft        xproto.Keysym = 0xff51
	xkUp          xproto.Keysym = 0xff52
	xkRight       xproto.Keysym = 0xff53
	xkDown        xproto.Keysym = 0xff54
	xkPageUp      xproto.Keysym = 0xff55
	xkPageDown    xproto.Keysym = 0xff56
	xkEnd         xproto.Keysym = 0xff57
	xkPrint       xproto.Keysym = 0xff61
	xkInsert      xproto.Keysym = 0xff63
	xkMenu        xproto.Keysym = 0xff67
	xkCancel      xproto.Keysym = 0xff69
	xkNumLock     xproto.Keysym = 0xff7f
	xkDelete      xproto.Keysym = 0xffff
	xkISOLeftTab  xproto.Keysym = 0xfe20
	xkISOLevel3   xproto.Keysym = 0xfe03
	xkShiftL      xproto.Keysym = 0xffe1
	xkShiftR      xproto.Keysym = 0xffe2
	xkControlL    xproto.Keysym = 0xffe3
	xkControlR    xproto.Keysym = 0xffe4
	xkCapsLock    xproto.Keysym = 0xffe5
	xkAltL        xproto.Keysym = 0xffe9
	xkAltR        xproto.Keysym = 0xffea
	xkSuperL      xproto.Keysym = 0xffeb
	xkSuperR      xproto.Keysym = 0xffec
	xkF1          xproto.Keysym = 0xffbe
	xkKPEnter     xproto.Keysym = 0xff8d
	xkKPHome      xproto.Keysym = 0xff95
	xkKPLeft      xproto.Keysym = 0xff96
	xkKPUp        xproto.Keysym = 0xff97
	xkKPRight     xproto.Keysym = 0xff98
	xkKPDown      xproto.Keysym = 0xff99
	xkKPPageUp    xproto.Keysym = 0xff9a
	xkKPPageDown  xproto.Keysym = 0xff9b
	xkKPEnd       xproto.Keysym = 0xff9c
	xkKPBegin     xproto.Keysym = 0xff9d
	xkKPInsert    xproto.Keysym = 0xff9e
	xkKPDelete    xproto.Keysym = 0xff9f
	xkKPMultiply  xproto.Keysym = 0xffaa
	xkKPAdd       xproto.Keysym = 0xffab
	xkKPSeparator xproto.Keysym = 0xffac
	xkKPSubtract  xproto.Keysym = 0xffad
	xkKPDecimal   xproto.Keysym = 0xffae
	xkKPDivide    xproto.Keysym = 0xffaf
	xkKP0         xproto.Keysym = 0xffb0
	xkKPEqual     xproto.Keysym = 0xffbd
	xkYen         xproto.Keysym = 0x00a5

	xf86AudioLowerVolume xproto.Keysym = 0x1008ff11
	xf86AudioMute        xproto.Keysym = 0x1008ff12
	xf86AudioRaiseVolume xproto.Keysym = 0x1008ff13
	xf86AudioPlay        xproto.Keysym = 0x1008ff14
	xf86AudioStop        xproto.Keysym = 0x1008ff15
	xf86AudioPrev        xproto.Keysym = 0x1008ff16
	xf86AudioNext        xproto.Keysym = 0x1008ff17
	xf86HomePage         xproto.Keysym = 0x1008ff18
	xf86Mail             xproto.Keysym = 0x1008ff19
	xf86Search           xproto.Keysym = 0x1008ff1b
	xf86Calculator       xproto.Keysym = 0x1008ff1d
	xf86Back             xproto.Keysym = 0x1008ff26
	xf86Forward          xproto.Keysym = 0x1008ff27
	xf86Stop             xproto.Keysym = 0x1008ff28
	xf86Refresh          xproto.Keysym = 0x1008ff29
	xf86PowerOff         xproto.Keysym = 0x1008ff2a
	xf86WakeUp           xproto.Keysym = 0x1008ff2b
	xf86Sleep            xproto.Keysym = 0x1008ff2f
	xf86Favorites        xproto.Keysym = 0x1008ff30
	xf86AudioPause       xproto.Keysym = 0x1008ff31
	xf86AudioMedia       xproto.Keysym = 0x1008ff32
	xf86MyComputer       xproto.Keysym = 0x1008ff33
	xf86Copy             xproto.Keysym = 0x1008ff57
	xf86Cut              xproto.Keysym = 0x1008ff58
	xf86Paste            xproto.Keysym = 0x1008ff6d
)
