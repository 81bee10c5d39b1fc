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
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/nazara-engine/nazara/curated"
)

// Keymap resolves a keycode to the keysym in the specified column of the
// keyboard mapping. A keycode or column outside of the mapping returns the
// zero keysym (NoSymbol).
type Keymap interface {
	Keysym(kc xproto.Keycode, column int) xproto.Keysym
}

// Sentinel error patterns for the KMap type.
const (
	BadKeycodeRange = "x11events: bad keycode range: %d to %d"
	BadMapping      = "x11events: keyboard mapping: %v"
)

// KMap is the keyboard mapping of an X server connection. It is safe to call
// Keysym() concurrently with ReadMapping().
type KMap struct {
	conn *xgb.Conn

	crit       sync.RWMutex
	min        xproto.Keycode
	perKeycode int
	keysyms    []xproto.Keysym
}

// NewKMap is the preferred method of initialisation for the KMap type. The
// keyboard mapping is read from the server immediately.
func NewKMap(conn *xgb.Conn) (*KMap, error) {
	km := &KMap{conn: conn}
	if err := km.ReadMapping(); err != nil {
		return nil, err
	}
	return km, nil
}

// newKMap creates a KMap from an existing mapping. Used for testing.
func newKMap(minKeycode xproto.Keycode, perKeycode int, keysyms []xproto.Keysym) *KMap {
	return &KMap{min: minKeycode, perKeycode: perKeycode, keysyms: keysyms}
}

// ReadMapping (re)reads the keyboard mapping from the server. Should be called
// in response to a MappingNotify event.
func (km *KMap) ReadMapping() error {
	si := xproto.Setup(km.conn)
	if si.MaxKeycode < si.MinKeycode {
		return curated.Errorf(BadKeycodeRange, si.MinKeycode, si.MaxKeycode)
	}

	count := byte(si.MaxKeycode - si.MinKeycode + 1)
	reply, err := xproto.GetKeyboardMapping(km.conn, si.MinKeycode, count).Reply()
	if err != nil {
		return curated.Errorf(BadMapping, err)
	}
	if reply.KeysymsPerKeycode == 0 {
		return curated.Errorf(BadMapping, "no keysyms per keycode")
	}

	km.crit.Lock()
	defer km.crit.Unlock()
	km.min = si.MinKeycode
	km.perKeycode = int(reply.KeysymsPerKeycode)
	km.keysyms = reply.Keysyms

	return nil
}

// Keysym implements the Keymap interface.
func (km *KMap) Keysym(kc xproto.Keycode, column int) xproto.Keysym {
	if km == nil {
		return 0
	}

	km.crit.RLock()
	defer km.crit.RUnlock()

	if kc < km.min || column < 0 || column >= km.perKeycode {
		return 0
	}

	i := int(kc-km.min)*km.perKeycode + column
	if i >= len(km.keysyms) {
		return 0
	}
	return km.keysyms[i]
}
