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

// KeyEntry is a single row in a KeyTable.
type KeyEntry[C comparable] struct {
	Code C
	Key  Key
}

// KeyTable maps backend key codes to a Key. The table is built once, usually
// during package initialisation, and is read-only thereafter. It is safe for
// concurrent use.
//
// More than one backend code may map to the same Key but each backend code
// may only appear once.
type KeyTable[C comparable] struct {
	entries []KeyEntry[C]
	lookup  map[C]Key
}

// NewKeyTable is the preferred method of initialisation for the KeyTable
// type. The order of the entries is preserved.
//
// A duplicated code or an invalid Key is a programming error and will cause a
// panic.
func NewKeyTable[C comparable](entries []KeyEntry[C]) *KeyTable[C] {
	t := &KeyTable[C]{
		entries: make([]KeyEntry[C], 0, len(entries)),
		lookup:  make(map[C]Key, len(entries)),
	}

	for _, e := range entries {
		if !e.Key.IsValid() {
			panic(fmt.Sprintf("events: key table entry for code %v has an invalid key (%v)", e.Code, e.Key))
		}
		if k, ok := t.lookup[e.Code]; ok {
			panic(fmt.Sprintf("events: code %v appears twice in key table (%v and %v)", e.Code, k, e.Key))
		}
		t.lookup[e.Code] = e.Key
		t.entries = append(t.entries, e)
	}

	return t
}

// Key returns the Key for a backend code.
func (t *KeyTable[C]) Key(code C) (Key, bool) {
	k, ok := t.lookup[code]
	return k, ok
}

// Lookup returns a KeyEvent for the backend code and press state. Returns false
// if the code is not in the table or if the state is not Pressed or Released.
func (t *KeyTable[C]) Lookup(code C, state State) (KeyEvent, bool) {
	if state != Pressed && state != Released {
		return KeyEvent{}, false
	}
	k, ok := t.lookup[code]
	if !ok {
		return KeyEvent{}, false
	}
	return KeyEvent{Key: k, State: state}, true
}

// Len returns the number of backend codes in the table.
func (t *KeyTable[C]) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table in declaration order.
func (t *KeyTable[C]) Entries() []KeyEntry[C] {
	e := make([]KeyEntry[C], len(t.entries))
	copy(e, t.entries)
	return e
}

// Keys returns the distinct keys covered by the table in order of first
// appearance.
func (t *KeyTable[C]) Keys() []Key {
	seen := make(map[Key]bool, len(t.entries))
	k := make([]Key, 0, len(t.entries))
	for _, e := range t.entries {
		if !seen[e.Key] {
			seen[e.Key] = true
			k = append(k, e.Key)
		}
	}
	return k
}

// Missing returns the keys in the closed set that the table does not cover.
func (t *KeyTable[C]) Missing() []Key {
	covered := make(map[Key]bool, len(t.entries))
	for _, e := range t.entries {
		covered[e.Key] = true
	}

	var m []Key
	for _, k := range Keys() {
		if !covered[k] {
			m = append(m, k)
		}
	}
	return m
}
