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

package events_test

import (
	"testing"

	"github.com/nazara-engine/nazara/events"
	"github.com/nazara-engine/nazara/test"
)

// the closed set of keys is versioned. if this test fails then a key has been
// added or removed and KeySetVersion should be incremented
func TestKeySetIsClosed(t *testing.T) {
	test.ExpectEquality(t, events.KeySetVersion, 1)
	test.ExpectEquality(t, len(events.Keys()), 161)
}

func TestKeyValidity(t *testing.T) {
	test.ExpectFailure(t, events.NoKey.IsValid())
	test.ExpectFailure(t, events.Key(-1).IsValid())
	test.ExpectFailure(t, events.Key(10000).IsValid())

	for _, k := range events.Keys() {
		test.ExpectSuccess(t, k.IsValid(), k)
	}
}

func TestKeyNames(t *testing.T) {
	names := make(map[string]events.Key)
	for _, k := range events.Keys() {
		n := k.String()
		if p, ok := names[n]; ok {
			t.Errorf("key name %q used by %d and %d", n, p, k)
		}
		names[n] = k

		f, ok := events.KeyFromString(n)
		test.ExpectSuccess(t, ok, n)
		test.ExpectEquality(t, f, k, n)
	}

	test.ExpectEquality(t, events.KeyA.String(), "A")
	test.ExpectEquality(t, events.Key0.String(), "0")
	test.ExpectEquality(t, events.KeyLAlt.String(), "LAlt")
	test.ExpectEquality(t, events.NoKey.String(), "NoKey")
	test.ExpectEquality(t, events.Key(5000).String(), "Key(5000)")

	_, ok := events.KeyFromString("NoKey")
	test.ExpectFailure(t, ok)
	_, ok = events.KeyFromString("a")
	test.ExpectFailure(t, ok)
}
