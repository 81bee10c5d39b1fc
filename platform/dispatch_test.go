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

package platform_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nazara-engine/nazara/events"
	"github.com/nazara-engine/nazara/logger"
	"github.com/nazara-engine/nazara/platform"
	"github.com/nazara-engine/nazara/prefs"
	"github.com/nazara-engine/nazara/test"
)

// rawEvent is a stand in for a backend event. even values are key presses of
// the letter A, odd values are unrecognised
type rawEvent int

func (r rawEvent) String() string {
	return fmt.Sprintf("raw(%d)", int(r))
}

var norm = platform.NormaliserFunc[rawEvent](func(raw rawEvent) events.Event {
	if raw%2 == 0 {
		return events.NewKey(events.KeyA, events.Pressed, events.NoModifiers)
	}
	return events.Unrecognised
})

type collector struct {
	events []events.Event
	err    error
}

func (c *collector) HandleEvent(ev events.Event) error {
	c.events = append(c.events, ev)
	return c.err
}

func TestDispatch(t *testing.T) {
	c := &collector{}
	d := platform.NewDispatcher[rawEvent](norm, c)

	ev, err := d.Dispatch(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, events.NewKey(events.KeyA, events.Pressed, events.NoModifiers))

	// unrecognised events are also dispatched
	ev, err = d.Dispatch(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, events.Unrecognised)

	test.ExpectEquality(t, len(c.events), 2)
	test.ExpectEquality(t, c.events[1], events.Unrecognised)
}

func TestDispatchHandlerError(t *testing.T) {
	c := &collector{err: errors.New("handler error")}
	d := platform.NewDispatcher[rawEvent](norm, c)

	ev, err := d.Dispatch(4)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, ev.String(), "Key(A Pressed, None)")
}

func TestDispatchNoHandler(t *testing.T) {
	d := platform.NewDispatcher[rawEvent](norm, nil)
	ev, err := d.Dispatch(1)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, events.IsUnrecognised(ev))
}

func TestHandlerFunc(t *testing.T) {
	var n int
	h := platform.HandlerFunc(func(ev events.Event) error {
		n++
		return nil
	})
	test.ExpectImplements[platform.Handler](t, h)

	d := platform.NewDispatcher[rawEvent](norm, h)
	for i := range 10 {
		_, err := d.Dispatch(rawEvent(i))
		test.ExpectSuccess(t, err)
	}
	test.ExpectEquality(t, n, 10)
}

func TestNilNormalisation(t *testing.T) {
	nilNorm := platform.NormaliserFunc[rawEvent](func(raw rawEvent) events.Event {
		return nil
	})
	test.ExpectEquality(t, nilNorm.Normalise(0), events.Unrecognised)
}

func TestLogUnrecognised(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	var logPref prefs.Bool

	d := platform.NewDispatcher[rawEvent](norm, nil)
	d.LogUnrecognised(&logPref)

	w := &strings.Builder{}

	// preference is false so nothing is logged
	d.Dispatch(1)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	// preference is consulted on every event
	test.ExpectSuccess(t, logPref.Set(true))
	d.Dispatch(1)
	d.Dispatch(1)
	d.Dispatch(2)
	d.Dispatch(3)
	w.Reset()
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "dispatch: unrecognised: raw(1) (repeat x2)\ndispatch: unrecognised: raw(3)\n")

	// a nil permission stops logging
	logger.Clear()
	d.LogUnrecognised(nil)
	d.Dispatch(5)
	w.Reset()
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}
