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

package main

import (
	"context"
	"strings"
	"testing"

	"github.com/nazara-engine/nazara/events"
	"github.com/nazara-engine/nazara/test"
)

func TestHelp(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: SDL, X11, KEYS, PLAY"))
}

func TestBadFlag(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"play", "-nosuchflag"}, w), 20)
}

func TestKeys(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"keys", "x11"}, w), 0)

	out := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(out, "0x000061\tA\n"))
	test.ExpectSuccess(t, strings.Contains(out, "missing: [AbntC1 AbntC2 Ax Unlabeled NavigateForward NavigateBackward]\n"))

	// the default backend is SDL
	w.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"keys"}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "missing: [Compose AbntC2 Ax Unlabeled Wake NavigateForward NavigateBackward]\n"))
}

func TestListKeyTable(t *testing.T) {
	table := events.NewKeyTable([]events.KeyEntry[int]{
		{Code: 1, Key: events.KeyA},
		{Code: 2, Key: events.KeyA},
		{Code: 3, Key: events.KeyB},
	})

	w := &strings.Builder{}
	listKeyTable(w, table, "%d")
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "1\tA\n2\tA\n3\tB\n3 codes for 2 keys\nmissing: ["))
}

func TestPlayWithoutFile(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"play"}, w), 20)
	test.ExpectSuccess(t, strings.Contains(w.String(), "sound file required for PLAY mode"))
}
