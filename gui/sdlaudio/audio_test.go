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

package sdlaudio

import (
	"context"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/nazara-engine/nazara/curated"
	"github.com/nazara-engine/nazara/sound"
	"github.com/nazara-engine/nazara/test"
)

func TestCheck(t *testing.T) {
	spec := sdl.AudioSpec{Freq: 44100, Channels: 2}

	test.ExpectSuccess(t, check(spec, &sound.PCM{SampleRate: 44100, Channels: 2}))

	err := check(spec, &sound.PCM{SampleRate: 22050, Channels: 2})
	test.ExpectSuccess(t, curated.Is(err, UnsupportedFormat))

	err = check(spec, &sound.PCM{SampleRate: 44100, Channels: 1})
	test.ExpectSuccess(t, curated.Is(err, UnsupportedFormat))

	err = check(spec, nil)
	test.ExpectSuccess(t, curated.Is(err, UnsupportedFormat))
}

func TestBadSpec(t *testing.T) {
	for _, spec := range []Spec{
		{Freq: 0, Channels: 2},
		{Freq: 44100, Channels: 0},
		{Freq: 44100, Channels: 9},
	} {
		_, err := DefaultOutput(spec)
		test.ExpectSuccess(t, curated.Is(err, UnsupportedFormat), spec)
	}
}

func TestDrain(t *testing.T) {
	// nothing queued
	test.ExpectSuccess(t, drain(context.Background(), func() uint32 { return 0 }))

	// queue empties after a few polls
	n := uint32(3)
	test.ExpectSuccess(t, drain(context.Background(), func() uint32 {
		if n > 0 {
			n--
		}
		return n
	}))
	test.ExpectEquality(t, n, uint32(0))

	// stopping early is not an error
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectSuccess(t, drain(ctx, func() uint32 { return 4096 }))
}
