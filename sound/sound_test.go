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

package sound_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/nazara-engine/nazara/curated"
	"github.com/nazara-engine/nazara/sound"
	"github.com/nazara-engine/nazara/test"
)

// writeWAV creates a wav file in a temporary directory and returns its path
func writeWAV(t *testing.T, name string, rate int, channels int, depth int, data []int) string {
	t.Helper()

	pth := filepath.Join(t.TempDir(), name)
	f, err := os.Create(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, depth, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: depth,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())

	return pth
}

func TestKind(t *testing.T) {
	test.ExpectEquality(t, sound.KindFromFilename("a.wav"), sound.KindWAV)
	test.ExpectEquality(t, sound.KindFromFilename("/b/c.WAV"), sound.KindWAV)
	test.ExpectEquality(t, sound.KindFromFilename("d.mp3"), sound.KindMP3)
	test.ExpectEquality(t, sound.KindFromFilename("e.ogg"), sound.KindUnknown)
	test.ExpectEquality(t, sound.KindFromFilename("wav"), sound.KindUnknown)
	test.ExpectEquality(t, sound.KindMP3.String(), "mp3")
}

func TestLoadWAV(t *testing.T) {
	data := []int{0, 0, 1, -1, 1000, -1000, 32767, -32768}
	pth := writeWAV(t, "stereo.wav", 8000, 2, 16, data)

	p, err := sound.Load(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate, 8000)
	test.ExpectEquality(t, p.Channels, 2)
	test.ExpectEquality(t, p.Frames(), 4)
	test.DemandEquality(t, len(p.Data), len(data))
	for i := range data {
		test.ExpectEquality(t, int(p.Data[i]), data[i], i)
	}

	b := p.Bytes()
	test.DemandEquality(t, len(b), len(data)*2)
	test.ExpectEquality(t, b[4], byte(0x01))
	test.ExpectEquality(t, b[5], byte(0x00))
	test.ExpectEquality(t, b[6], byte(0xff))
	test.ExpectEquality(t, b[7], byte(0xff))
}

func TestDuration(t *testing.T) {
	data := make([]int, 4000)
	pth := writeWAV(t, "mono.wav", 8000, 1, 16, data)

	p, err := sound.Load(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Channels, 1)
	test.ExpectEquality(t, p.Duration(), 500*time.Millisecond)
	test.ExpectEquality(t, p.String(), "8000Hz 1ch 0.50s")

	var empty sound.PCM
	test.ExpectEquality(t, empty.Duration(), time.Duration(0))
	test.ExpectEquality(t, empty.Frames(), 0)
}

func TestUnknownKind(t *testing.T) {
	_, err := sound.Load("music.ogg")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, sound.UnknownKind))

	_, err = sound.Decode(bytes.NewReader(nil), sound.KindUnknown)
	test.ExpectSuccess(t, curated.Is(err, sound.UnknownKind))
}

func TestBadSource(t *testing.T) {
	_, err := sound.Load(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, sound.DecodeError))

	garbage := bytes.Repeat([]byte("not a sound file "), 64)

	_, err = sound.Decode(bytes.NewReader(garbage), sound.KindWAV)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))

	_, err = sound.Decode(bytes.NewReader(nil), sound.KindMP3)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
}
