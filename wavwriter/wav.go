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

// Package wavwriter writes decoded sound to disk as a 16 bit WAV file. Only
// mono and stereo data can be written.
package wavwriter

import (
	"os"

	"github.com/youpy/go-wav"

	"github.com/nazara-engine/nazara/curated"
	"github.com/nazara-engine/nazara/logger"
	"github.com/nazara-engine/nazara/sound"
)

// Sentinel error patterns for the wavwriter package.
const (
	WriteError   = "wavwriter: %v"
	TooManyChans = "wavwriter: too many channels (%d)"
)

// Write the PCM data to the named file. An existing file is replaced.
func Write(filename string, p *sound.PCM) (rerr error) {
	if p.Channels < 1 || p.Channels > 2 {
		return curated.Errorf(TooManyChans, p.Channels)
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WriteError, err)
		}
	}()

	buffer := make([]wav.Sample, p.Frames())
	for i := range buffer {
		for c := 0; c < p.Channels; c++ {
			buffer[i].Values[c] = int(p.Data[i*p.Channels+c])
		}
	}

	enc := wav.NewWriter(f, uint32(len(buffer)), uint16(p.Channels), uint32(p.SampleRate), 16)
	if enc == nil {
		return curated.Errorf(WriteError, "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", filename)

	err = enc.WriteSamples(buffer)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}

	return nil
}
