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

package sound

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/nazara-engine/nazara/curated"
	"github.com/nazara-engine/nazara/logger"
)

// Kind is the encoding of a sound source.
type Kind int

// List of valid Kind values.
const (
	KindUnknown Kind = iota
	KindWAV
	KindMP3
)

func (k Kind) String() string {
	switch k {
	case KindWAV:
		return "wav"
	case KindMP3:
		return "mp3"
	}
	return "unknown"
}

// KindFromFilename returns the Kind implied by the extension of the filename.
func KindFromFilename(filename string) Kind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return KindWAV
	case ".mp3":
		return KindMP3
	}
	return KindUnknown
}

// Sentinel error patterns for the sound package.
const (
	UnknownKind = "sound: unknown kind: %s"
	DecodeError = "sound: %s: %v"
	NoSamples   = "sound: %s: no samples"
)

const logTag = "sound"

// Load decodes the named file. The kind of source is decided by the file
// extension.
func Load(filename string) (*PCM, error) {
	kind := KindFromFilename(filename)
	if kind == KindUnknown {
		return nil, curated.Errorf(UnknownKind, filepath.Base(filename))
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DecodeError, kind, err)
	}
	defer f.Close()

	logger.Logf(logger.Allow, logTag, "loading %s", filepath.Base(filename))

	return Decode(f, kind)
}

// Decode reads a source of the specified kind to exhaustion.
func Decode(r io.ReadSeeker, kind Kind) (*PCM, error) {
	var p *PCM
	var err error

	switch kind {
	case KindWAV:
		p, err = decodeWAV(r)
	case KindMP3:
		p, err = decodeMP3(r)
	default:
		return nil, curated.Errorf(UnknownKind, kind)
	}
	if err != nil {
		return nil, curated.Errorf(DecodeError, kind, err)
	}

	if len(p.Data) == 0 {
		return nil, curated.Errorf(NoSamples, kind)
	}

	logger.Logf(logger.Allow, logTag, "%s: %s", kind, p)

	return p, nil
}

func decodeWAV(r io.ReadSeeker) (*PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, curated.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	p := &PCM{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Data:       make([]int16, len(buf.Data)),
	}

	depth := int(dec.BitDepth)
	for i, v := range buf.Data {
		switch {
		case depth == 8:
			// eight bit wav data is unsigned
			p.Data[i] = int16((v - 128) << 8)
		case depth > 16:
			p.Data[i] = int16(v >> (depth - 16))
		default:
			p.Data[i] = int16(v << (16 - depth))
		}
	}

	return p, nil
}

// the go-mp3 decoder always produces two channels of little endian 16 bit
// data, even for mono sources
func decodeMP3(r io.Reader) (*PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}

	p := &PCM{
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}

	b, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	p.Data = make([]int16, len(b)/2)
	for i := range p.Data {
		p.Data[i] = int16(uint16(b[i*2]) | uint16(b[i*2+1])<<8)
	}

	return p, nil
}
