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
	"encoding/binary"
	"fmt"
	"time"
)

// PCM is decoded audio data. Samples for each channel are interleaved.
type PCM struct {
	SampleRate int
	Channels   int
	Data       []int16
}

// Frames returns the number of samples per channel.
func (p *PCM) Frames() int {
	if p.Channels == 0 {
		return 0
	}
	return len(p.Data) / p.Channels
}

// Duration returns the playing time of the data.
func (p *PCM) Duration() time.Duration {
	if p.SampleRate == 0 {
		return 0
	}
	return time.Duration(p.Frames()) * time.Second / time.Duration(p.SampleRate)
}

// Bytes returns the data as little endian bytes.
func (p *PCM) Bytes() []byte {
	b := make([]byte, len(p.Data)*2)
	for i, s := range p.Data {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}
	return b
}

func (p *PCM) String() string {
	return fmt.Sprintf("%dHz %dch %.02fs", p.SampleRate, p.Channels, p.Duration().Seconds())
}
