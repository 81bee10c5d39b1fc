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
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/nazara-engine/nazara/curated"
	"github.com/nazara-engine/nazara/logger"
	"github.com/nazara-engine/nazara/sound"
)

// Sentinel error patterns for the sdlaudio package.
const (
	NoOutputDevice    = "sdlaudio: no output device: %v"
	UnsupportedFormat = "sdlaudio: unsupported format: %v"
)

// the number of sample frames in the device buffer. the precise value is not
// critical
const bufferLength = 1024

// Spec describes the output required of the audio device. An empty Device
// name selects the system default.
type Spec struct {
	Device   string
	Freq     int
	Channels int
}

// Device is an open SDL audio output device. Data is always signed 16 bit
// little endian.
type Device struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

// DefaultOutput opens an audio output device. SDL must have been initialised
// with the audio subsystem. The caller is responsible for calling Close().
func DefaultOutput(spec Spec) (*Device, error) {
	if spec.Freq <= 0 || spec.Channels <= 0 || spec.Channels > 8 {
		return nil, curated.Errorf(UnsupportedFormat, spec)
	}

	if sdl.GetNumAudioDevices(false) < 1 {
		return nil, curated.Errorf(NoOutputDevice, "none available")
	}

	want := &sdl.AudioSpec{
		Freq:     int32(spec.Freq),
		Format:   sdl.AUDIO_S16LSB,
		Channels: uint8(spec.Channels),
		Samples:  bufferLength,
	}

	dev := &Device{}

	// no changes are allowed so SDL converts to the format of the hardware
	var err error
	dev.id, err = sdl.OpenAudioDevice(spec.Device, false, want, &dev.spec, 0)
	if err != nil {
		return nil, curated.Errorf(NoOutputDevice, err)
	}

	name := spec.Device
	if name == "" {
		name = "default"
	}
	logger.Logf(logger.Allow, "sdlaudio", "opened %s device (%dHz, %d channels)", name, dev.spec.Freq, dev.spec.Channels)

	sdl.PauseAudioDevice(dev.id, false)

	return dev, nil
}

// Queue adds the PCM data to the device's queue. The sample rate and number of
// channels must match those of the device.
func (dev *Device) Queue(p *sound.PCM) error {
	if err := check(dev.spec, p); err != nil {
		return err
	}
	return sdl.QueueAudio(dev.id, p.Bytes())
}

func check(spec sdl.AudioSpec, p *sound.PCM) error {
	if p == nil {
		return curated.Errorf(UnsupportedFormat, "no data")
	}
	if p.SampleRate != int(spec.Freq) || p.Channels != int(spec.Channels) {
		return curated.Errorf(UnsupportedFormat, p)
	}
	return nil
}

// Drain blocks until all queued audio has been played or until the context
// is done. A done context is a request to stop playback early and is not an
// error.
func (dev *Device) Drain(ctx context.Context) error {
	return drain(ctx, func() uint32 {
		return sdl.GetQueuedAudioSize(dev.id)
	})
}

func drain(ctx context.Context, queued func() uint32) error {
	tck := time.NewTicker(10 * time.Millisecond)
	defer tck.Stop()

	for queued() > 0 {
		select {
		case <-ctx.Done():
			logger.Logf(logger.Allow, "sdlaudio", "playback stopped with %d bytes queued", queued())
			return nil
		case <-tck.C:
		}
	}
	return nil
}

// Close the device. Queued audio is discarded.
func (dev *Device) Close() {
	sdl.ClearQueuedAudio(dev.id)
	sdl.CloseAudioDevice(dev.id)
	logger.Log(logger.Allow, "sdlaudio", "closed device")
}
