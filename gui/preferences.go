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

package gui

import (
	"github.com/nazara-engine/nazara/prefs"
)

// Preferences for the event viewer. Shared by every window backend.
type Preferences struct {
	dsk *prefs.Disk

	// log unrecognised events through the dispatcher
	LogUnrecognised prefs.Bool

	// dump every raw event before it is normalised
	DumpRaw prefs.Bool

	// name of the audio output device. empty for the default device
	AudioDevice prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	logUnrecognised = false
	dumpRaw         = false
	audioDevice     = ""
)

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the file at the specified path. The file is
// created if it does not exist.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("viewer.logunrecognised", &p.LogUnrecognised)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("viewer.dumpraw", &p.DumpRaw)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.device", &p.AudioDevice)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return p, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.LogUnrecognised.Set(logUnrecognised)
	_ = p.DumpRaw.Set(dumpRaw)
	_ = p.AudioDevice.Set(audioDevice)
}

// Disk returns the file the preferences are stored in.
func (p *Preferences) Disk() *prefs.Disk {
	return p.dsk
}

// Load current preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
