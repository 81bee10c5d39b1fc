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

package prefs

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/nazara-engine/nazara/curated"
	"github.com/nazara-engine/nazara/logger"
)

// Watch reloads the Disk every time the prefs file is written or created. The
// directory containing the file is watched rather than the file itself
// because many editors replace the file rather than write to it.
//
// The onLoad function, if not nil, is called after every successful reload.
// Watch returns when the context is cancelled.
func Watch(ctx context.Context, dsk *Disk, onLoad func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer w.Close()

	target := filepath.Clean(dsk.Path())

	err = w.Add(filepath.Dir(target))
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Logf(logger.Allow, "prefs", "watch: %v", err)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := dsk.Load(false); err != nil {
				logger.Logf(logger.Allow, "prefs", "reload: %v", err)
				continue
			}
			if onLoad != nil {
				onLoad()
			}
		}
	}
}
