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
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/nazara-engine/nazara/events"
	"github.com/nazara-engine/nazara/modalflag"
	"github.com/nazara-engine/nazara/paths"
	"github.com/nazara-engine/nazara/platform/sdlevents"
	"github.com/nazara-engine/nazara/platform/x11events"
)

func keys(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AddSubModes("SDL", "X11")
	dot := md.AddBool("dot", false, "write a graph of the key table to a dot file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var table any
	switch md.Mode() {
	case "SDL":
		t := sdlevents.KeyTable()
		listKeyTable(output, t, "%#08x")
		table = t
	case "X11":
		t := x11events.KeyTable()
		listKeyTable(output, t, "%#08x")
		table = t
	}

	if *dot {
		fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("keytable", md.Mode()))
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()

		memviz.Map(f, table)
		fmt.Fprintf(output, "graph written to %s\n", fn)
	}

	return nil
}

// listKeyTable writes every entry of the table followed by a summary. The
// format is used for the backend code.
func listKeyTable[C comparable](w io.Writer, t *events.KeyTable[C], format string) {
	for _, e := range t.Entries() {
		fmt.Fprintf(w, format+"\t%s\n", e.Code, e.Key)
	}
	fmt.Fprintf(w, "%d codes for %d keys\n", t.Len(), len(t.Keys()))
	if m := t.Missing(); len(m) > 0 {
		fmt.Fprintf(w, "missing: %v\n", m)
	}
}
