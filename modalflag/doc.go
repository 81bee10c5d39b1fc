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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes. A mode is a bare word on the command
// line that selects what the program does, followed by the flags and
// arguments for that mode. For example:
//
//	nazara SDL -dumpraw
//	nazara KEYS -dot sdl.dot SDL
//
// The first mode in a list of sub-modes is the default mode and is selected
// when the next argument is not one of the sub-modes. Modes are case
// insensitive.
//
// Typical use:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SDL", "X11", "KEYS", "PLAY")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//	case "SDL":
//		md.NewMode()
//		dumpRaw := md.AddBool("dumpraw", false, "dump raw events")
//		p, err := md.Parse()
//		...
//	}
//
// The help flag (-help or -h) is handled by Parse() and the help message is
// sent to the Output writer. The list of available sub-modes is appended to
// the standard usage message of the flag package.
package modalflag
