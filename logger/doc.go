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

// Package logger is the logging package used throughout Nazara. Log entries
// are kept in memory and can be written to any io.Writer on demand or echoed
// as they arrive.
//
// Each entry has a tag and a detail. The tag is usually the name of the
// package or subsystem making the entry. The detail can be a string, an
// error, a fmt.Stringer or any other value that can be formatted with the %v
// verb.
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count. Normalisers can produce many identical entries in
// a short period of time (unrecognised mouse wheel events for example) and
// this keeps the log readable.
//
// The package level functions log to a central logger. Instances of Logger
// can also be created with NewLogger(), which is useful for testing.
package logger
