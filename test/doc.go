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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a test failure with t.Errorf() and allow the
// test to continue. The Demand functions stop the test with t.Fatalf() and
// should be used when the value being tested is needed by later parts of the
// test. For example, testing the length of a slice before indexing it.
//
// ExpectSuccess() and ExpectFailure() test for the 'success' or 'failure' value
// of a type. Currently supported types:
//
//	bool	true is success
//	error	nil is success
//
// The untyped nil is considered a success. This is because of how errors are
// usually handled, where nil indicates that there was no error.
//
// Tags can be added to the end of any Expect or Demand function call. They are
// printed with the failure message and are useful for identifying the
// iteration of a loop which has failed.
package test
