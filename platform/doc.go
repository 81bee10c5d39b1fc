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

// Package platform connects a windowing backend to application logic. The
// backend specific packages (sdlevents and x11events) implement the
// Normaliser interface, which turns a raw backend event into exactly one
// canonical events.Event. The Dispatcher pairs a Normaliser with a Handler
// and is what a host event loop calls for every raw event it receives.
//
// Normalisation is total. A raw event that the backend does not map becomes
// events.Unrecognised which is still handed to the Handler. The Dispatcher can
// optionally log unrecognised events, which is useful when checking the
// coverage of a backend.
//
// Neither the Normaliser nor the Dispatcher keep any state between calls.
package platform
