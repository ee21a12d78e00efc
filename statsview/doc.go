// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview offers runtime statistics through a local HTTP server.
// The server is only included when the program is built with the statsview
// build tag. Without the tag, Available() returns false and Launch() does
// nothing.
//
// The underlying functionality is provided by the go-echarts/statsview
// module. After launch the graphical statistics are viewable at:
//
//	localhost:12680/debug/statsview
//
// and the standard Go pprof statistics are available at:
//
//	localhost:12680/debug/pprof/
package statsview

// Address of the statistics server.
const Address = "localhost:12680"

const url = "/debug/statsview"
