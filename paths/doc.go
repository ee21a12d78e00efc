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

// Package paths contains functions to prepare paths for Gopherboy resources.
//
// The ResourcePath() function returns the correct path to the resource
// directory or file specified in the arguments. The resource directory is
// ".gopherboy" in the current working directory if that directory exists.
// Otherwise it is the "gopherboy" directory in the user's configuration
// directory, as returned by os.UserConfigDir().
//
// Directories in the path are created if they do not exist.
package paths
