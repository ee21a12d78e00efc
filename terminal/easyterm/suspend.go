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

package easyterm

import (
	"os"

	"golang.org/x/sys/unix"
)

// SuspendProcess manually suspends the current process. This is useful if
// the terminal is in raw mode and is given the suspend key.
func SuspendProcess() error {
	return unix.Kill(os.Getpid(), unix.SIGTSTP)
}
