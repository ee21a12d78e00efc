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

// Package testrom runs test ROMs that report their result through the
// serial port or through a signature in cartridge RAM.
//
// A ROM using the RAM protocol writes the signature DE B0 61 to $A001 and a
// status byte to $A000. A status of $80 means the test is still running.
// Any other value ends the test and zero means the test passed. A zero
// terminated message follows the signature at $A004.
//
// A ROM that only uses the serial port ends the test by printing "Passed"
// or "Failed".
package testrom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware"
	"github.com/gopherboy/gopherboy/hardware/clocks"
)

// addresses used by the RAM protocol
const (
	addrStatus    = 0xa000
	addrSignature = 0xa001
	addrMessage   = 0xa004
	maxMessage    = 0x1000
)

var signature = []uint8{0xde, 0xb0, 0x61}

// statusRunning is the status byte while the test is running.
const statusRunning = 0x80

// Result of a call to Run().
type Result struct {
	// whether the RAM signature was seen. Status and Message are only
	// meaningful if this is true
	Signature bool
	Status    uint8
	Message   string

	// everything written to the serial port
	Serial string

	// the test did not end before the maximum number of cycles
	TimedOut bool
	Cycles   int
}

// Passed returns true if the test ROM reported success.
func (r Result) Passed() bool {
	if r.TimedOut {
		return false
	}
	if r.Signature {
		return r.Status == 0
	}
	return strings.Contains(r.Serial, "Passed")
}

func (r Result) String() string {
	var s strings.Builder
	if r.Passed() {
		s.WriteString("passed")
	} else {
		s.WriteString("failed")
	}
	if r.TimedOut {
		s.WriteString(" (timed out)")
	}
	if r.Signature {
		fmt.Fprintf(&s, " status=%#02x", r.Status)
		if m := strings.TrimSpace(r.Message); m != "" {
			fmt.Fprintf(&s, ": %s", m)
		}
	}
	fmt.Fprintf(&s, " after %.2fs", float64(r.Cycles)/clocks.CyclesPerSecond)
	return s.String()
}

// Run the console until the test ROM reports a result or until maxCycles
// have elapsed. Serial output is copied to the io.Writer as it arrives, the
// writer may be nil.
func Run(con *hardware.Console, maxCycles int, output io.Writer) (Result, error) {
	var res Result
	var serial strings.Builder

	// the signature is checked once per frame
	nextCheck := clocks.CyclesPerFrame

	for res.Cycles < maxCycles {
		cycles, err := con.Step(nil, nil)
		res.Cycles += cycles
		if err != nil {
			res.Serial = serial.String()
			return res, err
		}

		if b, ok := con.PollSerial(); ok {
			serial.WriteByte(b)
			if output != nil {
				if _, err := output.Write([]byte{b}); err != nil {
					res.Serial = serial.String()
					return res, curated.Errorf("testrom: %v", err)
				}
			}
			if b == '\n' || b == ' ' {
				s := serial.String()
				if strings.Contains(s, "Passed") || strings.Contains(s, "Failed") {
					res.Serial = s
					return res, nil
				}
			}
		}

		if res.Cycles >= nextCheck {
			nextCheck += clocks.CyclesPerFrame
			if checkSignature(con, &res) {
				res.Serial = serial.String()
				return res, nil
			}
		}
	}

	res.Serial = serial.String()
	res.TimedOut = !checkSignature(con, &res) && !strings.Contains(res.Serial, "Passed") && !strings.Contains(res.Serial, "Failed")

	return res, nil
}

// returns true if the signature is present and the status shows the test
// has ended
func checkSignature(con *hardware.Console, res *Result) bool {
	m := con.MemoryRange(addrStatus, addrSignature+uint16(len(signature))-1)
	if !bytes.Equal(m[1:], signature) {
		return false
	}

	res.Signature = true
	res.Status = m[0]
	if res.Status == statusRunning {
		return false
	}

	msg := con.MemoryRange(addrMessage, addrMessage+maxMessage-1)
	if i := bytes.IndexByte(msg, 0); i >= 0 {
		msg = msg[:i]
	}
	res.Message = string(msg)

	return true
}
