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

package memory

import "github.com/gopherboy/gopherboy/hardware/memory/memorymap"

// DMAState is the state of the OAM DMA engine.
type DMAState int

// List of valid DMAState values.
const (
	// no transfer is in progress
	Stopped DMAState = iota

	// the DMA register has been written but no cycles have elapsed
	Starting

	// the transfer is in progress
	Running
)

func (s DMAState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Starting:
		return "starting"
	case Running:
		return "running"
	}
	return "unknown DMA state"
}

// the number of bytes copied by a DMA transfer
const dmaLength = memorymap.SizeOAM

type dma struct {
	state  DMAState
	page   uint8
	source uint16
	index  int
}

func (d *dma) active() bool {
	return d.state != Stopped
}

// start a new transfer. a transfer that is already in progress is
// restarted from the beginning of the new page
func (d *dma) start(page uint8) {
	d.state = Starting
	d.page = page
	d.source = uint16(page) << 8
	d.index = 0
}

// step the DMA engine by the number of cycles. one byte is copied each
// cycle
func (mem *Memory) stepDMA(cycles int) {
	switch mem.dma.state {
	case Stopped:
		return
	case Starting:
		mem.dma.state = Running
	}

	n := min(cycles, dmaLength-mem.dma.index)
	for range n {
		v := mem.read(mem.dma.source+uint16(mem.dma.index), peekAccess)
		mem.video.WriteOAM(mem.dma.index, v)
		mem.dma.index++
	}

	if mem.dma.index >= dmaLength {
		mem.dma.state = Stopped
	}
}

// DMA returns the current state of the DMA engine.
func (mem *Memory) DMA() DMAState {
	return mem.dma.state
}
