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

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/digest"
	"github.com/gopherboy/gopherboy/disassembly"
	"github.com/gopherboy/gopherboy/hardware/clocks"
	"github.com/gopherboy/gopherboy/hardware/sink"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/modalflag"
	"github.com/gopherboy/gopherboy/performance"
	"github.com/gopherboy/gopherboy/reference"
	"github.com/gopherboy/gopherboy/statsview"
	"github.com/gopherboy/gopherboy/testrom"
	"github.com/gopherboy/gopherboy/wavwriter"
)

func headless(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 600, "number of frames to run")
	wav := md.AddString("wav", "", "record audio to wav file")
	showDigest := md.AddBool("digest", false, "print the video and audio digests")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	}
	if *stats {
		statsview.Launch(os.Stdout)
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	con, env, err := newNormalisedConsole(cl)
	if err != nil {
		return err
	}

	vdig := digest.NewVideo()
	adig := digest.NewAudio()

	tee := sink.Tee{
		Video: []sink.Video{vdig},
		Audio: []sink.Audio{adig},
	}

	var ww *wavwriter.WavWriter
	if *wav != "" {
		ww, err = wavwriter.New(*wav, env.Prefs.SampleRatePeriod.Get().(int))
		if err != nil {
			return err
		}
		tee.Audio = append(tee.Audio, ww)
	}

	err = con.RunForFrameCount(*frames, tee, tee)

	if ww != nil {
		if endErr := ww.EndMixing(); err == nil {
			err = endErr
		}
	}
	if err != nil {
		return err
	}

	if *showDigest {
		fmt.Printf("video: %s (%d frames)\n", vdig.Hash(), vdig.Frames())
		fmt.Printf("audio: %s (%d samples)\n", adig.Hash(), adig.Samples())
	}

	return nil
}

func testROM(md *modalflag.Modes) (bool, error) {
	md.NewMode()

	timeout := md.AddInt("timeout", 60, "maximum number of emulated seconds")
	quiet := md.AddBool("quiet", false, "do not echo serial output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return true, err
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return false, err
	}

	con, _, err := newNormalisedConsole(cl)
	if err != nil {
		return false, err
	}

	var output io.Writer = os.Stdout
	if *quiet {
		output = nil
	}

	res, err := testrom.Run(con, *timeout*clocks.CyclesPerSecond, output)
	if err != nil {
		return false, err
	}

	if !*quiet && len(res.Serial) > 0 && res.Serial[len(res.Serial)-1] != '\n' {
		fmt.Println()
	}
	fmt.Printf("%s: %s\n", cl.ShortName(), res)

	return res.Passed(), nil
}

func verify(md *modalflag.Modes) (bool, error) {
	md.NewMode()
	md.AdditionalHelp("arguments: <cartridge> <reference wav or mp3>")

	tolerance := md.AddFloat64("tolerance", 0.0, "maximum difference allowed between samples")
	frames := md.AddInt("frames", 0, "number of frames to compare (default: length of reference)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return true, err
	}

	if len(md.RemainingArgs()) != 2 {
		return false, fmt.Errorf("%s mode requires a cartridge and a reference file", md)
	}

	ref, err := reference.Load(md.GetArg(1))
	if err != nil {
		return false, err
	}

	// cartridgeArg() expects exactly one argument
	cl, err := loadCartridge(md.GetArg(0))
	if err != nil {
		return false, err
	}

	con, env, err := newNormalisedConsole(cl)
	if err != nil {
		return false, err
	}

	got := &reference.Trace{
		SampleRate: clocks.SampleRate(env.Prefs.SampleRatePeriod.Get().(int)),
	}

	if *frames > 0 {
		err = con.RunForFrameCount(*frames, nil, got)
	} else {
		for got.Len() < ref.Len() && err == nil {
			err = con.RunForFrameCount(1, nil, got)
		}
	}
	if err != nil {
		return false, err
	}

	res, err := reference.Compare(ref, got, float32(*tolerance))
	if err != nil {
		if curated.Is(err, reference.SampleRateMismatch) {
			return false, fmt.Errorf("%w (change the hardware.apu.sampleRatePeriod preference)", err)
		}
		return false, err
	}

	fmt.Println(res)

	return res.Passed(), nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 60, "number of frames to run before dumping")
	output := md.AddString("output", "gopherboy.dot", "graphviz output file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	con, _, err := newNormalisedConsole(cl)
	if err != nil {
		return err
	}

	if err := con.RunForFrameCount(*frames, nil, nil); err != nil {
		return err
	}

	f, err := os.Create(*output)
	if err != nil {
		return curated.Errorf("gopherboy: %v", err)
	}
	defer f.Close()

	state := con.DebugState()
	memviz.Map(f, &state)

	fmt.Println(state)
	fmt.Printf("state written to %s\n", *output)

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bank := md.AddInt("bank", -1, "disassemble a single bank (-1 for all banks)")
	bytecode := md.AddBool("bytecode", false, "include bytecode in output")
	cycles := md.AddBool("cycles", false, "include cycle counts in output")
	blessed := md.AddBool("blessed", false, "only show instructions reached from an entry point")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromData(cl.Data)
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   *cycles,
		Blessed:  *blessed,
	}

	if *bank < 0 {
		return dsm.Write(os.Stdout, attr)
	}
	return dsm.WriteBank(os.Stdout, attr, *bank)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration (note: there is a lead time of up to two seconds)")
	profile := md.AddString("profile", "none", "create profiling files: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	con, _, err := newNormalisedConsole(cl)
	if err != nil {
		return err
	}

	_, err = performance.Check(os.Stdout, con, prf, *duration)
	return err
}
