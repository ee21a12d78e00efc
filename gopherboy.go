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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopherboy/gopherboy/cartridgeloader"
	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/gui/sdlplay"
	"github.com/gopherboy/gopherboy/hardware"
	"github.com/gopherboy/gopherboy/hardware/clocks"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/hardware/preferences"
	"github.com/gopherboy/gopherboy/limiter"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/modalflag"
	"github.com/gopherboy/gopherboy/prefs"
	"github.com/gopherboy/gopherboy/statsview"
	"github.com/gopherboy/gopherboy/terminal/termplay"
	"github.com/gopherboy/gopherboy/version"
	"github.com/gopherboy/gopherboy/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not block. It MUST ONLY be called from the main
	// thread.
	Service()
}

// communication between the main() function and the launch() function.
// SDL requires window event handling (including creation) to occur on the
// main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// exit values
const (
	exitOK        = 0
	exitFailed    = 1
	exitParse     = 10
	exitModeError = 20
)

// how long the main thread sleeps when there is no gui to service
const idleSleep = 10 * time.Millisecond

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	exitVal := exitOK

	// #ctrlc default handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			g, err := creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				gui = g
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}
				if v, ok := state.args.(int); ok {
					exitVal = v
				}
			}

		default:
			if gui != nil {
				gui.Service()
			} else {
				time.Sleep(idleSleep)
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "HEADLESS", "TESTROM", "VERIFY", "DUMP", "DISASM", "PERFORMANCE", "VERSION")
	md.DescribeSubMode("RUN", "play in an SDL window")
	md.DescribeSubMode("TERM", "play in the terminal")
	md.DescribeSubMode("HEADLESS", "run for a number of frames without display")
	md.DescribeSubMode("TESTROM", "run a test ROM and report the result")
	md.DescribeSubMode("VERIFY", "compare audio output with a reference recording")
	md.DescribeSubMode("DUMP", "write the console state as a graphviz file")
	md.DescribeSubMode("DISASM", "disassemble the cartridge ROM")
	md.DescribeSubMode("PERFORMANCE", "measure the speed of the emulation")
	md.DescribeSubMode("VERSION", "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: exitParse}
		return
	}

	exitVal := exitOK

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)
	case "TERM":
		err = term(md)
	case "HEADLESS":
		err = headless(md)
	case "TESTROM":
		var passed bool
		passed, err = testROM(md)
		if err == nil && !passed {
			exitVal = exitFailed
		}
	case "VERIFY":
		var passed bool
		passed, err = verify(md)
		if err == nil && !passed {
			exitVal = exitFailed
		}
	case "DUMP":
		err = dump(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: exitModeError}
		return
	}

	sync.state <- stateRequest{req: reqQuit, args: exitVal}
}

// the cartridge filename is the only argument for most modes
func cartridgeArg(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	return loadCartridge(md.GetArg(0))
}

func loadCartridge(filename string) (cartridgeloader.Loader, error) {
	cl, err := cartridgeloader.NewLoader(filename)
	if err != nil {
		return cartridgeloader.Loader{}, err
	}
	if err := cl.Load(); err != nil {
		return cartridgeloader.Loader{}, err
	}
	return cl, nil
}

// creates the console for the interactive modes. preferences are loaded from
// disk and the command line stack
func newConsole(cl cartridgeloader.Loader, prefsOverride string) (*hardware.Console, *environment.Environment, error) {
	if prefsOverride != "" {
		prefs.PushCommandLineStack(prefsOverride)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil, nil)
	if err != nil {
		return nil, nil, err
	}

	return attach(env, cl)
}

// creates a console with default preferences. used by the modes that must
// produce the same output on every run
func newNormalisedConsole(cl cartridgeloader.Loader) (*hardware.Console, *environment.Environment, error) {
	env, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewDefaultPreferences(), nil)
	if err != nil {
		return nil, nil, err
	}
	env.Normalise()

	return attach(env, cl)
}

func attach(env *environment.Environment, cl cartridgeloader.Loader) (*hardware.Console, *environment.Environment, error) {
	cart, err := cartridge.NewCartridge(env, cl)
	if err != nil {
		return nil, nil, err
	}

	con, err := hardware.NewConsole(env, cart)
	if err != nil {
		return nil, nil, err
	}

	logger.Logf(logger.Allow, "gopherboy", "inserted %s", cart)

	return con, env, nil
}

// battery backed RAM is stored beside the cartridge file
func savePath(cl cartridgeloader.Loader) (string, bool) {
	if strings.Contains(cl.Filename, "://") {
		return "", false
	}
	return strings.TrimSuffix(cl.Filename, filepath.Ext(cl.Filename)) + ".sav", true
}

func loadSave(con *hardware.Console, cl cartridgeloader.Loader) error {
	pth, ok := savePath(cl)
	if !ok {
		return nil
	}

	data, err := os.ReadFile(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return curated.Errorf("gopherboy: %v", err)
	}

	err = con.LoadSaveData(data)
	if err != nil {
		if curated.Is(err, cartridge.UnsupportedSaveData) {
			logger.Logf(logger.Allow, "gopherboy", "ignoring %s: cartridge has no battery", pth)
			return nil
		}
		return err
	}

	logger.Logf(logger.Allow, "gopherboy", "loaded %s", pth)

	return nil
}

// the core never saves on its own. the front end writes the save file when
// the emulation ends if the autosave preference is set
func writeSave(con *hardware.Console, env *environment.Environment, cl cartridgeloader.Loader) error {
	if !env.Prefs.AutoSave.Get().(bool) {
		return nil
	}

	pth, ok := savePath(cl)
	if !ok {
		return nil
	}

	data, err := con.SaveData()
	if err != nil {
		if curated.Is(err, cartridge.UnsupportedSaveData) {
			return nil
		}
		return err
	}

	if err := os.WriteFile(pth, data, 0o600); err != nil {
		return curated.Errorf("gopherboy: %v", err)
	}

	logger.Logf(logger.Allow, "gopherboy", "saved %s", pth)

	return nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	scale := md.AddInt("scale", 3, "window scaling")
	fpsCap := md.AddBool("fpscap", true, "cap frame rate to that of the LCD")
	wav := md.AddString("wav", "", "record audio to wav file")
	prefsOverride := md.AddString("prefs", "", "override preferences for this run (eg. \"hardware.apu.noiseBit7::false\")")
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

	con, env, err := newConsole(cl, *prefsOverride)
	if err != nil {
		return err
	}

	if err := loadSave(con, cl); err != nil {
		return err
	}

	period := env.Prefs.SampleRatePeriod.Get().(int)

	// the SDL window must be created on the main thread
	sync.creator <- func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(cl.ShortName(), *scale, clocks.SampleRate(period))
	}

	var scr *sdlplay.SdlPlay
	select {
	case g := <-sync.creation:
		scr = g.(*sdlplay.SdlPlay)
	case err := <-sync.creationError:
		return err
	}

	var asnk = &audioSinks{primary: scr}
	if *wav != "" {
		asnk.recorder, err = wavwriter.New(*wav, period)
		if err != nil {
			return err
		}
	}

	lmtr := limiter.NewLimiter(clocks.FrameRate)
	defer lmtr.Stop()
	lmtr.SetActive(*fpsCap)

	for !scr.Quit() {
		scr.Frame(con)
		if err := con.RunForFrameCount(1, scr, asnk); err != nil {
			_ = asnk.end()
			return err
		}
		lmtr.Wait()
	}

	if err := asnk.end(); err != nil {
		return err
	}

	return writeSave(con, env, cl)
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	wav := md.AddString("wav", "", "record audio to wav file")
	prefsOverride := md.AddString("prefs", "", "override preferences for this run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	con, env, err := newConsole(cl, *prefsOverride)
	if err != nil {
		return err
	}

	if err := loadSave(con, cl); err != nil {
		return err
	}

	asnk := &audioSinks{}
	if *wav != "" {
		asnk.recorder, err = wavwriter.New(*wav, env.Prefs.SampleRatePeriod.Get().(int))
		if err != nil {
			return err
		}
	}

	err = termplay.Play(con, asnk)
	if endErr := asnk.end(); err == nil {
		err = endErr
	}
	if err != nil {
		return err
	}

	return writeSave(con, env, cl)
}

// audioSinks sends samples to the primary sink and the optional wav
// recorder. either may be nil
type audioSinks struct {
	primary  *sdlplay.SdlPlay
	recorder *wavwriter.WavWriter
}

func (a *audioSinks) AppendSample(left float32, right float32) {
	if a.primary != nil {
		a.primary.AppendSample(left, right)
	}
	if a.recorder != nil {
		a.recorder.AppendSample(left, right)
	}
}

func (a *audioSinks) end() error {
	if a.recorder == nil {
		return nil
	}
	err := a.recorder.EndMixing()
	a.recorder = nil
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
