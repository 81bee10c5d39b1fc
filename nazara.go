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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/nazara-engine/nazara/gui"
	"github.com/nazara-engine/nazara/gui/sdlaudio"
	"github.com/nazara-engine/nazara/gui/sdlwindow"
	"github.com/nazara-engine/nazara/gui/x11window"
	"github.com/nazara-engine/nazara/logger"
	"github.com/nazara-engine/nazara/modalflag"
	"github.com/nazara-engine/nazara/paths"
	"github.com/nazara-engine/nazara/prefs"
	"github.com/nazara-engine/nazara/sound"
	"github.com/nazara-engine/nazara/statsview"
	"github.com/nazara-engine/nazara/wavwriter"
)

// SDL requires that window creation and event handling happen on the main
// thread
func init() {
	runtime.LockOSThread()
}

const windowTitle = "Nazara"

// #mainthread
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. Returns the exit
// value for the program.
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("SDL", "X11", "KEYS", "PLAY")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "SDL", "X11":
		err = view(ctx, md, output)

	case "KEYS":
		err = keys(md, output)

	case "PLAY":
		err = play(ctx, md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags common to the modes that use the preferences file
type common struct {
	prefs *string
	log   *bool
	stats *bool
}

func addCommon(md *modalflag.Modes) common {
	c := common{
		prefs: md.AddString("prefs", "", "preferences for this session (key::value; key::value)"),
		log:   md.AddBool("log", false, "echo log to output"),
	}
	if statsview.Available() {
		c.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return c
}

// start applies the common flags and loads the preferences. The returned
// function must be called at the end of the mode.
func (c common) start(output io.Writer) (*gui.Preferences, func(), error) {
	if *c.log {
		logger.SetEcho(output)
	}

	if c.stats != nil && *c.stats {
		statsview.Launch(output)
	}

	prefs.PushCommandLineStack(*c.prefs)

	end := func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "nazara", "unused preferences: %s", unused)
		}
		logger.SetEcho(nil)
	}

	pth, err := paths.ResourcePath("", "prefs")
	if err != nil {
		end()
		return nil, nil, err
	}

	prf, err := gui.NewPreferences(pth)
	if err != nil {
		end()
		return nil, nil, err
	}

	return prf, end, nil
}

func view(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	backend := md.Mode()

	md.NewMode()
	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, end, err := c.start(output)
	if err != nil {
		return err
	}
	defer end()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// changes to the preferences file take effect immediately
	go func() {
		err := prefs.Watch(ctx, prf.Disk(), func() {
			logger.Logf(logger.Allow, "nazara", "preferences reloaded: %s", prf)
		})
		if err != nil {
			logger.Log(logger.Allow, "nazara", err)
		}
	}()

	printer := gui.NewPrinter(output)

	var host gui.Host
	switch backend {
	case "SDL":
		wnd, err := sdlwindow.NewWindow(windowTitle, prf, printer, output)
		if err != nil {
			return err
		}
		defer wnd.Destroy()
		host = wnd

	case "X11":
		wnd, err := x11window.NewWindow(windowTitle, prf, printer, output)
		if err != nil {
			return err
		}
		defer wnd.Destroy()
		host = wnd
	}

	return host.Run(ctx)
}

func play(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	c := addCommon(md)
	wav := md.AddString("wav", "", "write the decoded sound to a wav file before playing")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("sound file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, end, err := c.start(output)
	if err != nil {
		return err
	}
	defer end()

	pcm, err := sound.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	if *wav != "" {
		err = wavwriter.Write(*wav, pcm)
		if err != nil {
			return err
		}
	}

	err = sdl.Init(sdl.INIT_AUDIO)
	if err != nil {
		return err
	}
	defer sdl.Quit()

	dev, err := sdlaudio.DefaultOutput(sdlaudio.Spec{
		Device:   prf.AudioDevice.String(),
		Freq:     pcm.SampleRate,
		Channels: pcm.Channels,
	})
	if err != nil {
		return err
	}
	defer dev.Close()

	err = dev.Queue(pcm)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "playing %s (%s)\n", filepath.Base(md.GetArg(0)), pcm)

	return dev.Drain(ctx)
}
