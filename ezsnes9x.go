// This file is part of ezsnes9x.
//
// ezsnes9x is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ezsnes9x is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ezsnes9x.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/adriaanm/ezsnes9x/gui/sdlaudio"
	"github.com/adriaanm/ezsnes9x/gui/sdlplay"
	"github.com/adriaanm/ezsnes9x/hardware"
	"github.com/adriaanm/ezsnes9x/hardware/controllers"
	"github.com/adriaanm/ezsnes9x/hardware/nullcore"
	"github.com/adriaanm/ezsnes9x/logger"
	"github.com/adriaanm/ezsnes9x/playmode"
	"github.com/adriaanm/ezsnes9x/statsview"
	"github.com/adriaanm/ezsnes9x/version"
	"github.com/adriaanm/ezsnes9x/wavwriter"
)

func init() {
	// SDL requires that window creation and event polling happen on the
	// main thread
	runtime.LockOSThread()
}

// parse a controller specification of the form "none" or "pad1" to "pad8".
func parseControllerSpec(c *controllers.Controllers, id controllers.PortID, arg string) error {
	arg = strings.ToLower(arg)

	switch {
	case arg == "none":
		c.SetController(id, controllers.NoPad)
	case strings.HasPrefix(arg, "pad") && len(arg) == 4 && arg[3] >= '1' && arg[3] <= '8':
		c.SetController(id, controllers.PadID(arg[3]-'1'))
	default:
		return fmt.Errorf("unrecognised controller (%s)", arg)
	}

	return nil
}

func main() {
	scale := flag.Int("scale", 2, "window scale factor")
	wavFile := flag.String("wav", "", "record audio to WAV file instead of playing it")
	stats := flag.Bool("stats", false, "launch the statistics server")
	echoLog := flag.Bool("log", false, "echo log entries to stderr")
	showVersion := flag.Bool("version", false, "print version and exit")
	port1 := flag.String("port1", "pad1", "controller in port 1 (none, pad1-pad8)")
	port2 := flag.String("port2", "pad2", "controller in port 2 (none, pad1-pad8)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", version.ApplicationName, version.Version)
		return
	}

	if *echoLog {
		logger.SetEcho(os.Stderr, true)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	if err := run(*scale, *wavFile, *port1, *port2); err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}
}

func run(scale int, wavFile string, port1 string, port2 string) error {
	snes := hardware.NewSNES(nullcore.NewNullCore())

	err := parseControllerSpec(snes.Controllers, controllers.Port1, port1)
	if err != nil {
		return err
	}
	err = parseControllerSpec(snes.Controllers, controllers.Port2, port2)
	if err != nil {
		return err
	}
	snes.Controllers.VerifyControllers()
	snes.Controllers.ResetSoft()

	var mixer hardware.AudioMixer
	if wavFile != "" {
		mixer, err = wavwriter.New(wavFile)
	} else {
		mixer, err = sdlaudio.NewAudio()
	}
	if err != nil {
		return err
	}

	gui, err := sdlplay.NewSdlPlay(scale)
	if err != nil {
		return err
	}

	err = playmode.Play(snes, gui, mixer)

	// write out anything of note that happened during the session
	logger.WriteRecent(os.Stderr)

	return err
}
