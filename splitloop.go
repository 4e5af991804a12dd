// This file is part of Splitloop.
//
// Splitloop is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Splitloop is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Splitloop.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/splitloop/frame"
	"github.com/jetsetilly/splitloop/gui/sdlscreen"
	"github.com/jetsetilly/splitloop/logger"
	"github.com/jetsetilly/splitloop/session"
	"github.com/jetsetilly/splitloop/statsview"
	"github.com/jetsetilly/splitloop/version"
)

func init() {
	// SDL window and event handling must happen on the main OS thread
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := flag.NewFlagSet(version.ApplicationName, flag.ExitOnError)

	width := md.Int("width", 640, "frame width in pixels")
	height := md.Int("height", 480, "frame height in pixels")
	interval := md.Duration("interval", 16*time.Millisecond, "target tick interval for both loops")
	duration := md.Duration("duration", 60*time.Second, "wall-clock run budget for the simulation (0 for no budget)")
	log := md.Bool("log", false, "echo debugging log to stdout")
	stats := md.Bool("statsview", false, "run stats server")
	structviz := md.String("structviz", "", "write dot rendering of the session structure to file")
	showVersion := md.Bool("version", false, "print version and quit")

	md.Parse(os.Args[1:])

	if *showVersion {
		vers, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, vers, rev)
		os.Exit(0)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* launch with statsview build constraint for stats server")
		}
	}

	if *width <= 0 || *height <= 0 || *interval <= 0 {
		fmt.Println("* error: width, height and interval must all be positive")
		os.Exit(10)
	}

	os.Exit(run(frame.Spec{Width: *width, Height: *height}, *interval, *duration, *structviz))
}

func run(spec frame.Spec, interval time.Duration, duration time.Duration, structviz string) int {
	scr, err := sdlscreen.NewScreen()
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	// the screen is released only after the session has finished with the
	// worker goroutine
	defer scr.Destroy()

	sess, err := session.NewSession(scr, spec, interval, duration)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	if structviz != "" {
		if err := dumpStructviz(structviz, sess); err != nil {
			fmt.Printf("* error: %v\n", err)
			return 10
		}
	}

	// redirect interrupt signal. ctrl-c is treated like a window close
	// request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		sess.Quit()
	}()

	err = sess.Run()
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return 20
	}

	return 0
}

// dumpStructviz writes a graphviz dot rendering of the session object graph.
// a debugging aid when changing the coordination structures.
func dumpStructviz(filename string, sess *session.Session) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, sess)
	return nil
}
