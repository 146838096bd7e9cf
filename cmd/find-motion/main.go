// motion-estimator - block-based motion estimation between video frames
//  Copyright (C) 2024, The Videofield Project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	arg "github.com/alexflint/go-arg"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"

	"github.com/videofield/motion-estimator/motion"
	"github.com/videofield/motion-estimator/pnm"
)

var version = "<not set>"

type Args struct {
	PrevFrame  string `arg:"positional,required" help:"PGM image for the previous frame"`
	CurrFrame  string `arg:"positional,required" help:"PGM image for the current frame"`
	ConfigFile string `arg:"-c,--config" help:"path to configuration file"`
	Timestamps bool   `arg:"-t,--timestamps" help:"include timestamps in log output"`
	Verbose    bool   `arg:"-v,--verbose" help:"make logging more verbose"`
}

func (Args) Version() string {
	return version
}

func procArgs() Args {
	var args Args
	args.ConfigFile = "/etc/find-motion.yaml"
	arg.MustParse(&args)
	return args
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err)
	}
}

func runMain() error {
	args := procArgs()

	if !args.Timestamps {
		log.SetFlags(0) // Removes default timestamp flag
	}

	conf, err := ParseConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}
	if args.Verbose {
		conf.Verbose = true
	}
	workers := conf.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if conf.Verbose {
		logConfig(conf, workers)
	}

	prev, err := loadFrame(args.PrevFrame)
	if err != nil {
		return err
	}
	curr, err := loadFrame(args.CurrFrame)
	if err != nil {
		return err
	}
	if !motion.SameSize(prev, curr) {
		return fmt.Errorf("image sizes of the two frames do not match: %dx%d vs %dx%d",
			prev.Width, prev.Height, curr.Width, curr.Height)
	}

	// The busy pin mirrors the computation window for scope probing.
	// Missing GPIO hardware is logged, not fatal.
	busy, err := busyPin(conf.BusyPin)
	if err != nil {
		log.Printf("busy pin unavailable: %v", err)
	}
	if busy != nil {
		busy.Out(gpio.High)
		defer busy.Out(gpio.Low)
	}

	log.Println("begin motion estimation")

	// The frames are independent buffers, so they filter concurrently.
	filterStart := time.Now()
	var wg sync.WaitGroup
	for _, frame := range []*motion.Frame{prev, curr} {
		wg.Add(1)
		go func(f *motion.Frame) {
			defer wg.Done()
			motion.Median3x3(f)
		}(frame)
	}
	wg.Wait()
	filterTime := time.Since(filterStart)

	searchStart := time.Now()
	field := motion.Estimate(prev, curr, workers)
	searchTime := time.Since(searchStart)

	summary := motion.Summarize(field, motion.QuickMagnitude, conf.LegacyStats)

	fmt.Printf("\nThe motion vector field is as follows:\n\n")
	fmt.Print(field.Render())
	fmt.Printf("\nThe motion vectors have a mean of %4.1f pixels.\n", summary.Mean)
	fmt.Printf("The motion vectors range between %4.1f and %4.1f pixels.\n", summary.Min, summary.Max)
	log.Printf("it took %d milliseconds to filter the two images", filterTime.Milliseconds())
	log.Printf("it took %d milliseconds to estimate the motion field", searchTime.Milliseconds())

	return nil
}

func loadFrame(filename string) (*motion.Frame, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	frame, err := pnm.ReadFrame(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", filename, err)
	}
	if err := frame.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %v", filename, err)
	}
	return frame, nil
}

func busyPin(name string) (gpio.PinIO, error) {
	if name == "" {
		return nil, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("unknown GPIO pin %q", name)
	}
	return pin, nil
}

func logConfig(conf *Config, workers int) {
	log.Printf("workers: %d", workers)
	log.Printf("legacy stats: %v", conf.LegacyStats)
	if conf.BusyPin != "" {
		log.Printf("busy pin: %s", conf.BusyPin)
	}
}
