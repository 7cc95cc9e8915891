// Command dmgcore runs a ROM against the DMG core with no rendering,
// audio or input — a headless CPU/bus/timer loop suited to running
// test ROMs and instruction-accuracy suites. Grounded on the
// teacher's cmd/goboy/main.go's flag-based construction, minus the
// fyne window setup this core has no use for.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/aaron-nuy/dmgcore/internal/gameboy"
	"github.com/aaron-nuy/dmgcore/internal/romload"
)

func main() {
	bootROM := flag.String("boot", "", "boot ROM file to load before the cartridge")
	trace := flag.Bool("trace", false, "log every decoded instruction at trace level")
	cycles := flag.Uint64("cycles", 0, "stop after this many machine cycles (0 = run forever)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: dmgcore [-boot file] [-trace] [-cycles n] <rom>")
		os.Exit(2)
	}
	romPath := flag.Arg(0)

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
		DisableSorting:   true,
	})

	rom, err := romload.Load(romPath, log)
	if err != nil {
		log.WithError(err).Fatal("dmgcore: failed to load ROM")
	}

	var opts []gameboy.Option
	opts = append(opts, gameboy.WithLogger(log))
	if *trace {
		opts = append(opts, gameboy.WithTrace())
	}
	if *bootROM != "" {
		boot, err := romload.Load(*bootROM, log)
		if err != nil {
			log.WithError(err).Fatal("dmgcore: failed to load boot ROM")
		}
		opts = append(opts, gameboy.WithBootROM(boot.Data))
	}

	gb := gameboy.New(rom.Data, opts...)

	if *cycles == 0 {
		gb.Run()
		return
	}
	var total uint64
	for total < *cycles {
		total += uint64(gb.Step())
	}
}
