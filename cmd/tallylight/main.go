/*
NAME
  tallylight

DESCRIPTION
  tallylight reads tally commands from the companion register file and
  drives a GPIO-attached LED from the decoded brightness.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/
package main

import (
	"flag"
	"os"
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/ekshore/eldritchwire/command/tally"
	"github.com/ekshore/eldritchwire/frame"
	"github.com/ekshore/eldritchwire/registerfile"
	"github.com/kidoman/embd"
	_ "github.com/kidoman/embd/host/rpi"
	"github.com/pkg/errors"
	"periph.io/x/periph/conn/i2c"
)

var (
	i2cBus     = flag.Int("i2c-bus", 1, "I²C bus number the register file is attached to")
	i2cAddr    = flag.Uint("i2c-addr", 0x6e, "I²C address of the register file")
	ledPin     = flag.String("led-pin", "GPIO17", "GPIO pin driving the tally LED")
	pollPeriod = flag.Duration("poll", 200*time.Millisecond, "how often to poll the incoming tally channel")
)

// periphI2CBus adapts embd's initialized I²C bus to periph's i2c.Bus
// interface, letting registerfile.New drive the same physical bus embd
// set up for GPIO.
type periphI2CBus struct {
	bus embd.I2CBus
}

func (p periphI2CBus) String() string { return "embd-i2c" }

func (p periphI2CBus) Speed(hz int64) error { return nil }

func (p periphI2CBus) Tx(addr uint16, w, r []byte) error {
	if len(r) == 0 {
		return p.bus.WriteBytes(byte(addr), w)
	}
	if len(w) > 0 {
		if err := p.bus.WriteBytes(byte(addr), w); err != nil {
			return err
		}
	}
	buf, err := p.bus.ReadBytes(byte(addr), len(r))
	if err != nil {
		return err
	}
	copy(r, buf)
	return nil
}

func main() {
	flag.Parse()
	log := logging.New(logging.Info, os.Stderr, false)

	if err := embd.InitGPIO(); err != nil {
		log.Fatal("init gpio failed", "error", err.Error())
	}
	defer embd.CloseGPIO()
	if err := embd.InitI2C(); err != nil {
		log.Fatal("init i2c failed", "error", err.Error())
	}
	defer embd.CloseI2C()

	led, err := embd.NewDigitalPin(*ledPin)
	if err != nil {
		log.Fatal("open led pin failed", "error", err.Error())
	}
	defer led.Close()
	if err := led.SetDirection(embd.Out); err != nil {
		log.Fatal("set led direction failed", "error", err.Error())
	}

	var bus i2c.Bus = periphI2CBus{bus: embd.NewI2CBus(byte(*i2cBus))}
	rf := registerfile.New(bus, uint16(*i2cAddr))

	for {
		if err := poll(rf, led, log); err != nil {
			log.Error("poll failed", "error", err.Error())
		}
		time.Sleep(*pollPeriod)
	}
}

func poll(rf *registerfile.RegisterFile, led embd.DigitalPin, log *logging.Logger) error {
	payload, err := rf.ReceiveTally()
	if err != nil {
		return errors.Wrap(err, "receive tally")
	}
	if len(payload) == 0 {
		return nil
	}

	cmd, err := decodeTally(payload)
	if err != nil {
		return errors.Wrap(err, "decode tally")
	}

	on := false
	if b, ok := cmd.(tally.TallyBrightness); ok {
		on = b.Data.Real() > 0
	}
	level := embd.Low
	if on {
		level = embd.High
	}
	return led.Write(level)
}

func decodeTally(body []byte) (tally.Command, error) {
	records, err := frame.Parse(append([]byte{0x00, byte(len(body)), 0x00, 0x00}, body...))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no tally record decoded")
	}
	cmd, ok := records[0].Command.(tally.Command)
	if !ok {
		return nil, errors.New("decoded command is not a tally command")
	}
	return cmd, nil
}
