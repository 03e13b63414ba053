package hardware

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"husk-grader/internal/domain/port"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init загружает драйверы periph один раз на процесс
func Init() error {
	initOnce.Do(func() {
		_, initErr = host.Init()
	})
	return initErr
}

// Pin ищет GPIO по имени, например "GPIO19"
func Pin(name string) (gpio.PinIO, error) {
	if err := Init(); err != nil {
		return nil, fmt.Errorf("periph init: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("gpio %q not found", name)
	}
	return p, nil
}

// OutputPin цифровой выход: реле питания или вспышка
type OutputPin struct {
	pin       gpio.PinOut
	activeLow bool
}

// NewOutputPin создаёт выход. activeLow означает, что "включено" — это низкий уровень.
func NewOutputPin(pin gpio.PinOut, activeLow bool) *OutputPin {
	return &OutputPin{pin: pin, activeLow: activeLow}
}

func (o *OutputPin) set(on bool) error {
	level := gpio.Level(on)
	if o.activeLow {
		level = !level
	}
	if err := o.pin.Out(level); err != nil {
		return fmt.Errorf("gpio %s: %w", o.pin.Name(), err)
	}
	return nil
}

// SetPower включает или выключает питание
func (o *OutputPin) SetPower(on bool) error {
	return o.set(on)
}

// SetLight включает или выключает подсветку
func (o *OutputPin) SetLight(on bool) error {
	return o.set(on)
}

var (
	_ port.Relay = (*OutputPin)(nil)
	_ port.Light = (*OutputPin)(nil)
)
