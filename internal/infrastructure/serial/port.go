package serial

import (
	"fmt"
	"time"

	bugst "go.bug.st/serial"
)

// DefaultBaudRate скорость UART модулей
const DefaultBaudRate = 115200

// Open открывает UART 8N1 и выставляет таймаут чтения,
// чтобы Read не блокировал цикл опроса
func Open(device string, baud int, readTimeout time.Duration) (bugst.Port, error) {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	p, err := bugst.Open(device, &bugst.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   bugst.NoParity,
		StopBits: bugst.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", device, err)
	}
	if err := p.SetReadTimeout(readTimeout); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", device, err)
	}
	return p, nil
}
