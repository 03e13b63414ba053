package hardware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"husk-grader/internal/domain/port"
)

func TestOutputPin_ActiveLowRelay(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO19"}
	relay := NewOutputPin(pin, true)

	require.NoError(t, relay.SetPower(true))
	require.Equal(t, gpio.Low, pin.Read())

	require.NoError(t, relay.SetPower(false))
	require.Equal(t, gpio.High, pin.Read())
}

func TestOutputPin_ActiveHighLight(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO4"}
	light := NewOutputPin(pin, false)

	require.NoError(t, light.SetLight(true))
	require.Equal(t, gpio.High, pin.Read())
}

func TestUltrasonic_NoEcho(t *testing.T) {
	trig := &gpiotest.Pin{N: "GPIO5"}
	echo := &gpiotest.Pin{N: "GPIO18", EdgesChan: make(chan gpio.Level)}

	u, err := NewUltrasonic(trig, echo, 5*time.Millisecond)
	require.NoError(t, err)

	_, err = u.MeasureDistance(context.Background())
	require.ErrorIs(t, err, port.ErrNoEcho)
	require.Equal(t, gpio.Low, trig.Read())
}

func TestUltrasonic_EchoWidth(t *testing.T) {
	trig := &gpiotest.Pin{N: "GPIO5"}
	echo := &gpiotest.Pin{N: "GPIO18", EdgesChan: make(chan gpio.Level)}

	u, err := NewUltrasonic(trig, echo, 500*time.Millisecond)
	require.NoError(t, err)

	go func() {
		echo.EdgesChan <- gpio.High
		time.Sleep(2 * time.Millisecond)
		echo.EdgesChan <- gpio.Low
	}()

	cm, err := u.MeasureDistance(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, cm, 2000/microsecondsPerCM)
}

func TestEchoToCM(t *testing.T) {
	require.InDelta(t, 10.0, EchoToCM(580*time.Microsecond), 1e-9)
}

func TestSystemClock_SleepHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, SystemClock{}.Sleep(ctx, time.Second), context.Canceled)
	require.NoError(t, SystemClock{}.Sleep(context.Background(), time.Millisecond))
}
