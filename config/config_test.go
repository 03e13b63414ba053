package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HUSK_SERIAL_DEVICE", "")
	t.Setenv("HUSK_SERIAL_BAUD", "")
	t.Setenv("HUSK_RELAY_ACTIVE_LOW", "")
	t.Setenv("HUSK_CAMERA_WIDTH", "")
	t.Setenv("HUSK_CAMERA_HEIGHT", "")
	t.Setenv("HUSK_CAMERA_SOURCE", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 115200, cfg.SerialBaud)
	require.True(t, cfg.RelayActiveLow)
	require.Equal(t, "gocv:0", cfg.CameraSource)
	require.Equal(t, 640, cfg.CameraWidth)

	require.Equal(t, 160, cfg.Grading.TargetWidth)
	require.Equal(t, 120, cfg.Grading.TargetHeight)
	require.Equal(t, 15, cfg.Grading.Stride)
	require.NoError(t, cfg.Grading.Thresholds.Validate())

	require.Equal(t, 10.0, cfg.Link.DistanceThresholdCM)
	require.Equal(t, 10*time.Second, cfg.Link.ResultTimeout)
	require.Equal(t, 500*time.Millisecond, cfg.Link.SettleDelay)
	require.Equal(t, 20*time.Millisecond, cfg.Link.PollInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HUSK_SERIAL_DEVICE", "/dev/ttyS2")
	t.Setenv("HUSK_SERIAL_BAUD", "9600")
	t.Setenv("HUSK_RELAY_ACTIVE_LOW", "false")
	t.Setenv("HUSK_CAMERA_SOURCE", "/tmp/husk.jpg")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/dev/ttyS2", cfg.SerialDevice)
	require.Equal(t, 9600, cfg.SerialBaud)
	require.False(t, cfg.RelayActiveLow)
	require.Equal(t, "/tmp/husk.jpg", cfg.CameraSource)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("HUSK_SERIAL_BAUD", "fast")
	_, err := Load()
	require.ErrorContains(t, err, "HUSK_SERIAL_BAUD")

	t.Setenv("HUSK_SERIAL_BAUD", "")
	t.Setenv("HUSK_CAMERA_WIDTH", "-1")
	_, err = Load()
	require.Error(t, err)
}
