package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"husk-grader/config"
	"husk-grader/internal/container"
	"husk-grader/internal/domain/port"
	"husk-grader/internal/infrastructure/camera"
	"husk-grader/internal/infrastructure/hardware"
	"husk-grader/internal/infrastructure/serial"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Диагностика в stderr, в UART только протокол и баннеры.
	log.SetOutput(os.Stderr)

	var out io.Writer = os.Stdout
	if cfg.SerialDevice != "" {
		uart, err := serial.Open(cfg.SerialDevice, cfg.SerialBaud, 100*time.Millisecond)
		if err != nil {
			log.Fatalf("Failed to open serial link: %v", err)
		}
		defer uart.Close()
		out = uart
	}
	fmt.Fprintln(out, "camera node powering up")

	cam, err := openCamera(cfg)
	if err != nil {
		fmt.Fprintln(out, "camera init failed")
		log.Fatalf("Camera init failed: %v", err)
	}
	defer cam.Close()

	var light port.Light
	if cfg.FlashPin != "" {
		pin, err := hardware.Pin(cfg.FlashPin)
		if err != nil {
			log.Fatalf("Flash pin: %v", err)
		}
		light = hardware.NewOutputPin(pin, false)
	}

	inspection, err := container.NewInspection(cfg, cam, light, hardware.SystemClock{}, out, log.Default())
	if err != nil {
		log.Fatalf("Failed to build pipeline: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := inspection.Run(ctx); err != nil {
		log.Printf("Inspection error: %v", err)
	}

	// Дальше ждём, пока координатор снимет питание.
	<-ctx.Done()
}

func openCamera(cfg *config.Config) (port.Camera, error) {
	if id, ok := strings.CutPrefix(cfg.CameraSource, "gocv:"); ok {
		device, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("camera device %q: %w", id, err)
		}
		cam, err := camera.NewGoCVCamera(device, cfg.CameraWidth, cfg.CameraHeight)
		if err != nil {
			return nil, err
		}
		return cam, nil
	}
	return camera.NewFileCamera(cfg.CameraSource, cfg.CameraWidth, cfg.CameraHeight), nil
}
