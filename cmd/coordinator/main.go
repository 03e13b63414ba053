package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"husk-grader/config"
	"husk-grader/internal/container"
	"husk-grader/internal/infrastructure/hardware"
	"husk-grader/internal/infrastructure/serial"
	"husk-grader/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.SerialDevice == "" {
		log.Fatal("HUSK_SERIAL_DEVICE is required")
	}

	trig, err := hardware.Pin(cfg.TrigPin)
	if err != nil {
		log.Fatalf("Trigger pin: %v", err)
	}
	echo, err := hardware.Pin(cfg.EchoPin)
	if err != nil {
		log.Fatalf("Echo pin: %v", err)
	}
	relayPin, err := hardware.Pin(cfg.RelayPin)
	if err != nil {
		log.Fatalf("Relay pin: %v", err)
	}

	sensor, err := hardware.NewUltrasonic(trig, echo, cfg.Link.EchoTimeout)
	if err != nil {
		log.Fatalf("Failed to set up distance sensor: %v", err)
	}
	relay := hardware.NewOutputPin(relayPin, cfg.RelayActiveLow)

	// Таймаут чтения равен паузе опроса, чтобы Read не блокировал цикл.
	uart, err := serial.Open(cfg.SerialDevice, cfg.SerialBaud, cfg.Link.PollInterval)
	if err != nil {
		log.Fatalf("Failed to open serial link: %v", err)
	}
	defer uart.Close()

	cycles := storage.NewMemoryCycleRepository(storage.DefaultHistory)
	coordinator := container.NewCoordinator(cfg, sensor, relay, serial.NewLineReader(uart), hardware.SystemClock{}, cycles, log.Default())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Coordinator is running...")
	if err := coordinator.Run(ctx); err != nil {
		log.Fatalf("Coordinator error: %v", err)
	}

	if err := relay.SetPower(false); err != nil {
		log.Printf("Final power off failed: %v", err)
	}
	summary, err := coordinator.Summary(context.Background())
	if err == nil {
		log.Printf("Cycle summary: %v", summary)
	}
}
