package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"husk-grader/internal/domain/entity"
)

// Grading параметры оценки кадра, фиксированы при сборке
type Grading struct {
	Thresholds   entity.ThresholdSet
	TargetWidth  int
	TargetHeight int
	Stride       int
	FlashDelay   time.Duration
	PoolBytes    int // объём основной области под уменьшенный кадр
}

// Link параметры протокола координатора, фиксированы при сборке
type Link struct {
	DistanceThresholdCM float64
	SettleDelay         time.Duration
	ResultTimeout       time.Duration
	PollInterval        time.Duration
	LoopInterval        time.Duration
	EchoTimeout         time.Duration
}

// Config параметры развёртывания из окружения
type Config struct {
	SerialDevice   string // UART, пусто — stdin/stdout
	SerialBaud     int
	TrigPin        string
	EchoPin        string
	RelayPin       string
	RelayActiveLow bool
	FlashPin       string // пусто — без вспышки
	CameraSource   string // путь к файлу или "gocv:<номер устройства>"
	CameraWidth    int
	CameraHeight   int
	Debug          bool

	Grading Grading
	Link    Link
}

// DefaultGrading значения прошивки модуля камеры
func DefaultGrading() Grading {
	return Grading{
		Thresholds:   entity.DefaultThresholds(),
		TargetWidth:  160,
		TargetHeight: 120,
		Stride:       15,
		FlashDelay:   50 * time.Millisecond,
		PoolBytes:    4 << 20,
	}
}

// DefaultLink значения прошивки координатора
func DefaultLink() Link {
	return Link{
		DistanceThresholdCM: 10,
		SettleDelay:         500 * time.Millisecond,
		ResultTimeout:       10 * time.Second,
		PollInterval:        20 * time.Millisecond,
		LoopInterval:        500 * time.Millisecond,
		EchoTimeout:         30 * time.Millisecond,
	}
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		SerialDevice: os.Getenv("HUSK_SERIAL_DEVICE"),
		TrigPin:      getenv("HUSK_TRIG_PIN", "GPIO5"),
		EchoPin:      getenv("HUSK_ECHO_PIN", "GPIO18"),
		RelayPin:     getenv("HUSK_RELAY_PIN", "GPIO19"),
		FlashPin:     os.Getenv("HUSK_FLASH_PIN"),
		CameraSource: getenv("HUSK_CAMERA_SOURCE", "gocv:0"),
		Debug:        os.Getenv("HUSK_LOG_LEVEL") == "debug",
		Grading:      DefaultGrading(),
		Link:         DefaultLink(),
	}

	var err error
	if cfg.SerialBaud, err = getenvInt("HUSK_SERIAL_BAUD", 115200); err != nil {
		return nil, err
	}
	if cfg.RelayActiveLow, err = getenvBool("HUSK_RELAY_ACTIVE_LOW", true); err != nil {
		return nil, err
	}
	if cfg.CameraWidth, err = getenvInt("HUSK_CAMERA_WIDTH", 640); err != nil {
		return nil, err
	}
	if cfg.CameraHeight, err = getenvInt("HUSK_CAMERA_HEIGHT", 480); err != nil {
		return nil, err
	}
	if cfg.CameraWidth <= 0 || cfg.CameraHeight <= 0 {
		return nil, fmt.Errorf("camera frame must be positive, got %dx%d", cfg.CameraWidth, cfg.CameraHeight)
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
