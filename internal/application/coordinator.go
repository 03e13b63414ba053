package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"husk-grader/internal/domain/entity"
	"husk-grader/internal/domain/port"
)

// LinkConfig параметры координатора
type LinkConfig struct {
	DistanceThresholdCM float64       // объект ближе порога запускает цикл
	SettleDelay         time.Duration // пауза после включения камеры
	ResultTimeout       time.Duration // сколько ждать строку RESULT
	PollInterval        time.Duration // пауза между опросами UART
	LoopInterval        time.Duration // пауза между итерациями основного цикла
}

// CoordinatorService управляет питанием камеры и ждёт от неё результат
type CoordinatorService struct {
	sensor port.DistanceSensor
	relay  port.Relay
	link   port.SerialLink
	clock  port.Clock
	cycles port.CycleRepository
	cfg    LinkConfig
	logger *log.Logger

	mu    sync.RWMutex
	state entity.LinkState
}

// NewCoordinatorService создаёт координатор в состоянии Idle
func NewCoordinatorService(sensor port.DistanceSensor, relay port.Relay, link port.SerialLink, clock port.Clock, cycles port.CycleRepository, cfg LinkConfig, logger *log.Logger) *CoordinatorService {
	if logger == nil {
		logger = log.Default()
	}
	return &CoordinatorService{
		sensor: sensor,
		relay:  relay,
		link:   link,
		clock:  clock,
		cycles: cycles,
		cfg:    cfg,
		logger: logger,
		state:  entity.StateIdle,
	}
}

// State возвращает текущее состояние протокола
func (s *CoordinatorService) State() entity.LinkState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *CoordinatorService) setState(cycle *entity.Cycle, state entity.LinkState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	if cycle != nil {
		cycle.SetState(state)
	}
}

// Run крутит основной цикл до отмены контекста
func (s *CoordinatorService) Run(ctx context.Context) error {
	if err := s.relay.SetPower(false); err != nil {
		return fmt.Errorf("initial power off: %w", err)
	}
	s.logger.Println("coordinator: setup complete")

	for {
		if _, err := s.RunCycle(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.logger.Printf("cycle failed: %v", err)
		}
		if err := s.clock.Sleep(ctx, s.cfg.LoopInterval); err != nil {
			return nil
		}
	}
}

// RunCycle одна итерация: замер расстояния и, если объект рядом, запрос результата.
// Возвращает nil-цикл, если объекта нет или датчик не ответил.
func (s *CoordinatorService) RunCycle(ctx context.Context) (*entity.Cycle, error) {
	distance, err := s.sensor.MeasureDistance(ctx)
	if err != nil {
		if errors.Is(err, port.ErrNoEcho) {
			s.logger.Println("no echo from ultrasonic sensor (timeout)")
			return nil, nil
		}
		return nil, fmt.Errorf("measure distance: %w", err)
	}
	s.logger.Printf("distance: %.2f cm", distance)

	if distance <= 0 || distance >= s.cfg.DistanceThresholdCM {
		s.logger.Println("no object detected")
		return nil, nil
	}

	cycle := entity.NewCycle(uuid.NewString(), distance)
	s.logger.Printf("[%s] object detected at %.2f cm, powering on camera", cycle.ID, distance)
	err = s.Trigger(ctx, cycle)
	return cycle, err
}

// Trigger включает камеру, ждёт результат и выключает камеру на любом пути
func (s *CoordinatorService) Trigger(ctx context.Context, cycle *entity.Cycle) error {
	defer s.finish(cycle)

	if err := s.relay.SetPower(true); err != nil {
		return fmt.Errorf("power on camera: %w", err)
	}
	if err := s.clock.Sleep(ctx, s.cfg.SettleDelay); err != nil {
		return err
	}

	return s.AwaitResult(ctx, cycle)
}

// AwaitResult опрашивает UART до строки RESULT или до истечения срока.
// Посторонние строки пропускаются.
func (s *CoordinatorService) AwaitResult(ctx context.Context, cycle *entity.Cycle) error {
	s.setState(cycle, entity.StateAwaitingResult)
	cycle.StartedAt = s.clock.Now()
	deadline := cycle.StartedAt.Add(s.cfg.ResultTimeout)
	s.logger.Printf("[%s] waiting for result", cycle.ID)

	for {
		line, ok, err := s.link.PollLine()
		if err != nil {
			s.logger.Printf("[%s] serial read error: %v", cycle.ID, err)
		}
		if ok {
			frame := entity.ParseFrame(line)
			if frame.Kind == entity.FrameResult {
				cycle.Resolve(frame.Grade)
				s.setState(cycle, entity.StateResolved)
				cycle.Elapsed = s.clock.Now().Sub(cycle.StartedAt)
				s.logger.Printf("[%s] received: %s", cycle.ID, frame.Text)
				return nil
			}
			cycle.Ignored++
			s.logger.Printf("[%s] ignored: %s", cycle.ID, frame.Text)
		}

		now := s.clock.Now()
		if !now.Before(deadline) {
			s.setState(cycle, entity.StateTimedOut)
			cycle.Elapsed = now.Sub(cycle.StartedAt)
			s.logger.Printf("[%s] no valid result received within %s", cycle.ID, s.cfg.ResultTimeout)
			return nil
		}
		if ok {
			continue
		}
		if err := s.clock.Sleep(ctx, s.cfg.PollInterval); err != nil {
			return err
		}
	}
}

// finish выключает камеру, сохраняет цикл и возвращает координатор в Idle
func (s *CoordinatorService) finish(cycle *entity.Cycle) {
	s.logger.Printf("[%s] powering off camera", cycle.ID)
	if err := s.relay.SetPower(false); err != nil {
		s.logger.Printf("[%s] power off failed: %v", cycle.ID, err)
	}
	if s.cycles != nil {
		if err := s.cycles.Save(context.Background(), cycle); err != nil {
			s.logger.Printf("[%s] save cycle: %v", cycle.ID, err)
		}
	}
	s.setState(nil, entity.StateIdle)
}

// Summary считает исходы сохранённых циклов
func (s *CoordinatorService) Summary(ctx context.Context) (map[string]int, error) {
	summary := make(map[string]int)
	if s.cycles == nil {
		return summary, nil
	}
	recent, err := s.cycles.Recent(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range recent {
		key := string(c.State)
		if c.State == entity.StateResolved {
			key = c.Grade.String()
		}
		summary[key]++
	}
	return summary, nil
}
