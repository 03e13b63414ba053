package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"husk-grader/internal/domain/entity"
	"husk-grader/internal/domain/port"
	"husk-grader/internal/infrastructure/vision"
)

// InspectionConfig параметры цикла на модуле камеры
type InspectionConfig struct {
	TargetWidth  int           // ширина уменьшенного кадра
	TargetHeight int           // высота уменьшенного кадра
	FlashDelay   time.Duration // подсветка до снимка
}

// InspectionService снимает кадр, оценивает его и отправляет результат по UART
type InspectionService struct {
	camera  port.Camera
	light   port.Light
	clock   port.Clock
	reducer *vision.Reducer
	grader  *vision.Grader
	out     io.Writer
	cfg     InspectionConfig
	logger  *log.Logger
}

// NewInspectionService создаёт сервис модуля камеры. light может быть nil.
func NewInspectionService(camera port.Camera, light port.Light, clock port.Clock, reducer *vision.Reducer, grader *vision.Grader, out io.Writer, cfg InspectionConfig, logger *log.Logger) *InspectionService {
	if logger == nil {
		logger = log.Default()
	}
	return &InspectionService{
		camera:  camera,
		light:   light,
		clock:   clock,
		reducer: reducer,
		grader:  grader,
		out:     out,
		cfg:     cfg,
		logger:  logger,
	}
}

// Inspect снимает и оценивает один кадр. Буфер уменьшенного кадра освобождается на любом пути.
func (s *InspectionService) Inspect(ctx context.Context) (*entity.Verdict, error) {
	frame, err := s.capture(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("frame captured: %dx%d %s, %d bytes", frame.Width, frame.Height, frame.Format, len(frame.Pix))

	reduced, release, err := s.reducer.Reduce(frame, s.cfg.TargetWidth, s.cfg.TargetHeight)
	defer release()
	if err != nil {
		return nil, fmt.Errorf("reduce frame: %w", err)
	}

	s.logger.Printf("running husk grading on %dx%d frame", reduced.Width, reduced.Height)
	verdict, err := s.grader.Grade(reduced)
	if err != nil {
		return nil, fmt.Errorf("grade frame: %w", err)
	}
	s.logger.Printf("grade %s: qualified=%d accepted=%d disqualified=%d sampled=%d",
		verdict.Grade, verdict.Counts.Qualified, verdict.Counts.Accepted, verdict.Counts.Disqualified, verdict.Sampled)

	return &verdict, nil
}

// Run выполняет цикл и пишет ровно одну строку RESULT при успехе, затем DONE.
// При ошибке строки результата нет, DONE отправляется всё равно.
func (s *InspectionService) Run(ctx context.Context) (*entity.Verdict, error) {
	verdict, err := s.Inspect(ctx)
	if err == nil {
		if _, werr := fmt.Fprintln(s.out, entity.FormatResultLine(verdict.Grade)); werr != nil {
			err = fmt.Errorf("send result: %w", werr)
		}
	} else {
		s.logger.Printf("inspection aborted: %v", err)
	}

	if _, werr := fmt.Fprintln(s.out, entity.DoneLine); werr != nil && err == nil {
		err = fmt.Errorf("send done: %w", werr)
	}
	if err != nil {
		return nil, err
	}
	return verdict, nil
}

// capture включает подсветку на время снимка
func (s *InspectionService) capture(ctx context.Context) (entity.Raster, error) {
	if s.light != nil {
		if err := s.light.SetLight(true); err != nil {
			s.logger.Printf("flash on failed: %v", err)
		}
		defer func() {
			if err := s.light.SetLight(false); err != nil {
				s.logger.Printf("flash off failed: %v", err)
			}
		}()
		if err := s.clock.Sleep(ctx, s.cfg.FlashDelay); err != nil {
			return entity.Raster{}, err
		}
	}

	frame, err := s.camera.CaptureFrame(ctx)
	if err != nil {
		return entity.Raster{}, fmt.Errorf("capture: %w", err)
	}
	if frame.Empty() {
		return entity.Raster{}, port.ErrNoFrame
	}
	return frame, nil
}
