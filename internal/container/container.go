package container

import (
	"io"
	"log"

	"husk-grader/config"
	app "husk-grader/internal/application"
	"husk-grader/internal/domain/port"
	"husk-grader/internal/infrastructure/memory"
	"husk-grader/internal/infrastructure/vision"
)

// Pipeline кадровый конвейер: классификатор, уменьшитель и оценщик
type Pipeline struct {
	Classifier *vision.Classifier
	Reducer    *vision.Reducer
	Grader     *vision.Grader
}

// NewPipeline собирает конвейер. Буферы берутся из пула, при нехватке из кучи.
func NewPipeline(g config.Grading, logger *log.Logger) (*Pipeline, error) {
	classifier, err := vision.NewClassifier(g.Thresholds)
	if err != nil {
		return nil, err
	}
	grader, err := vision.NewGrader(classifier, g.Stride)
	if err != nil {
		return nil, err
	}
	alloc := memory.FallbackAllocator{
		Primary:   memory.NewPoolAllocator(g.PoolBytes),
		Secondary: memory.HeapAllocator{},
		Logger:    logger,
	}

	return &Pipeline{
		Classifier: classifier,
		Reducer:    vision.NewReducer(alloc),
		Grader:     grader,
	}, nil
}

// NewInspection собирает сервис модуля камеры
func NewInspection(cfg *config.Config, camera port.Camera, light port.Light, clock port.Clock, out io.Writer, logger *log.Logger) (*app.InspectionService, error) {
	p, err := NewPipeline(cfg.Grading, logger)
	if err != nil {
		return nil, err
	}
	ic := app.InspectionConfig{
		TargetWidth:  cfg.Grading.TargetWidth,
		TargetHeight: cfg.Grading.TargetHeight,
		FlashDelay:   cfg.Grading.FlashDelay,
	}
	return app.NewInspectionService(camera, light, clock, p.Reducer, p.Grader, out, ic, logger), nil
}

// NewCoordinator собирает сервис координатора
func NewCoordinator(cfg *config.Config, sensor port.DistanceSensor, relay port.Relay, link port.SerialLink, clock port.Clock, cycles port.CycleRepository, logger *log.Logger) *app.CoordinatorService {
	lc := app.LinkConfig{
		DistanceThresholdCM: cfg.Link.DistanceThresholdCM,
		SettleDelay:         cfg.Link.SettleDelay,
		ResultTimeout:       cfg.Link.ResultTimeout,
		PollInterval:        cfg.Link.PollInterval,
		LoopInterval:        cfg.Link.LoopInterval,
	}
	return app.NewCoordinatorService(sensor, relay, link, clock, cycles, lc, logger)
}
