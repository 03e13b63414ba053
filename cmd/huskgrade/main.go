package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"husk-grader/config"
	"husk-grader/internal/container"
	"husk-grader/internal/domain/entity"
	"husk-grader/internal/infrastructure/camera"
	"husk-grader/internal/infrastructure/vision"
)

func main() {
	bench := flag.Bool("bench", false, "use the bench threshold table")
	stride := flag.Int("stride", vision.DefaultStride, "sample stride in bytes")
	masks := flag.String("masks", "", "directory to write per-band masks and the reduced frame")
	verbose := flag.Bool("v", false, "log pipeline steps")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: huskgrade [options] IMAGE\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	g := cfg.Grading
	g.Stride = *stride
	if *bench {
		g.Thresholds = entity.BenchThresholds()
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "", log.Ltime)
	}

	pipeline, err := container.NewPipeline(g, logger)
	if err != nil {
		log.Fatalf("Failed to build pipeline: %v", err)
	}

	frame, err := camera.NewFileCamera(flag.Arg(0), cfg.CameraWidth, cfg.CameraHeight).CaptureFrame(context.Background())
	if err != nil {
		log.Fatalf("Capture failed: %v", err)
	}

	reduced, release, err := pipeline.Reducer.Reduce(frame, g.TargetWidth, g.TargetHeight)
	defer release()
	if err != nil {
		log.Fatalf("Reduce failed: %v", err)
	}

	verdict, err := pipeline.Grader.Grade(reduced)
	if err != nil {
		log.Fatalf("Grade failed: %v", err)
	}

	fmt.Println(entity.FormatResultLine(verdict.Grade))
	fmt.Printf("qualified=%d accepted=%d disqualified=%d sampled=%d\n",
		verdict.Counts.Qualified, verdict.Counts.Accepted, verdict.Counts.Disqualified, verdict.Sampled)

	if *masks != "" {
		if err := writeMasks(*masks, pipeline.Classifier, reduced); err != nil {
			log.Fatalf("Failed to write masks: %v", err)
		}
	}
}

func writeMasks(dir string, c *vision.Classifier, reduced entity.Raster) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	bandMasks, err := vision.BandMasks(c, reduced)
	if err != nil {
		return err
	}
	for grade, mask := range bandMasks {
		if err := imaging.Save(mask, filepath.Join(dir, string(grade)+".png")); err != nil {
			return err
		}
	}
	return imaging.Save(camera.DecodeRGB888(reduced), filepath.Join(dir, "reduced.png"))
}
