// Package detection runs the per-image pipeline: call the vision model,
// gate the response, and persist the validated result.
package detection

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/yingzhe/fishdetect/internal/config"
	"github.com/yingzhe/fishdetect/internal/utils"
	"github.com/yingzhe/fishdetect/pkg/boxes"
	"github.com/yingzhe/fishdetect/pkg/client"
	"github.com/yingzhe/fishdetect/pkg/processing"
	"github.com/yingzhe/fishdetect/pkg/render"
	"github.com/yingzhe/fishdetect/pkg/types"
)

// Detector orchestrates batch fish detection over an input folder.
type Detector struct {
	client    client.VisionClient
	processor *processing.Processor
	cfg       *config.Config
}

// NewDetector creates a detector using the given vision backend.
func NewDetector(c client.VisionClient, cfg *config.Config) *Detector {
	return &Detector{
		client:    c,
		processor: processing.NewProcessor(),
		cfg:       cfg,
	}
}

// Run processes every image in the input folder, one at a time, in
// lexicographic filename order. A failing image is logged and skipped;
// it never aborts the batch. The configured delay between images keeps
// the run under the service's rate limit.
func (d *Detector) Run(ctx context.Context) error {
	files, err := utils.ListImages(d.cfg.InputFolder)
	if err != nil {
		return fmt.Errorf("failed to list input folder: %w", err)
	}

	if len(files) == 0 {
		log.Printf("no images found in %s", d.cfg.InputFolder)
		return nil
	}
	log.Printf("found %d images to process", len(files))

	for i, name := range files {
		log.Printf("[%d/%d] processing %s", i+1, len(files), name)
		if err := d.ProcessImage(ctx, filepath.Join(d.cfg.InputFolder, name)); err != nil {
			log.Printf("error processing %s: %v", name, err)
		}
		if i < len(files)-1 {
			time.Sleep(d.cfg.Detection.RequestDelay)
		}
	}
	return nil
}

// ProcessImage runs the full pipeline for one image: load, detect, gate,
// persist. A structural validation rejection and an empty detection set
// are both terminal non-error outcomes; nothing is persisted for either.
func (d *Detector) ProcessImage(ctx context.Context, path string) error {
	name := filepath.Base(path)
	base := utils.BaseName(path)

	img, err := d.processor.LoadImage(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	payload, err := d.processor.EncodeJPEG(img, d.cfg.Detection.SendMaxDim, d.cfg.Detection.SendQuality)
	if err != nil {
		return fmt.Errorf("failed to encode image for model: %w", err)
	}

	raw, err := d.client.Detect(ctx, d.cfg.Detection.Model, d.cfg.Detection.Prompt, payload)
	if err != nil {
		return err
	}

	dets, err := ParseDetections(raw)
	if err != nil {
		return err
	}

	if len(dets) == 0 {
		log.Printf("no fish detected in %s", name)
		return nil
	}

	// All-or-nothing gate: one malformed record discards the whole response
	if err := boxes.ValidateAll(dets); err != nil {
		log.Printf("rejected %s: %v; response not saved", name, err)
		return nil
	}

	return d.saveOutputs(base, img, dets)
}

// saveOutputs persists the validated record list and the annotated preview
// as one unit. Both files are staged under temporary names and renamed
// into place only after both writes succeed, so an interrupted run never
// leaves the JSON behind without its annotated image.
func (d *Detector) saveOutputs(base string, img image.Image, dets []types.Detection) error {
	data, err := json.MarshalIndent(dets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode detections: %w", err)
	}

	annotated := render.Annotate(img, dets)
	pngData, err := d.processor.EncodePNG(annotated)
	if err != nil {
		return fmt.Errorf("failed to encode annotated image: %w", err)
	}

	jsonPath := filepath.Join(d.cfg.OutputFolder, base+".json")
	imgPath := filepath.Join(d.cfg.OutputFolder, base+"_annotated.png")
	jsonTmp := jsonPath + ".tmp"
	imgTmp := imgPath + ".tmp"

	if err := os.WriteFile(jsonTmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write detections: %w", err)
	}
	if err := os.WriteFile(imgTmp, pngData, 0o644); err != nil {
		os.Remove(jsonTmp)
		return fmt.Errorf("failed to write annotated image: %w", err)
	}
	if err := os.Rename(jsonTmp, jsonPath); err != nil {
		os.Remove(jsonTmp)
		os.Remove(imgTmp)
		return fmt.Errorf("failed to commit detections: %w", err)
	}
	if err := os.Rename(imgTmp, imgPath); err != nil {
		os.Remove(imgTmp)
		return fmt.Errorf("failed to commit annotated image: %w", err)
	}

	log.Printf("saved %s and %s", filepath.Base(jsonPath), filepath.Base(imgPath))
	return nil
}
