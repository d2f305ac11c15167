// Package export converts persisted detection files into a Label Studio
// import file referencing cloud-stored images.
package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/yingzhe/fishdetect/internal/config"
	"github.com/yingzhe/fishdetect/internal/utils"
	"github.com/yingzhe/fishdetect/pkg/boxes"
	"github.com/yingzhe/fishdetect/pkg/processing"
	"github.com/yingzhe/fishdetect/pkg/types"
)

// Converter builds Label Studio tasks from per-image detection files.
// It never calls the detection service; it works purely from what the
// detection run persisted.
type Converter struct {
	processor *processing.Processor
	cfg       *config.Config
}

// NewConverter creates a converter.
func NewConverter(cfg *config.Config) *Converter {
	return &Converter{
		processor: processing.NewProcessor(),
		cfg:       cfg,
	}
}

// Run converts every detection file and writes the task list as a single
// JSON array to the configured export file.
func (c *Converter) Run() error {
	tasks, err := c.Convert()
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		log.Printf("no detection files found in %s", c.cfg.OutputFolder)
		return nil
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := c.processor.WriteFileAtomic(c.cfg.ExportFile, data); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	log.Printf("%d tasks written to %s", len(tasks), c.cfg.ExportFile)
	return nil
}

// Convert reads every .json file in the output folder, in lexicographic
// order, and returns one task per file.
func (c *Converter) Convert() ([]types.Task, error) {
	files, err := utils.ListJSONFiles(c.cfg.OutputFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.cfg.OutputFolder, err)
	}

	tasks := make([]types.Task, 0, len(files))
	for _, name := range files {
		task, err := c.convertFile(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (c *Converter) convertFile(name string) (types.Task, error) {
	data, err := os.ReadFile(filepath.Join(c.cfg.OutputFolder, name))
	if err != nil {
		return types.Task{}, err
	}

	var dets []types.Detection
	if err := json.Unmarshal(data, &dets); err != nil {
		return types.Task{}, fmt.Errorf("failed to decode detections: %v", err)
	}

	results := make([]types.Annotation, 0, len(dets))
	for _, det := range dets {
		// Files were gated at write time; a malformed record here means
		// the file was edited by hand. Skip it rather than fail the export.
		if !boxes.Valid(det) {
			continue
		}
		r := boxes.ToPercent(det.Box2D)
		results = append(results, types.Annotation{
			FromName: "label",
			ToName:   "image",
			Type:     "rectanglelabels",
			Value: types.RectValue{
				RectangleLabels: []string{det.Label},
				X:               r.X,
				Y:               r.Y,
				Width:           r.Width,
				Height:          r.Height,
			},
		})
	}

	// The original image's extension is recovered by probing the input
	// folder. No match leaves the URI without an extension; Label Studio
	// surfaces that as a broken image rather than this run failing.
	base := utils.BaseName(name)
	original := utils.FindOriginalImage(c.cfg.InputFolder, base)
	uri := fmt.Sprintf("gs://%s/%s%s", c.cfg.Bucket.Name, c.cfg.Bucket.Prefix, original)

	return types.Task{
		Data: types.TaskData{Image: uri},
		Predictions: []types.Prediction{
			{
				ModelVersion: c.cfg.Detection.Model,
				Result:       results,
			},
		},
	}, nil
}
