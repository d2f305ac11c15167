package config

import (
	"fmt"
	"os"
	"time"
)

// Prompt sent with every image. It pins the response shape the rest of the
// pipeline depends on: a JSON array of {label, box_2d} records with
// [ymin, xmin, ymax, xmax] coordinates on the 0-1000 scale.
const DetectionPrompt = `Detect all fish in the image. The response must be a JSON list of objects. Each object must contain a 'label' key with the text 'fish' and a 'box_2d' key with the bounding box coordinates as [ymin, xmin, ymax, xmax], normalized to a 0-1000 scale. If no fish are detected, return an empty list [].`

// Config holds the application configuration
type Config struct {
	InputFolder  string          `json:"input_folder"`
	OutputFolder string          `json:"output_folder"`
	ExportFile   string          `json:"export_file"`
	Bucket       BucketConfig    `json:"bucket"`
	Detection    DetectionConfig `json:"detection"`
}

// BucketConfig identifies the cloud storage location the exported tasks
// reference. Images are expected to be uploaded there separately.
type BucketConfig struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

// DetectionConfig holds configuration for the vision model calls
type DetectionConfig struct {
	Backend      string        `json:"backend"` // gemini, ollama or llamacpp
	Model        string        `json:"model"`
	ServerURL    string        `json:"server_url"` // ollama/llamacpp only
	Prompt       string        `json:"prompt"`
	RequestDelay time.Duration `json:"request_delay"` // idle time between images, for rate limits
	SendMaxDim   int           `json:"send_max_dim"`  // long side cap for the model payload, 0=original
	SendQuality  int           `json:"send_quality"`  // JPEG quality for the model payload
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		InputFolder:  "test_image",
		OutputFolder: "output_results",
		ExportFile:   "import_to_ls_gcs.json",
		Bucket: BucketConfig{
			Name:   "yingzhe_gemini_fish",
			Prefix: "fish_images/",
		},
		Detection: DetectionConfig{
			Backend:      "gemini",
			Model:        "gemini-2.5-flash",
			ServerURL:    "",
			Prompt:       DetectionPrompt,
			RequestDelay: time.Second,
			SendMaxDim:   1536,
			SendQuality:  85,
		},
	}
}

// APIKey returns the Gemini credential from the environment. Both variable
// names the Google SDK accepts are honored, GOOGLE_API_KEY first.
func APIKey() (string, error) {
	for _, name := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY"} {
		if key := os.Getenv(name); key != "" {
			return key, nil
		}
	}
	return "", fmt.Errorf("API key not found: set GOOGLE_API_KEY or GEMINI_API_KEY")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.InputFolder == "" {
		return fmt.Errorf("input_folder cannot be empty")
	}

	if c.OutputFolder == "" {
		return fmt.Errorf("output_folder cannot be empty")
	}

	if c.ExportFile == "" {
		return fmt.Errorf("export_file cannot be empty")
	}

	if c.Bucket.Name == "" {
		return fmt.Errorf("bucket.name cannot be empty")
	}

	switch c.Detection.Backend {
	case "gemini", "ollama", "llamacpp":
	default:
		return fmt.Errorf("detection.backend must be gemini, ollama or llamacpp")
	}

	if c.Detection.Model == "" {
		return fmt.Errorf("detection.model cannot be empty")
	}

	if c.Detection.Prompt == "" {
		return fmt.Errorf("detection.prompt cannot be empty")
	}

	if c.Detection.RequestDelay < 0 {
		return fmt.Errorf("detection.request_delay must not be negative")
	}

	if c.Detection.SendQuality < 1 || c.Detection.SendQuality > 100 {
		return fmt.Errorf("detection.send_quality must be between 1 and 100")
	}

	return nil
}
