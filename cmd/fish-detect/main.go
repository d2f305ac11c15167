package main

import (
	"context"
	"log"

	"github.com/yingzhe/fishdetect/internal/config"
	"github.com/yingzhe/fishdetect/internal/utils"
	"github.com/yingzhe/fishdetect/pkg/client"
	"github.com/yingzhe/fishdetect/pkg/detection"
	"github.com/yingzhe/fishdetect/pkg/gemini"
	"github.com/yingzhe/fishdetect/pkg/llamacpp"
	"github.com/yingzhe/fishdetect/pkg/ollama"
)

// Runs with no arguments: scan the input folder for images, detect fish in
// each through the configured vision backend, and persist a JSON record
// plus an annotated preview per image.
func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if !utils.DirExists(cfg.InputFolder) {
		log.Fatalf("input folder %q not found; create it and add your images", cfg.InputFolder)
	}
	if err := utils.EnsureDir(cfg.OutputFolder); err != nil {
		log.Fatalf("failed to create output folder: %v", err)
	}

	ctx := context.Background()

	var visionClient client.VisionClient
	var err error

	switch cfg.Detection.Backend {
	case "gemini":
		apiKey, keyErr := config.APIKey()
		if keyErr != nil {
			log.Fatal(keyErr)
		}
		visionClient, err = gemini.NewClient(ctx, apiKey)
		if err != nil {
			log.Fatalf("failed to create Gemini client: %v", err)
		}
	case "ollama":
		url := cfg.Detection.ServerURL
		if url == "" {
			url = "http://localhost:11434"
		}
		visionClient, err = ollama.NewClient(url)
		if err != nil {
			log.Fatalf("failed to create Ollama client: %v", err)
		}
	case "llamacpp":
		visionClient, err = llamacpp.NewClient(cfg.Detection.ServerURL)
		if err != nil {
			log.Fatalf("failed to create llama.cpp client: %v", err)
		}
	}

	log.Printf("starting batch detection: input=%q output=%q model=%s",
		cfg.InputFolder, cfg.OutputFolder, cfg.Detection.Model)

	detector := detection.NewDetector(visionClient, cfg)
	if err := detector.Run(ctx); err != nil {
		log.Fatal(err)
	}

	log.Printf("batch processing complete")
}
