package main

import (
	"log"

	"github.com/yingzhe/fishdetect/internal/config"
	"github.com/yingzhe/fishdetect/internal/utils"
	"github.com/yingzhe/fishdetect/pkg/export"
)

// Runs with no arguments: convert every persisted detection file into a
// Label Studio task referencing the cloud-stored image and write them all
// as one import file.
func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if !utils.DirExists(cfg.OutputFolder) {
		log.Fatalf("detection output folder %q not found; run fish-detect first", cfg.OutputFolder)
	}

	log.Printf("starting conversion from %q for gs://%s/%s",
		cfg.OutputFolder, cfg.Bucket.Name, cfg.Bucket.Prefix)

	converter := export.NewConverter(cfg)
	if err := converter.Run(); err != nil {
		log.Fatal(err)
	}
}
