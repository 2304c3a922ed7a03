package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/titles"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <title.json> [more.json ...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		if err := validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("title file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidTitleFilename(nameWithoutExt) {
		return fmt.Errorf("title filename '%s' must be lowercase snake_case (e.g., shadow_keep.json, not shadow-keep.json or ShadowKeep.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	p, err := titles.Load(data)
	if err != nil {
		return fmt.Errorf("file %s: %w", filename, err)
	}

	cat := p.Catalog()
	def := p.Content()
	fmt.Printf("Title file is valid!\n")
	fmt.Printf("  %s (%s) v%s\n", cat.Name(), cat.ID(), cat.Version())
	fmt.Printf("  %d rooms, %d items, %d monsters across %d levels\n",
		len(def.Rooms), len(def.Items), len(def.Monsters), len(cat.Levels()))
	return nil
}

func isValidTitleFilename(name string) bool {
	matched, _ := regexp.MatchString(`^[a-z][a-z0-9_]*$`, name)
	return matched
}
