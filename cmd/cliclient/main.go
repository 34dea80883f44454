// cliclient asks the render server for a BMP of a scene and saves it to disk.
//
// Usage: cliclient [scene.yaml]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/marben/mandel_bmp/internal/scene"
	"github.com/marben/mandel_bmp/internal/wsrender"
)

const serverURL = "ws://localhost:8080/ws"

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run loads the scene, requests the render and writes <output>.bmp.
func run() error {
	// Step 1: Load the scene, or fall back to the defaults
	sc := scene.Default()
	if len(os.Args) > 1 {
		loaded, err := scene.Load(os.Args[1])
		if err != nil {
			return fmt.Errorf("failed to load scene: %w", err)
		}
		sc = loaded
	}

	// Step 2: Request the rendered image from the server
	log.Printf("Requesting %dpx wide render from %s...", sc.Width, serverURL)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	b, err := wsrender.Render(ctx, serverURL, sc)
	if err != nil {
		return fmt.Errorf("wsrender.Render: %w", err)
	}

	// Step 3: Save the BMP bytes as they came
	filename := sc.Output + ".bmp"
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	log.Printf("Rendered image saved to %q (%d bytes)", filename, len(b))
	return nil
}
