package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/user/raycast/pkg/core"
	"github.com/user/raycast/pkg/renderer"
	"github.com/user/raycast/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default'")
	width := flag.Int("width", 300, "Horizontal sample count")
	height := flag.Int("height", 300, "Vertical sample count")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Raycast")
		fmt.Println("Usage: raycast [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	selectedScene, err := buildScene(*sceneType)
	if err != nil {
		fmt.Printf("Error building scene %q: %v\n", *sceneType, err)
		os.Exit(1)
	}
	fmt.Println(selectedScene)

	camera, err := renderer.NewCamera(renderer.CameraConfig{
		WidthRay:    core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(2, 0, -3)),
		HeightRay:   core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 2, -3)),
		Distance:    -4,
		Cols:        *width,
		Rows:        *height,
		PlaneWidth:  5,
		PlaneHeight: 5,
	})
	if err != nil {
		fmt.Printf("Error building camera: %v\n", err)
		os.Exit(1)
	}

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %dx%d...\n", *width, *height)
	startTime := time.Now()
	img := renderer.NewRenderer(selectedScene, camera).Render()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func buildScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene()
	default:
		return nil, fmt.Errorf("unknown scene type")
	}
}
