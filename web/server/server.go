package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/user/raycast/pkg/core"
	"github.com/user/raycast/pkg/renderer"
	"github.com/user/raycast/pkg/scene"
)

// Server handles web requests for preview renders
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string // Scene name (e.g., "default")
	Width  int    // Horizontal sample count
	Height int    // Vertical sample count
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders the requested scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		http.Error(w, "Unknown scene: "+req.Scene, http.StatusBadRequest)
		return
	}

	camera, err := renderer.NewCamera(renderer.CameraConfig{
		WidthRay:    core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(2, 0, -3)),
		HeightRay:   core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 2, -3)),
		Distance:    -4,
		Cols:        req.Width,
		Rows:        req.Height,
		PlaneWidth:  5,
		PlaneHeight: 5,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Camera error: %v", err), http.StatusInternalServerError)
		return
	}

	startTime := time.Now()
	img := renderer.NewRenderer(sceneObj, camera).Render()
	log.Printf("Rendered %s %dx%d in %v", req.Scene, req.Width, req.Height, time.Since(startTime))

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding PNG: %v", err)
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if name := r.URL.Query().Get("scene"); name != "" {
		req.Scene = name
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 300, 2, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 300, 2, 2000); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene creates a scene based on the scene name
func (s *Server) createScene(sceneName string) (*scene.Scene, error) {
	switch sceneName {
	case "default":
		return scene.NewDefaultScene()
	default:
		return nil, fmt.Errorf("unknown scene %q", sceneName)
	}
}
