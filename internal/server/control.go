package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playaxis/internal/playback"
)

// ControlHandler exposes the playback controller over HTTP.
//
// It drives the same [playback.Controller] the terminal UI drives; a request
// whose transition guard is not met succeeds with the unchanged status, the
// same silent-ignore semantics the transport buttons have.
type ControlHandler struct {
	controller *playback.Controller
	logger     *log.Logger
}

// NewControlHandler creates a ControlHandler for the given controller.
func NewControlHandler(controller *playback.Controller, logger *log.Logger) *ControlHandler {
	return &ControlHandler{controller: controller, logger: logger}
}

// StatusResponse is the JSON body returned by every control endpoint.
type StatusResponse struct {
	Status  string `json:"status"`
	Cursor  int    `json:"cursor"`
	Caption string `json:"caption"`
	Points  int    `json:"points"`
}

// Routes returns the path patterns this handler serves.
func (h *ControlHandler) Routes() []string {
	return []string{"/status", "/play", "/pause", "/stop", "/step"}
}

// ServeHTTP dispatches control requests to the controller.
func (h *ControlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/status":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
	default:
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
	}

	switch r.URL.Path {
	case "/status":
		// Status is read below for every endpoint.
	case "/play":
		h.controller.Play()
	case "/pause":
		h.controller.Pause()
	case "/stop":
		h.controller.Stop()
	case "/step":
		delta, err := strconv.Atoi(r.URL.Query().Get("delta"))
		if err != nil || (delta != 1 && delta != -1) {
			http.Error(w, "delta must be 1 or -1", http.StatusBadRequest)
			return
		}
		h.controller.Step(delta)
	default:
		http.NotFound(w, r)
		return
	}

	h.writeStatus(w)
}

func (h *ControlHandler) writeStatus(w http.ResponseWriter) {
	points := 0
	if vm := h.controller.ViewModel(); vm != nil {
		points = len(vm.DataPoints)
	}

	resp := StatusResponse{
		Status:  h.controller.Status().String(),
		Cursor:  h.controller.Cursor(),
		Caption: h.controller.Caption(),
		Points:  points,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Warn("failed to encode status response", "error", err)
	}
}

// NewControlServer builds the routed control API with request logging.
func NewControlServer(controller *playback.Controller, logger *log.Logger) http.Handler {
	router := NewBasicRouter()
	router.Use(RequestLogger(logger))
	router.Handler(NewControlHandler(controller, logger))
	return router
}
