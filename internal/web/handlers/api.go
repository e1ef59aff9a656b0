// Package handlers implements the resolver HTTP API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/addresspin/internal/gazetteer"
	"github.com/addresspin/internal/geo"
	"github.com/addresspin/internal/metrics"
	"github.com/addresspin/internal/pipeline"
)

// maxBatchSize bounds one batch request.
const maxBatchSize = 500

// APIHandler handles address analysis endpoints.
type APIHandler struct {
	Pipeline *pipeline.Pipeline
	Metrics  *metrics.Metrics
	Log      *zap.Logger
}

// AnalyzeRequest is the body of POST /api/analyze. The optional
// overrides pass through to the pipeline's scoring stage.
type AnalyzeRequest struct {
	Address string `json:"address"`
	City    string `json:"city,omitempty"`

	NLPConfidence *float64 `json:"nlp_confidence,omitempty"`
	DensityScore  *float64 `json:"density_score,omitempty"`
}

func (r AnalyzeRequest) toPipeline() pipeline.Request {
	return pipeline.Request{
		Address:       r.Address,
		City:          r.City,
		NLPConfidence: r.NLPConfidence,
		DensityScore:  r.DensityScore,
	}
}

// BatchRequest is the body of POST /api/analyze/batch.
type BatchRequest struct {
	Addresses   []AnalyzeRequest `json:"addresses"`
	DefaultCity string           `json:"default_city,omitempty"`
}

// BatchResponse wraps batch results.
type BatchResponse struct {
	Results []pipeline.Result `json:"results"`
	Count   int               `json:"count"`
}

// Analyze resolves a single address.
func (h *APIHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Address == "" {
		writeError(w, http.StatusBadRequest, "address is required")
		return
	}

	result := h.Pipeline.Process(r.Context(), req.toPipeline())
	if h.Metrics != nil {
		h.Metrics.ObserveResult(result.PredictedCoordinates.Method, result.Confidence.Score)
	}

	writeJSON(w, http.StatusOK, result)
}

// AnalyzeBatch resolves a list of addresses.
func (h *APIHandler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Addresses) == 0 {
		writeError(w, http.StatusBadRequest, "addresses is required")
		return
	}
	if len(req.Addresses) > maxBatchSize {
		writeError(w, http.StatusRequestEntityTooLarge, "batch limited to "+strconv.Itoa(maxBatchSize)+" addresses")
		return
	}

	reqs := make([]pipeline.Request, len(req.Addresses))
	for i, a := range req.Addresses {
		reqs[i] = a.toPipeline()
	}

	results := h.Pipeline.ProcessBatch(r.Context(), reqs, req.DefaultCity)
	if h.Metrics != nil {
		for _, result := range results {
			h.Metrics.ObserveResult(result.PredictedCoordinates.Method, result.Confidence.Score)
		}
	}

	writeJSON(w, http.StatusOK, BatchResponse{Results: results, Count: len(results)})
}

// GazetteerHandler serves landmark data and admin operations.
type GazetteerHandler struct {
	Store   *gazetteer.Store
	Density *geo.DensityIndex
	Metrics *metrics.Metrics
	Log     *zap.Logger

	Started time.Time
}

// LandmarksResponse lists gazetteer entries.
type LandmarksResponse struct {
	Landmarks []gazetteer.Landmark `json:"landmarks"`
	Count     int                  `json:"count"`
}

// ListLandmarks returns the current snapshot, optionally filtered by
// ?city=.
func (h *GazetteerHandler) ListLandmarks(w http.ResponseWriter, r *http.Request) {
	snapshot := h.Store.Snapshot()

	city := r.URL.Query().Get("city")
	var landmarks []gazetteer.Landmark
	if city == "" {
		landmarks = snapshot.Landmarks
	} else {
		for _, lm := range snapshot.ByCity(city) {
			landmarks = append(landmarks, *lm)
		}
	}

	writeJSON(w, http.StatusOK, LandmarksResponse{Landmarks: landmarks, Count: len(landmarks)})
}

// ListCities returns the distinct cities in the gazetteer.
func (h *GazetteerHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities := h.Store.Snapshot().Cities()
	writeJSON(w, http.StatusOK, map[string]any{
		"cities": cities,
		"count":  len(cities),
	})
}

// Reload re-reads the gazetteer source.
func (h *GazetteerHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reload(r.Context()); err != nil {
		h.Log.Error("gazetteer reload failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "reload failed: "+err.Error())
		return
	}
	snapshot := h.Store.Snapshot()
	if h.Metrics != nil {
		h.Metrics.GazetteerReloads.Inc()
		h.Metrics.GazetteerLandmarks.Set(float64(snapshot.Size()))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"landmarks": snapshot.Size(),
	})
}

// StatsResponse summarizes the running service.
type StatsResponse struct {
	Landmarks       int     `json:"landmarks"`
	Vocabulary      int     `json:"vocabulary"`
	Reloads         int64   `json:"reloads"`
	DensityCells    int     `json:"density_cells"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
	PipelineVersion string  `json:"pipeline_version"`
}

// GetStats returns service statistics.
func (h *GazetteerHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	snapshot := h.Store.Snapshot()

	stats := StatsResponse{
		Landmarks:       snapshot.Size(),
		Vocabulary:      len(snapshot.Vocabulary()),
		Reloads:         h.Store.Reloads(),
		UptimeSeconds:   time.Since(h.Started).Seconds(),
		PipelineVersion: pipeline.Version,
	}
	if h.Density != nil {
		stats.DensityCells = h.Density.Size()
	}

	writeJSON(w, http.StatusOK, stats)
}

// Health is the liveness endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
