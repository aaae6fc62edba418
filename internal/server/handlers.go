package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ChicagoDave/greenbuild/pkg/catalog"
	"github.com/ChicagoDave/greenbuild/pkg/chart"
	"github.com/ChicagoDave/greenbuild/pkg/design"
	"github.com/ChicagoDave/greenbuild/pkg/metrics"
	"github.com/ChicagoDave/greenbuild/pkg/report"
	"github.com/ChicagoDave/greenbuild/pkg/scene"
	"github.com/ChicagoDave/greenbuild/pkg/solar"
	"github.com/ChicagoDave/greenbuild/pkg/validation"
)

const maxBodyBytes = 1 << 20

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Error: &apiError{Code: code, Message: message},
	})
}

// Snapshot is everything a client needs to render one configuration.
// Metrics, charts and scene are absent when the configuration is invalid.
type Snapshot struct {
	Configuration design.Configuration `json:"configuration"`
	Validation    *validation.Report   `json:"validation"`
	Metrics       *metrics.Metrics     `json:"metrics,omitempty"`
	Charts        *chart.Charts        `json:"charts,omitempty"`
	Scene         *scene.Graph         `json:"scene,omitempty"`
}

// part selects optional snapshot sections.
type part uint8

const (
	partCharts part = 1 << iota
	partScene

	partAll = partCharts | partScene
)

// snapshot validates and computes c, recording the outcome.
func (s *Server) snapshot(c design.Configuration, parts part) Snapshot {
	m, rep := metrics.Resolve(s.catalog, c)
	snap := Snapshot{Configuration: c, Validation: rep, Metrics: m}
	if m == nil {
		for _, e := range rep.Errors {
			s.recorder.ObserveValidationFailure(e.Field)
		}
		return snap
	}

	s.recorder.ObserveComputation(c.Archetype)
	if parts&partCharts != 0 {
		charts := chart.Build(*m)
		snap.Charts = &charts
	}
	if parts&partScene != 0 {
		snap.Scene = scene.Assemble(s.catalog, c)
	}
	return snap
}

// decodeConfiguration reads a JSON configuration. Omitted fields keep
// their defaults and an empty body is the default design.
func decodeConfiguration(w http.ResponseWriter, r *http.Request) (design.Configuration, error) {
	c := design.Default()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("decoding configuration: %w", err)
	}
	return c, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

type catalogResponse struct {
	Archetypes   []catalog.Archetype  `json:"archetypes"`
	Technologies []catalog.Technology `json:"technologies"`
	Renewables   []catalog.Renewable  `json:"renewables"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, catalogResponse{
		Archetypes:   s.catalog.Archetypes(),
		Technologies: s.catalog.Technologies(),
		Renewables:   s.catalog.Renewables(),
	})
}

type solarResponse struct {
	Orientation float64           `json:"orientation"`
	Gain        int               `json:"gain"`
	Label       solar.Direction   `json:"label"`
	Indicators  []solar.Indicator `json:"indicators"`
}

func (s *Server) handleSolar(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("orientation")
	if raw == "" {
		raw = "0"
	}
	o, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_orientation", "orientation must be a number of degrees")
		return
	}
	o = design.NormalizeOrientation(o)

	respondJSON(w, http.StatusOK, solarResponse{
		Orientation: o,
		Gain:        solar.Gain(o),
		Label:       solar.Label(o),
		Indicators:  solar.Indicators(o),
	})
}

// writeSnapshot answers 200 for a valid configuration, 422 otherwise.
func writeSnapshot(w http.ResponseWriter, snap Snapshot) {
	status := http.StatusOK
	if !snap.Validation.Valid {
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, status, snap)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	c, err := decodeConfiguration(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	writeSnapshot(w, s.snapshot(c, 0))
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	c, err := decodeConfiguration(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	writeSnapshot(w, s.snapshot(c, partCharts))
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	c, err := decodeConfiguration(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	snap := s.snapshot(c, partScene)
	if snap.Scene != nil {
		snap.Validation.Merge(scene.ValidateGraph(snap.Scene))
	}
	writeSnapshot(w, snap)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_format", err.Error())
		return
	}
	c, err := decodeConfiguration(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	snap := s.snapshot(c, 0)
	if snap.Metrics == nil {
		writeSnapshot(w, snap)
		return
	}

	rep := report.Build(s.catalog, c, *snap.Metrics)
	data, err := report.Render(rep, format)
	s.recorder.ObserveExport(string(format), err)
	if err != nil {
		s.logger.Error().Err(err).Str("format", string(format)).Msg("export failed")
		respondError(w, http.StatusInternalServerError, "export_failed", "could not render report")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="greenbuild-%s.%s"`, rep.ID, format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
