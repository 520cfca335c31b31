// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package remote

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	paint "github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/compositor"
)

// MaxRequestBytes bounds the body of a composite request.
const MaxRequestBytes = 32 << 20

// shapeLister is implemented by compositors that know their shape tags,
// such as *compositor.Raster.
type shapeLister interface {
	Shapes() []string
}

type handler struct {
	comp compositor.Compositor
}

// NewHandler returns an http.Handler serving comp over the wire format
// described in the package documentation.
func NewHandler(comp compositor.Compositor) http.Handler {
	h := &handler{comp: comp}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(MaxRequestBytes))

	r.Get(HealthPath, h.handleHealth)
	r.Get(ShapesPath, h.handleShapes)
	r.Post(CompositePath, h.handleComposite)
	return r
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) handleShapes(w http.ResponseWriter, _ *http.Request) {
	var shapes []string
	if l, ok := h.comp.(shapeLister); ok {
		shapes = l.Shapes()
	} else {
		shapes = compositor.Shapes()
	}
	writeJSON(w, http.StatusOK, shapesResponse{Shapes: shapes})
}

func (h *handler) handleComposite(w http.ResponseWriter, r *http.Request) {
	log := paint.ComponentLogger("remote").With("request_id", middleware.GetReqID(r.Context()))

	var body compositeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Debug("composite: bad request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: kindBadRequest})
		return
	}

	req, err := body.decode()
	if err == nil {
		var out paint.Snapshot
		out, err = h.comp.Composite(r.Context(), req)
		if err == nil {
			log.Debug("composite", "shape", req.Shape, "bytes", out.Len())
			writeJSON(w, http.StatusOK, compositeResponse{Image: out.DataURL()})
			return
		}
	}

	var re *compositor.RenderError
	if errors.As(err, &re) {
		log.Debug("composite: render failed", "shape", re.Shape, "kind", re.Kind(), "error", re.Err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: re.Err.Error(), Kind: re.Kind()})
		return
	}

	log.Warn("composite: failed", "shape", body.Shape, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Kind: "internal"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
