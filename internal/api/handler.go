package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/safeop/pkg/httpserver"
	"github.com/dmitrymomot/safeop/pkg/logger"
	"github.com/dmitrymomot/safeop/pkg/numeric"
	"github.com/dmitrymomot/safeop/pkg/profile"
	"github.com/dmitrymomot/safeop/pkg/text"
)

// Option configures the API.
type Option func(*Handler)

// WithProfiles sets the validation profiles selectable by name.
func WithProfiles(reg *profile.Registry) Option {
	return func(h *Handler) { h.profiles = reg }
}

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// Handler serves the operation catalogs over HTTP.
type Handler struct {
	profiles *profile.Registry
	log      *slog.Logger
	numeric  map[string]numericOp
	text     map[string]textOp
}

// New builds the API handler.
func New(opts ...Option) *Handler {
	h := &Handler{
		log:     logger.Noop(),
		numeric: numericCatalog(),
		text:    textCatalog(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router mounts the API routes:
//
//	GET  /healthz
//	GET  /v1/operations
//	POST /v1/numeric/{op}
//	POST /v1/text/{op}
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID, requestLogger(h.log))

	r.Get("/healthz", httpserver.HealthCheckHandler(h.log))
	r.Route("/v1", func(v1 chi.Router) {
		v1.Get("/operations", h.listOperations)
		v1.Post("/numeric/{op}", h.callNumeric)
		v1.Post("/text/{op}", h.callText)
	})
	return r
}

func (h *Handler) listOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Envelope{Data: map[string][]string{
		"numeric": sortedNames(h.numeric),
		"text":    sortedNames(h.text),
	}})
}

func (h *Handler) callNumeric(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "op")
	entry, ok := h.numeric[name]
	if !ok {
		writeError(w, fmt.Errorf("%w: numeric.%s", ErrUnknownOperation, name))
		return
	}
	serve(h, w, r, "numeric."+name, entry, func(p profile.Profile) numeric.Override { return p.Numeric })
}

func (h *Handler) callText(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "op")
	entry, ok := h.text[name]
	if !ok {
		writeError(w, fmt.Errorf("%w: text.%s", ErrUnknownOperation, name))
		return
	}
	serve(h, w, r, "text."+name, entry, func(p profile.Profile) text.Override { return p.Text })
}

// serve binds the request, layers the profile under the per-call config and
// runs the operation. Whatever the Outcome, the status is 200.
func serve[O any](h *Handler, w http.ResponseWriter, r *http.Request, name string, entry op[O], fromProfile func(profile.Profile) O) {
	req, err := bindRequest(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(req.Args) > entry.params {
		writeError(w, fmt.Errorf("%w: %s takes at most %d, got %d", ErrTooManyArguments, name, entry.params, len(req.Args)))
		return
	}

	var overrides []O
	if req.Profile != "" {
		p, ok := h.profiles.Get(req.Profile)
		if !ok {
			writeError(w, fmt.Errorf("%w: %q", ErrUnknownProfile, req.Profile))
			return
		}
		overrides = append(overrides, fromProfile(p))
	}
	var call O
	if err := decodeConfig(req.Config, &call); err != nil {
		writeError(w, err)
		return
	}
	overrides = append(overrides, call)

	args := make([]any, entry.params)
	copy(args, req.Args)

	out := entry.call(args, overrides)
	if out.Failed() {
		h.log.DebugContext(r.Context(), "operation failed", logger.Operation(name), logger.Failure(out.Failure()))
	}
	writeJSON(w, http.StatusOK, Envelope{
		Data: out,
		Meta: map[string]any{"operation": name},
	})
}
