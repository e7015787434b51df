package http

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/km-arc/go-forms/http/validation"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with JSON and error-bag helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// Raw returns the underlying ResponseWriter.
func (res *Response) Raw() http.ResponseWriter { return res.w }

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// Created sends 201 JSON: {"data": v}
func (res *Response) Created(v any) {
	res.JSON(http.StatusCreated, envelope{"data": v})
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusBadRequest, "bad input")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	res.Error(http.StatusNotFound, first(message, "Not found."))
}

// ValidationError sends 422 with the error bag:
// {"errors": {"birthday[_Day]": ["Day invalid"]}}
func (res *Response) ValidationError(errors *validation.Errors) {
	res.JSON(http.StatusUnprocessableEntity, errors)
}

// ── View / Templates ─────────────────────────────────────────────────────────

// ViewEngine renders html/template files from a directory.
type ViewEngine struct {
	dir    string
	ext    string
	logger *slog.Logger
}

// NewViewEngine creates a ViewEngine.
// dir is the templates directory (e.g. "./views"), ext is the file extension (e.g. ".html").
// A nil logger discards render failures.
func NewViewEngine(dir, ext string, logger *slog.Logger) *ViewEngine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ViewEngine{dir: dir, ext: ext, logger: logger}
}

// View renders a template with status 200.
//
//	engine.View(w, "profile", data)
func (ve *ViewEngine) View(w http.ResponseWriter, name string, data any) {
	ve.ViewStatus(w, http.StatusOK, name, data)
}

// ViewStatus renders a template with the given status, e.g. 422 for a form
// shown again with its messages. The template is executed before anything is
// written so a render failure still yields a clean 500.
func (ve *ViewEngine) ViewStatus(w http.ResponseWriter, status int, name string, data any) {
	path := filepath.Join(ve.dir, name+ve.ext)
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		ve.logger.Error("template not found", "view", name, "error", err)
		http.Error(w, "Template not found: "+name, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		ve.logger.Error("template render failed", "view", name, "error", err)
		http.Error(w, "Template render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
