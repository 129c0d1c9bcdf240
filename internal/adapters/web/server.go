// Package web serves the candidate-engine JSON API over HTTP.
// Binds to localhost only — no network exposure, no auth needed.
package web

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/cors"

	"github.com/corey/termo/internal/app"
	"github.com/corey/termo/internal/domain/colloc"
	"github.com/corey/termo/internal/ports"
)

// Server serves the JSON API over HTTP.
type Server struct {
	app      *app.App
	listener net.Listener
	httpSrv  *http.Server
	port     int
	started  time.Time
	stopOnce sync.Once

	portFilePath string // .termo/http.port
}

// NewServer creates an HTTP server over the wired application.
// The portFilePath is where the bound port is written for discovery.
func NewServer(a *app.App, portFilePath string) *Server {
	return &Server{
		app:          a,
		portFilePath: portFilePath,
	}
}

// DefaultPort computes a project-specific port: 21000 + (hash(abs_path) % 1000).
func DefaultPort(projectRoot string) int {
	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		abs = projectRoot
	}
	h := sha256.Sum256([]byte(abs))
	// Use first 4 bytes as uint32
	n := uint32(h[0])<<24 | uint32(h[1])<<16 | uint32(h[2])<<8 | uint32(h[3])
	return 21000 + int(n%1000)
}

// Start begins listening on the preferred port. Writes the port to
// .termo/http.port.
func (s *Server) Start(preferredPort int) error {
	addr := fmt.Sprintf("127.0.0.1:%d", preferredPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.port = ln.Addr().(*net.TCPAddr).Port
	s.started = time.Now()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/tag", s.handleTag)
	mux.HandleFunc("POST /api/identical", s.handleIdentical)
	mux.HandleFunc("POST /api/dedup", s.handleDedup)
	mux.HandleFunc("POST /api/normal-form", s.handleNormalForm)
	mux.HandleFunc("POST /api/scan", s.handleScan)

	s.httpSrv = &http.Server{Handler: cors.Default().Handler(mux)}

	// Write port file for discovery
	if s.portFilePath != "" {
		if err := os.WriteFile(s.portFilePath, []byte(fmt.Sprintf("%d", s.port)), 0644); err != nil {
			log.Printf("port file %s: %v", s.portFilePath, err)
		}
	}

	go s.httpSrv.Serve(ln)
	return nil
}

// Stop gracefully shuts down the HTTP server. Idempotent.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.httpSrv.Shutdown(ctx)
		}
		if s.portFilePath != "" {
			os.Remove(s.portFilePath)
		}
	})
}

// Port returns the bound port number.
func (s *Server) Port() int {
	return s.port
}

// URL returns the API base URL.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request body: %w", err))
		return false
	}
	return true
}

func diagStrings(diags []colloc.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.String()
	}
	return out
}

// HealthResult is the /api/health response.
type HealthResult struct {
	Status      string `json:"status"`
	LexiconSize int    `json:"lexicon_size"`
	Uptime      string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResult{
		Status:      "ok",
		LexiconSize: s.app.Lexicon.Len(),
		Uptime:      time.Since(s.started).Round(time.Second).String(),
	})
}

// TagToken is one element of the /api/tag response: either a tagged word
// or a separator.
type TagToken struct {
	Word      string `json:"word,omitempty"`
	POS       string `json:"pos,omitempty"`
	Case      string `json:"case,omitempty"`
	Lemma     string `json:"lemma,omitempty"`
	Separator string `json:"separator,omitempty"`
}

func (s *Server) handleTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phrase string `json:"phrase"`
	}
	if !decode(w, r, &req) {
		return
	}

	tokens, err := s.app.Tagger.TagPhrase(req.Phrase)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	out := make([]TagToken, 0, len(tokens))
	for _, t := range tokens {
		switch v := t.(type) {
		case ports.TaggedWord:
			out = append(out, TagToken{
				Word:  v.Word,
				POS:   v.POS.String(),
				Case:  v.Case.String(),
				Lemma: v.Normalized,
			})
		case ports.Separator:
			out = append(out, TagToken{Separator: string(v.Symbol)})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tokens": out})
}

func (s *Server) handleIdentical(w http.ResponseWriter, r *http.Request) {
	var req struct {
		First  string `json:"first"`
		Second string `json:"second"`
	}
	if !decode(w, r, &req) {
		return
	}

	identical, err := colloc.Identical(s.app.Tagger, req.First, req.Second)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"identical": identical})
}

func (s *Server) handleDedup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Corpus string `json:"corpus"`
		Phrase string `json:"phrase"`
	}
	if !decode(w, r, &req) {
		return
	}

	result, err := s.app.Dedup(req.Corpus, req.Phrase)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"matches":     result.Matches,
		"count":       len(result.Matches),
		"diagnostics": diagStrings(result.Diagnostics),
	})
}

func (s *Server) handleNormalForm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Corpus string `json:"corpus"`
		IDs    []int  `json:"ids,omitempty"`
	}
	if !decode(w, r, &req) {
		return
	}

	if len(req.IDs) > 0 {
		result, err := s.app.Resolve(req.Corpus, req.IDs...)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"results": []app.ResolveResult{*result}})
		return
	}

	results, diags, err := s.app.ResolveAll(req.Corpus)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results":     results,
		"diagnostics": diagStrings(diags),
	})
}

// ScanHit mirrors app.ScanHit with flattened JSON field names.
type ScanHit struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Count int    `json:"count"`
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Corpus string `json:"corpus"`
		Text   string `json:"text"`
		Update bool   `json:"update,omitempty"`
	}
	if !decode(w, r, &req) {
		return
	}

	hits, err := s.app.Scan(req.Corpus, req.Text, req.Update)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	out := make([]ScanHit, 0, len(hits))
	for _, h := range hits {
		out = append(out, ScanHit{ID: h.Candidate.ID, Text: h.Candidate.Text, Count: h.Count})
	}
	writeJSON(w, http.StatusOK, map[string]any{"hits": out})
}
