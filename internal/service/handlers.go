package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/domgen/internal/errors"
	"github.com/vango-dev/domgen/pkg/compile"
)

// Response is the JSON reply for failed compiles and for every stream
// message.
type Response struct {
	File   string          `json:"file,omitempty"`
	Source string          `json:"source,omitempty"`
	Error  string          `json:"error,omitempty"`
	Codes  []string        `json:"codes,omitempty"`
	Errors []errors.Report `json:"errors,omitempty"`
}

func errorResponse(file string, err error) Response {
	return Response{
		File:   file,
		Error:  err.Error(),
		Codes:  errors.Codes(err),
		Errors: errors.Reports(err),
	}
}

// compilerFor applies query overrides to a copy of the service config.
func (s *Service) compilerFor(query url.Values) (*compile.Compiler, error) {
	if len(query) == 0 {
		return s.compiler(s.cfg)
	}
	overrides := make(map[string]string, len(query))
	for k, v := range query {
		overrides[k] = v[len(v)-1]
	}

	cfg := *s.cfg
	if err := cfg.Apply(overrides); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return s.compiler(&cfg)
}

func (s *Service) handleCompile(w http.ResponseWriter, r *http.Request) {
	c, err := s.compilerFor(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("", err))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Serve.MaxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, Response{Error: err.Error()})
		return
	}

	resp, status := s.compileDocument(r, c, data)
	if status != http.StatusOK {
		writeJSON(w, status, resp)
		return
	}
	w.Header().Set("Content-Type", "text/x-go; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, resp.Source)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	c, err := s.compilerFor(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("", err))
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.cfg.Serve.MaxBodyBytes)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("stream closed", "error", err)
			}
			return
		}
		resp, _ := s.compileDocument(r, c, data)
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Debug("stream write failed", "error", err)
			return
		}
	}
}

// compileDocument decodes and compiles one document. The status is the HTTP
// status a one-shot request should answer with.
func (s *Service) compileDocument(r *http.Request, c *compile.Compiler, data []byte) (Response, int) {
	doc, err := compile.ParseDocument(data)
	if err != nil {
		return errorResponse("", err), http.StatusBadRequest
	}
	out, err := c.Compile(r.Context(), doc)
	if err != nil {
		s.logger.Info("compile failed", "file", doc.File, "codes", errors.Codes(err))
		return errorResponse(doc.File, err), http.StatusUnprocessableEntity
	}
	return Response{File: doc.File, Source: string(out)}, http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
