// Package daemon exposes the persona engine over JSON-RPC 2.0 on a
// unix domain socket. The daemon is a thin dispatch layer: every method
// maps directly onto a store, validator or composer call.
package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"sona/src/composer"
	"sona/src/config"
	"sona/src/database"
	serrors "sona/src/errors"
	"sona/src/store"
	"sona/src/validate"
)

type Server struct {
	settings  *config.Settings
	store     *store.Store
	composer  *composer.Composer
	validator *validate.Validator
	history   *database.HistoryDB

	listener   net.Listener
	server     *http.Server
	socketPath string
}

type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      interface{}     `json:"id"`
}

type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RPCError   `json:"error,omitempty"`
	ID      interface{} `json:"id"`
}

type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return e.Message
}

// NewServer creates a daemon wired to the configured persona directory
func NewServer(settings *config.Settings) (*Server, error) {
	history, err := database.NewHistoryDB(settings.HistoryDB)
	if err != nil {
		// History is side data; the CRUD surface stays usable without it
		log.Printf("Warning: render history unavailable: %v", err)
		history = nil
	}

	return &Server{
		settings:   settings,
		store:      store.New(settings.PersonasDir),
		composer:   composer.New(settings.ContextMap()),
		validator:  validate.New(settings.Allowlist()),
		history:    history,
		socketPath: config.SocketPath(),
	}, nil
}

// Start begins listening for JSON-RPC requests
func (s *Server) Start() error {
	// Remove old socket if exists
	os.Remove(s.socketPath)

	if err := config.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0660); err != nil {
		listener.Close()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/rpc", s.handleRPC)

	s.server = &http.Server{Handler: mux}

	log.Printf("Daemon listening on %s", s.socketPath)
	if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down and removes the socket
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	if s.history != nil {
		s.history.Close()
	}
	os.Remove(s.socketPath)
	return nil
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req JSONRPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, JSONRPCResponse{
			JSONRPC: "2.0",
			Error:   &RPCError{Code: -32700, Message: "Parse error"},
		})
		return
	}

	result, err := s.routeMethod(req.Method, req.Params)

	resp := JSONRPCResponse{JSONRPC: "2.0", ID: req.ID}
	if err != nil {
		resp.Error = toRPCError(err)
	} else {
		resp.Result = result
	}
	writeResponse(w, resp)
}

func writeResponse(w http.ResponseWriter, resp JSONRPCResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// toRPCError maps engine errors onto JSON-RPC error codes
func toRPCError(err error) *RPCError {
	if rpcErr, ok := err.(*RPCError); ok {
		return rpcErr
	}
	code := -32000
	switch {
	case serrors.IsNotFound(err):
		code = -32001
	case serrors.IsInvalidCategory(err):
		code = -32002
	case serrors.IsCorrupt(err):
		code = -32003
	}
	return &RPCError{Code: code, Message: err.Error()}
}
