// pkg/api/server.go

package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/statuskite/statuskite/pkg/agents"
	"github.com/statuskite/statuskite/pkg/db"
	"github.com/statuskite/statuskite/pkg/metrics"
	"github.com/statuskite/statuskite/pkg/models"
	"github.com/statuskite/statuskite/pkg/scheduler"
	"github.com/statuskite/statuskite/pkg/status"
)

const defaultChecksLimit = 50

// Server is the HTTP surface: the public status page feed, the agent
// push endpoints and the JWT-guarded admin API.
type Server struct {
	router     *mux.Router
	database   db.Service
	tracker    *agents.Tracker
	aggregator *status.Aggregator
	trigger    CheckTrigger
	collector  metrics.MetricCollector
	hub        *Hub
	auth       *authenticator
	ownerID    int64
}

func NewServer(database db.Service, tracker *agents.Tracker, aggregator *status.Aggregator,
	trigger CheckTrigger, collector metrics.MetricCollector, hub *Hub, authCfg AuthConfig) *Server {
	s := &Server{
		router:     mux.NewRouter(),
		database:   database,
		tracker:    tracker,
		aggregator: aggregator,
		trigger:    trigger,
		collector:  collector,
		hub:        hub,
		auth:       &authenticator{config: authCfg},
		ownerID:    1,
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Add CORS middleware
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Agent-Token")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Public endpoints
	s.router.HandleFunc("/api/status", s.getStatusPage).Methods("GET")
	s.router.HandleFunc("/api/auth/login", s.login).Methods("POST")

	if s.hub != nil {
		s.router.Handle("/api/ws", s.hub).Methods("GET")
	}

	// Agent push endpoints, authenticated by agent token
	s.router.HandleFunc("/api/agents/status", s.agentReport).Methods("POST")
	s.router.HandleFunc("/api/agents/register", s.agentRegister).Methods("POST")

	// Admin endpoints
	s.router.HandleFunc("/api/monitors", s.auth.requireAuth(s.getMonitors)).Methods("GET")
	s.router.HandleFunc("/api/monitors/{id}", s.auth.requireAuth(s.getMonitor)).Methods("GET")
	s.router.HandleFunc("/api/monitors/{id}/checks", s.auth.requireAuth(s.getMonitorChecks)).Methods("GET")
	s.router.HandleFunc("/api/monitors/{id}/transitions", s.auth.requireAuth(s.getMonitorTransitions)).Methods("GET")
	s.router.HandleFunc("/api/monitors/{id}/metrics", s.auth.requireAuth(s.getMonitorMetrics)).Methods("GET")
	s.router.HandleFunc("/api/monitors/{id}/check", s.auth.requireAuth(s.triggerMonitorCheck)).Methods("POST")
	s.router.HandleFunc("/api/trigger-check", s.auth.requireAuth(s.triggerAllChecks)).Methods("POST")
	s.router.HandleFunc("/api/agents", s.auth.requireAuth(s.getAgents)).Methods("GET")
	s.router.HandleFunc("/api/agents/{id}", s.auth.requireAuth(s.getAgent)).Methods("GET")
	s.router.HandleFunc("/api/agents/{id}/token", s.auth.requireAuth(s.rotateAgentToken)).Methods("POST")
	s.router.HandleFunc("/api/status-page/config", s.auth.requireAuth(s.getStatusPageConfig)).Methods("GET")
	s.router.HandleFunc("/api/status-page/config", s.auth.requireAuth(s.saveStatusPageConfig)).Methods("PUT")
}

// Router exposes the handler for embedding in an http.Server.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start(addr string) error {
	log.Printf("API server listening on %s", addr)

	return http.ListenAndServe(addr, s.router)
}

func (s *Server) getStatusPage(w http.ResponseWriter, _ *http.Request) {
	view, err := s.aggregator.BuildView(s.ownerID)
	if err != nil {
		log.Printf("Error building status page view: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !s.auth.checkCredentials(req.Username, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.auth.issueToken(req.Username, time.Now())
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

// agentReport accepts a resource snapshot pushed by an agent. Unknown
// tokens get 404 and are never auto-registered.
func (s *Server) agentReport(w http.ResponseWriter, r *http.Request) {
	token := agentToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing agent token")
		return
	}

	var snapshot models.AgentSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	agent, err := s.tracker.RecordReport(token, &snapshot)
	if errors.Is(err, db.ErrAgentNotFound) {
		writeError(w, http.StatusNotFound, "agent not found")
		return
	}

	if err != nil {
		log.Printf("Error recording agent report: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, agent)
}

func (s *Server) agentRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Token == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "token and name are required")
		return
	}

	agent, created, err := s.tracker.Register(req.Token, req.Name, s.ownerID)
	if err != nil {
		log.Printf("Error registering agent: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}

	writeJSON(w, code, registerResponse{Agent: agent, Created: created})
}

func (s *Server) getMonitors(w http.ResponseWriter, _ *http.Request) {
	monitors, err := s.database.ListMonitors()
	if err != nil {
		log.Printf("Error listing monitors: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, monitors)
}

func (s *Server) getMonitor(w http.ResponseWriter, r *http.Request) {
	monitor, ok := s.monitorFromPath(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, monitor)
}

func (s *Server) getMonitorChecks(w http.ResponseWriter, r *http.Request) {
	monitor, ok := s.monitorFromPath(w, r)
	if !ok {
		return
	}

	checks, err := s.database.RecentChecks(monitor.ID, queryLimit(r))
	if err != nil {
		log.Printf("Error listing checks for monitor %d: %v", monitor.ID, err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, checks)
}

func (s *Server) getMonitorTransitions(w http.ResponseWriter, r *http.Request) {
	monitor, ok := s.monitorFromPath(w, r)
	if !ok {
		return
	}

	transitions, err := s.database.RecentTransitions(monitor.ID, queryLimit(r))
	if err != nil {
		log.Printf("Error listing transitions for monitor %d: %v", monitor.ID, err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, transitions)
}

func (s *Server) getMonitorMetrics(w http.ResponseWriter, r *http.Request) {
	monitor, ok := s.monitorFromPath(w, r)
	if !ok {
		return
	}

	if s.collector == nil {
		writeJSON(w, http.StatusOK, []models.MetricPoint{})
		return
	}

	points := s.collector.GetMetrics(monitor.ID)
	if points == nil {
		points = []models.MetricPoint{}
	}

	writeJSON(w, http.StatusOK, points)
}

func (s *Server) triggerMonitorCheck(w http.ResponseWriter, r *http.Request) {
	monitor, ok := s.monitorFromPath(w, r)
	if !ok {
		return
	}

	transition, err := s.trigger.CheckNow(r.Context(), monitor)
	if errors.Is(err, scheduler.ErrCheckInFlight) {
		writeError(w, http.StatusConflict, "check already in flight")
		return
	}

	if err != nil {
		log.Printf("Error checking monitor %d: %v", monitor.ID, err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, checkResponse{Monitor: monitor, Transition: transition})
}

func (s *Server) triggerAllChecks(w http.ResponseWriter, r *http.Request) {
	if err := s.trigger.RunTick(r.Context()); err != nil {
		log.Printf("Error running check cycle: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) getAgents(w http.ResponseWriter, _ *http.Request) {
	list, err := s.database.ListAgents()
	if err != nil {
		log.Printf("Error listing agents: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) getAgent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	agent, err := s.database.GetAgent(id)
	if errors.Is(err, db.ErrAgentNotFound) {
		writeError(w, http.StatusNotFound, "agent not found")
		return
	}

	if err != nil {
		log.Printf("Error getting agent %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, agent)
}

func (s *Server) rotateAgentToken(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	token, err := s.tracker.RotateToken(id)
	if errors.Is(err, db.ErrAgentNotFound) {
		writeError(w, http.StatusNotFound, "agent not found")
		return
	}

	if err != nil {
		log.Printf("Error rotating token for agent %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) getStatusPageConfig(w http.ResponseWriter, _ *http.Request) {
	cfg, err := s.database.GetStatusPageConfig(s.ownerID)
	if errors.Is(err, db.ErrConfigNotFound) {
		writeError(w, http.StatusNotFound, "status page config not found")
		return
	}

	if err != nil {
		log.Printf("Error getting status page config: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) saveStatusPageConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.StatusPageConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg.OwnerID = s.ownerID

	if err := s.database.SaveStatusPageConfig(&cfg); err != nil {
		log.Printf("Error saving status page config: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) monitorFromPath(w http.ResponseWriter, r *http.Request) (*models.Monitor, bool) {
	id, ok := pathID(w, r)
	if !ok {
		return nil, false
	}

	monitor, err := s.database.GetMonitor(id)
	if errors.Is(err, db.ErrMonitorNotFound) {
		writeError(w, http.StatusNotFound, "monitor not found")
		return nil, false
	}

	if err != nil {
		log.Printf("Error getting monitor %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal server error")

		return nil, false
	}

	return monitor, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}

	return id, true
}

func queryLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultChecksLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultChecksLimit
	}

	return limit
}

func agentToken(r *http.Request) string {
	if token := r.Header.Get("X-Agent-Token"); token != "" {
		return token
	}

	// Agents may also present the token as a bearer credential.
	header := r.Header.Get("Authorization")
	if token, ok := cutBearer(header); ok {
		return token
	}

	return ""
}

func cutBearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):], true
	}

	return "", false
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{Error: message})
}
