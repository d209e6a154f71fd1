// Package crm serves an in-memory CRM backend over httptest for tests.
// It speaks the same routes and JSON shapes as the real backend.
package crm

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/thenoetrevino/funil/internal/models"
)

// signingKey signs the tokens issued by the fake login route
var signingKey = []byte("crm-test-signing-key")

// Request records one call received by the server
type Request struct {
	Method    string
	Path      string
	RequestID string
	Auth      string
}

type account struct {
	password string
	user     *models.User
}

// Server is a fake CRM backend
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	funnels     []*models.Funnel
	accounts    map[string]account
	tokens      map[string]bool
	requireAuth bool
	failMoves   bool
	failFetches bool
	summary     models.Summary
	requests    []Request
	nextID      int
}

// NewServer starts a fake backend that is closed when the test ends.
// Auth is not enforced until RequireAuth is called.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		accounts: make(map[string]account),
		tokens:   make(map[string]bool),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(s.record, s.authenticate)

	e.POST("/auth/login", s.login)
	e.GET("/funnels", s.listFunnels)
	e.GET("/funnels/:id", s.getFunnel)
	e.POST("/funnels", s.createFunnel)
	e.PATCH("/funnels/leads/:id/stage", s.moveLead)
	e.PATCH("/funnels/stages/:id", s.renameStage)
	e.GET("/leads", s.listLeads)
	e.POST("/leads", s.createLead)
	e.GET("/dashboard/summary", s.getSummary)

	s.Server = httptest.NewServer(e)
	t.Cleanup(s.Close)
	return s
}

// ============================================================================
// Test controls
// ============================================================================

// AddFunnel stores a funnel, assigning IDs to anything that lacks one.
// Returns the stored copy.
func (s *Server) AddFunnel(f *models.Funnel) *models.Funnel {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneFunnel(f)
	if stored.ID == "" {
		stored.ID = s.newID("funnel")
	}
	for _, stage := range stored.Stages {
		if stage.ID == "" {
			stage.ID = s.newID("stage")
		}
		for _, lead := range stage.Leads {
			if lead.ID == "" {
				lead.ID = s.newID("lead")
			}
			lead.StageID = stage.ID
			lead.FunnelID = stored.ID
		}
	}
	s.funnels = append(s.funnels, stored)
	return cloneFunnel(stored)
}

// Funnel returns a copy of the stored funnel, or nil
func (s *Server) Funnel(id string) *models.Funnel {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f := s.findFunnel(id); f != nil {
		return cloneFunnel(f)
	}
	return nil
}

// AddUser registers credentials accepted by the login route
func (s *Server) AddUser(email, password string, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[strings.ToLower(email)] = account{password: password, user: user}
}

// RequireAuth makes every route but login demand a token issued by login
// (or registered with AllowToken).
func (s *Server) RequireAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requireAuth = true
}

// AllowToken accepts the given bearer token
func (s *Server) AllowToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = true
}

// FailMoves makes lead stage changes answer 500
func (s *Server) FailMoves(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failMoves = fail
}

// FailFetches makes funnel reads answer 503
func (s *Server) FailFetches(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failFetches = fail
}

// SetSummary sets the counters the dashboard route reports besides leads
func (s *Server) SetSummary(pendingTasks, totalEmployees int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary.PendingTasks = pendingTasks
	s.summary.TotalEmployees = totalEmployees
}

// Requests returns the calls received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// CountRequests returns how many calls matched method and path
func (s *Server) CountRequests(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// IssueToken signs a token for the user that expires after ttl.
// A negative ttl yields an already expired token.
func IssueToken(userID string, ttl time.Duration) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		panic(fmt.Sprintf("sign token: %v", err))
	}
	return token
}

// ============================================================================
// Middleware
// ============================================================================

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    req.Method,
			Path:      req.URL.Path,
			RequestID: req.Header.Get("X-Request-ID"),
			Auth:      req.Header.Get("Authorization"),
		})
		s.mu.Unlock()
		return next(c)
	}
}

func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == "/auth/login" {
			return next(c)
		}
		s.mu.Lock()
		required := s.requireAuth
		token := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
		ok := s.tokens[token]
		s.mu.Unlock()

		if required && !ok {
			return message(c, http.StatusUnauthorized, "Unauthorized")
		}
		return next(c)
	}
}

// ============================================================================
// Handlers
// ============================================================================

func (s *Server) login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return message(c, http.StatusBadRequest, "invalid body")
	}

	s.mu.Lock()
	acct, ok := s.accounts[strings.ToLower(body.Email)]
	s.mu.Unlock()
	if !ok || acct.password != body.Password {
		return message(c, http.StatusUnauthorized, "Credenciais inválidas")
	}

	token := IssueToken(acct.user.ID, time.Hour)
	s.AllowToken(token)
	return c.JSON(http.StatusCreated, map[string]any{
		"access_token": token,
		"user":         acct.user,
	})
}

func (s *Server) listFunnels(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFetches {
		return message(c, http.StatusServiceUnavailable, "unavailable")
	}

	out := make([]*models.Funnel, 0, len(s.funnels))
	for _, f := range s.funnels {
		out = append(out, &models.Funnel{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			Icon:        f.Icon,
			Color:       f.Color,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getFunnel(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFetches {
		return message(c, http.StatusServiceUnavailable, "unavailable")
	}

	f := s.findFunnel(c.Param("id"))
	if f == nil {
		return message(c, http.StatusNotFound, "Funil não encontrado")
	}
	return c.JSON(http.StatusOK, f)
}

func (s *Server) createFunnel(c echo.Context) error {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Color       string `json:"color"`
		Stages      []struct {
			Name string `json:"name"`
		} `json:"stages"`
	}
	if err := c.Bind(&body); err != nil {
		return message(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": []string{"name should not be empty"}})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := &models.Funnel{
		ID:          s.newID("funnel"),
		Name:        body.Name,
		Description: body.Description,
		Icon:        body.Icon,
		Color:       body.Color,
	}
	for _, st := range body.Stages {
		f.Stages = append(f.Stages, &models.Stage{ID: s.newID("stage"), Name: st.Name})
	}
	s.funnels = append(s.funnels, f)
	return c.JSON(http.StatusCreated, f)
}

func (s *Server) moveLead(c echo.Context) error {
	var body struct {
		StageID string `json:"stageId"`
	}
	if err := c.Bind(&body); err != nil {
		return message(c, http.StatusBadRequest, "invalid body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failMoves {
		return message(c, http.StatusInternalServerError, "Internal server error")
	}

	f, stage, idx := s.findLead(c.Param("id"))
	if stage == nil {
		return message(c, http.StatusNotFound, "Lead não encontrado")
	}
	var dest *models.Stage
	for _, st := range f.Stages {
		if st.ID == body.StageID {
			dest = st
		}
	}
	if dest == nil {
		return message(c, http.StatusNotFound, "Etapa não encontrada")
	}

	lead := stage.Leads[idx]
	stage.Leads = slices.Delete(stage.Leads, idx, idx+1)
	lead.StageID = dest.ID
	dest.Leads = append(dest.Leads, lead)
	return c.JSON(http.StatusOK, lead)
}

func (s *Server) renameStage(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return message(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.Name) == "" {
		return message(c, http.StatusBadRequest, "name should not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.funnels {
		for _, st := range f.Stages {
			if st.ID == c.Param("id") {
				st.Name = body.Name
				return c.JSON(http.StatusOK, map[string]string{"id": st.ID, "name": st.Name})
			}
		}
	}
	return message(c, http.StatusNotFound, "Etapa não encontrada")
}

func (s *Server) listLeads(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = models.DefaultLeadPageSize
	}
	name := strings.ToLower(c.QueryParam("name"))
	stageID := c.QueryParam("stageId")
	channel := c.QueryParam("sourceChannel")

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*models.Lead
	for _, f := range s.funnels {
		for _, st := range f.Stages {
			for _, lead := range st.Leads {
				if name != "" && !strings.Contains(strings.ToLower(lead.Name), name) {
					continue
				}
				if stageID != "" && lead.StageID != stageID {
					continue
				}
				if channel != "" && lead.SourceChannel != channel {
					continue
				}
				matched = append(matched, lead)
			}
		}
	}

	start := min((page-1)*limit, len(matched))
	end := min(start+limit, len(matched))
	return c.JSON(http.StatusOK, map[string]any{
		"data":  matched[start:end],
		"total": len(matched),
		"page":  page,
	})
}

func (s *Server) createLead(c echo.Context) error {
	var lead models.Lead
	if err := c.Bind(&lead); err != nil {
		return message(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(lead.Name) == "" {
		return message(c, http.StatusBadRequest, "name should not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findFunnel(lead.FunnelID)
	if f == nil {
		return message(c, http.StatusNotFound, "Funil não encontrado")
	}
	var stage *models.Stage
	for _, st := range f.Stages {
		if st.ID == lead.StageID {
			stage = st
		}
	}
	if stage == nil {
		return message(c, http.StatusNotFound, "Etapa não encontrada")
	}

	stored := lead
	stored.ID = s.newID("lead")
	stage.Leads = append(stage.Leads, &stored)
	return c.JSON(http.StatusCreated, &stored)
}

func (s *Server) getSummary(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := s.summary
	summary.TotalLeads = 0
	summary.LeadsPerStage = nil
	for _, f := range s.funnels {
		for _, st := range f.Stages {
			summary.TotalLeads += len(st.Leads)
			summary.LeadsPerStage = append(summary.LeadsPerStage, models.StageCount{
				Stage: st.Name,
				Count: len(st.Leads),
			})
		}
	}
	return c.JSON(http.StatusOK, summary)
}

// ============================================================================
// Helpers (callers hold s.mu)
// ============================================================================

func (s *Server) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func (s *Server) findFunnel(id string) *models.Funnel {
	for _, f := range s.funnels {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func (s *Server) findLead(id string) (*models.Funnel, *models.Stage, int) {
	for _, f := range s.funnels {
		for _, st := range f.Stages {
			for i, lead := range st.Leads {
				if lead.ID == id {
					return f, st, i
				}
			}
		}
	}
	return nil, nil, -1
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"message": msg})
}

func cloneFunnel(f *models.Funnel) *models.Funnel {
	out := *f
	out.Stages = make([]*models.Stage, len(f.Stages))
	for i, st := range f.Stages {
		stage := *st
		stage.Leads = make([]*models.Lead, len(st.Leads))
		for j, lead := range st.Leads {
			l := *lead
			if lead.Responsible != nil {
				u := *lead.Responsible
				l.Responsible = &u
			}
			stage.Leads[j] = &l
		}
		out.Stages[i] = &stage
	}
	return &out
}
