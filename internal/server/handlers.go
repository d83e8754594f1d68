package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/worthyretail/xray/core"
	"github.com/worthyretail/xray/schema"
)

// scoreRequest is the body of POST /api/score.
type scoreRequest struct {
	Answers schema.Answers `json:"answers"`
}

// scoreResponse reports readiness. Report is only set once every question is answered.
type scoreResponse struct {
	Ready    bool           `json:"ready"`
	Answered int            `json:"answered"`
	Total    int            `json:"total"`
	Report   *schema.Report `json:"report,omitempty"`
}

type archetypesResponse struct {
	Archetypes []schema.Archetype `json:"archetypes"`
	Rules      []schema.RuleView  `json:"rules"`
}

func (s *Server) handleHealth(c *gin.Context) {
	status, err := s.store.GetStatus()
	if err != nil {
		respondError(c, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	respondSuccess(c, status, "ok")
}

func (s *Server) handleQuestions(c *gin.Context) {
	respondSuccess(c, s.engine.Questions(), "")
}

func (s *Server) handleArchetypes(c *gin.Context) {
	catalog := s.engine.Catalog()
	archetypes := make([]schema.Archetype, 0, len(schema.AllArchetypes))
	for _, id := range schema.AllArchetypes {
		archetypes = append(archetypes, catalog.Archetype(id))
	}
	respondSuccess(c, archetypesResponse{Archetypes: archetypes, Rules: s.engine.RuleViews()}, "")
}

func (s *Server) handleScore(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.engine.ValidateAnswers(req.Answers); err != nil {
		handleServiceError(c, err)
		return
	}

	resp := scoreResponse{Answered: len(req.Answers), Total: len(s.engine.Questions())}
	if result, ok := s.engine.Score(req.Answers); ok {
		report := s.engine.Report(result)
		resp.Ready = true
		resp.Report = &report
	}
	respondSuccess(c, resp, "")
}

func (s *Server) handleSubmit(c *gin.Context) {
	var req core.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := core.Submit(c.Request.Context(), s.store, s.engine, req, time.Now())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	s.cache.invalidate(sub.TeamCode)
	s.metrics.IncSubmission(string(sub.ArchetypeID))
	respond(c, http.StatusCreated, sub, "Submission recorded")
}

func (s *Server) handleTeams(c *gin.Context) {
	subs, err := s.store.ListSubmissions(c.Request.Context(), "")
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondSuccess(c, core.SummarizeTeams(subs), "")
}

func (s *Server) handleTeamDashboard(c *gin.Context) {
	code := schema.NormalizeTeamCode(c.Param("code"))
	if code == "" {
		respondError(c, http.StatusBadRequest, "team code is required")
		return
	}

	cached, gen, ok := s.cache.lookup(code)
	if ok {
		s.metrics.IncCacheLookup(true)
		respondSuccess(c, cached, "")
		return
	}
	s.metrics.IncCacheLookup(false)

	dashboard, err := core.TeamDashboard(c.Request.Context(), s.store, code)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	s.cache.put(code, gen, dashboard)
	respondSuccess(c, dashboard, "")
}
