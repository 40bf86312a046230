package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gobayes/app"
	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/internal/errors"
	"gobayes/internal/figure"
	"gobayes/internal/report"
)

// evaluateRequest is the wire form of one evaluation
type evaluateRequest struct {
	app.AnalysisRequest
	Plot bool `json:"plot,omitempty"`
}

// evaluateResponse carries the analysis plus optional presentation extras
type evaluateResponse struct {
	Analysis *bayes.Analysis `json:"analysis"`
	Summary  string          `json:"summary"`
	Figure   *figure.Figure  `json:"figure,omitempty"`
}

func (s *Server) handleEvaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidInput("malformed request body: "+err.Error()))
		return
	}

	analysis, err := s.service.Evaluate(c.Request.Context(), req.AnalysisRequest)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildResponse(analysis, req.Plot))
}

func (s *Server) handleBatch(c *gin.Context) {
	var reqs []evaluateRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		writeError(c, errors.InvalidInput("malformed request body: "+err.Error()))
		return
	}
	if len(reqs) == 0 {
		writeError(c, errors.InvalidInput("batch must contain at least one request"))
		return
	}

	inner := make([]app.AnalysisRequest, len(reqs))
	for i, r := range reqs {
		inner[i] = r.AnalysisRequest
	}

	analyses, err := s.service.EvaluateBatch(c.Request.Context(), inner)
	if err != nil {
		writeError(c, err)
		return
	}

	responses := make([]evaluateResponse, len(analyses))
	for i, a := range analyses {
		responses[i] = buildResponse(a, reqs[i].Plot)
	}
	c.JSON(http.StatusOK, gin.H{"analyses": responses})
}

func (s *Server) handleHistory(c *gin.Context) {
	limit := s.historySize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(c, errors.InvalidInput("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	analyses, err := s.service.History(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": analyses})
}

func (s *Server) handleGetAnalysis(c *gin.Context) {
	id := core.AnalysisID(c.Param("id"))

	analysis, err := s.service.GetAnalysis(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

func (s *Server) handleReport(c *gin.Context) {
	analyses, err := s.service.History(c.Request.Context(), s.historySize)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", report.HTML(analyses))
}

func buildResponse(analysis *bayes.Analysis, plot bool) evaluateResponse {
	resp := evaluateResponse{
		Analysis: analysis,
		Summary:  analysis.Result.Summary(),
	}
	if plot {
		resp.Figure = figure.Build(analysis.Data, analysis.Result.H1, analysis.H0)
	}
	return resp
}

// writeError maps domain and application errors to HTTP responses
func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError

	switch {
	case core.IsSpecificationError(err):
		code = errors.CodeInvalidSpec
		status = http.StatusBadRequest
	case core.IsDegenerateError(err):
		code = errors.CodeDegenerateDist
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrInsufficientData):
		code = errors.CodeInvalidInput
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound):
		code = errors.CodeNotFound
		status = http.StatusNotFound
	case code == errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case code == errors.CodeStorageDisabled:
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": err.Error()}})
}
