package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/limb-salvage-engine/internal/domain"
)

// EvaluationResult bundles the full engine output for one assessment.
type EvaluationResult struct {
	Score              *domain.Score             `json:"score"`
	Recommendations    []domain.Recommendation   `json:"recommendations"`
	AmputationLevel    domain.AmputationLevel    `json:"amputation_level"`
	ManagementStrategy domain.ManagementStrategy `json:"management_strategy"`
	SINBAD             *domain.SINBADScore       `json:"sinbad"`
	Display            domain.ScoreDisplay       `json:"display"`
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// bindAssessment decodes the posted assessment snapshot, writing the standard
// error body on malformed input.
func (s *Server) bindAssessment(c *gin.Context) (*domain.Assessment, bool) {
	var assessment domain.Assessment
	if err := c.ShouldBindJSON(&assessment); err != nil {
		apiErr := domain.NewAPIError(domain.ErrInvalidInput,
			"Invalid assessment payload", err.Error(), c.GetString("correlation_id"))
		c.AbortWithStatusJSON(http.StatusBadRequest, apiErr)
		return nil, false
	}
	return &assessment, true
}

// handleScore computes the composite limb-salvage score.
func (s *Server) handleScore(c *gin.Context) {
	assessment, ok := s.bindAssessment(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.engine.CalculateLimbSalvageScore(assessment))
}

// handleRecommendations generates the prioritized recommendation list.
func (s *Server) handleRecommendations(c *gin.Context) {
	assessment, ok := s.bindAssessment(c)
	if !ok {
		return
	}
	if assessment.LimbSalvageScore == nil {
		assessment.LimbSalvageScore = s.engine.CalculateLimbSalvageScore(assessment)
	}
	c.JSON(http.StatusOK, s.engine.GenerateRecommendations(assessment))
}

// handleAmputationLevel recommends an amputation level.
func (s *Server) handleAmputationLevel(c *gin.Context) {
	assessment, ok := s.bindAssessment(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"amputation_level": s.engine.RecommendAmputationLevel(assessment),
	})
}

// handleManagement determines the management strategy.
func (s *Server) handleManagement(c *gin.Context) {
	assessment, ok := s.bindAssessment(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"management_strategy": s.engine.DetermineManagement(assessment),
	})
}

// handleEvaluate runs the full pipeline for one assessment.
func (s *Server) handleEvaluate(c *gin.Context) {
	assessment, ok := s.bindAssessment(c)
	if !ok {
		return
	}

	score := s.engine.CalculateLimbSalvageScore(assessment)
	assessment.LimbSalvageScore = score

	level := s.engine.RecommendAmputationLevel(assessment)
	assessment.RecommendedAmputationLevel = level

	c.JSON(http.StatusOK, EvaluationResult{
		Score:              score,
		Recommendations:    s.engine.GenerateRecommendations(assessment),
		AmputationLevel:    level,
		ManagementStrategy: s.engine.DetermineManagement(assessment),
		SINBAD:             s.engine.CalculateSINBADScore(assessment),
		Display:            domain.FormatScoreDisplay(score),
	})
}
