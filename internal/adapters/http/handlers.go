package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/attempts"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/evaluator"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/generator"
)

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"service":   "interview-backend",
		"timestamp": time.Now().UnixMilli(),
	})
}

func (a *API) handleGenerate(c *gin.Context) {
	var body struct {
		Category           string `json:"category"`
		Difficulty         string `json:"difficulty"`
		Count              int    `json:"count"`
		TechnicalSubtopic  string `json:"technicalSubtopic"`
		ProjectDescription string `json:"projectDescription"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if body.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	res := a.Gen.Generate(c.Request.Context(), generator.Request{
		Category:           domain.Category(body.Category),
		Difficulty:         domain.Difficulty(body.Difficulty),
		Count:              body.Count,
		TechnicalSubtopic:  body.TechnicalSubtopic,
		ProjectDescription: body.ProjectDescription,
	})
	c.JSON(http.StatusOK, gin.H{"items": res.Questions, "source": res.Source})
}

func (a *API) handleEvaluate(c *gin.Context) {
	var req evaluator.Request
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	c.JSON(http.StatusOK, a.Eval.Evaluate(c.Request.Context(), req))
}

func (a *API) handleSaveAttempt(c *gin.Context) {
	var payload json.RawMessage
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	attempt, err := a.Attempts.Save(c.Request.Context(), payload)
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Msg("save attempt")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save attempt"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": attempt.ID})
}

func (a *API) handleGetAttempt(c *gin.Context) {
	attempt, err := a.Attempts.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, attempts.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Msg("load attempt")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load attempt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        attempt.ID,
		"payload":   attempt.Payload,
		"createdAt": attempt.CreatedAt,
	})
}

func (a *API) handleRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": a.Reg.List()})
}
