// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"net/http"

	"github.com/alvinbaena/pwd-advisor/pkg/advisor"
	"github.com/alvinbaena/pwd-advisor/pkg/client"
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type advisorApi struct {
	evaluator client.Evaluator
	suggester client.Suggester
	status    *Status
}

func (a *advisorApi) evaluate(c *gin.Context) {
	var req advisor.EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: client.ErrEmptyPassword.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := a.evaluator.Evaluate(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, client.ErrEmptyPassword) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		a.status.Failed()
		log.Error().Err(err).Msg("error evaluating password")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "error evaluating password"})
		return
	}

	a.status.Evaluated(result.Strength)
	c.JSON(http.StatusOK, result)
}

func (a *advisorApi) suggest(c *gin.Context) {
	result, err := a.suggester.Suggest(c.Request.Context())
	if err != nil {
		a.status.Failed()
		log.Error().Err(err).Msg("error generating suggestion")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "error generating suggestion"})
		return
	}

	a.status.Suggested()
	c.JSON(http.StatusOK, result)
}

func RegisterAdvisorApi(group *gin.RouterGroup, evaluator client.Evaluator, suggester client.Suggester, status *Status) {
	a := &advisorApi{evaluator: evaluator, suggester: suggester, status: status}

	group.POST("/evaluate", a.evaluate)
	group.GET("/suggest", a.suggest)
}

func RegisterHealth(router gin.IRoutes, status *Status) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, status.health())
	})
}

// NewRouter wires the advisor endpoints with recovery and request logging. Wrong methods on
// known paths answer 405.
func NewRouter(evaluator client.Evaluator, suggester client.Suggester, status *Status) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(logger.SetLogger(
		logger.WithSkipPath([]string{"/healthz"}),
		logger.WithLogger(func(c *gin.Context, z zerolog.Logger) zerolog.Logger {
			return zerolog.New(gin.DefaultWriter).With().Timestamp().Logger()
		}),
	))

	RegisterHealth(router, status)
	RegisterAdvisorApi(router.Group("/api"), evaluator, suggester, status)

	return router
}
