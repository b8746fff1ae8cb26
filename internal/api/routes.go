package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"product-approval-ai/backend/internal/ai"
	"product-approval-ai/backend/internal/review"
)

const (
	serviceName    = "Product Approval AI"
	serviceVersion = "1.0.0"
)

// Config defines server dependencies.
type Config struct {
	AIConfig         ai.Config
	UseMockAI        bool
	MaxContentLength int
	ReviewTermsPath  string
	AllowedOrigins   []string
}

// Server wires HTTP handlers with the review engine.
type Server struct {
	engine           *review.Engine
	maxContentLength int
	allowedOrigins   []string
}

// NewServer constructs the API server. A missing API key or an explicit
// mock flag selects the heuristic reviewer; the strategy never changes
// after this point.
func NewServer(cfg Config) (*Server, error) {
	terms := review.DefaultTerms()
	if cfg.ReviewTermsPath != "" {
		loaded, err := review.LoadTerms(cfg.ReviewTermsPath)
		if err != nil {
			return nil, fmt.Errorf("review terms: %w", err)
		}
		terms = loaded
	}
	heuristic := review.NewHeuristic(terms)

	var judge ai.Judge
	if cfg.UseMockAI {
		logrus.Info("AI judge disabled via configuration; using heuristic reviewer")
	} else {
		client, err := ai.NewClient(cfg.AIConfig)
		switch {
		case err == nil:
			judge = client
		case errors.Is(err, ai.ErrDisabled):
			logrus.Warn("OpenAI credentials missing; using heuristic reviewer")
		default:
			return nil, fmt.Errorf("ai client: %w", err)
		}
	}

	maxLen := cfg.MaxContentLength
	if maxLen <= 0 {
		maxLen = 10000
	}

	return &Server{
		engine:           review.NewEngine(judge, heuristic),
		maxContentLength: maxLen,
		allowedOrigins:   cfg.AllowedOrigins,
	}, nil
}

// Router configures gin routes.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))
	r.Use(requestID())

	r.GET("/health", s.handleHealth)
	r.POST("/review", s.handleReview)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Service:  serviceName,
		Version:  serviceVersion,
		MockMode: s.engine.Mock(),
	})
}

func (s *Server) handleReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusUnprocessableEntity, "Validation Error", err.Error())
		return
	}

	if len(req.SalesPage) > s.maxContentLength {
		s.renderError(c, http.StatusBadRequest, "Validation Error",
			fmt.Sprintf("Sales page content too long (max %d characters)", s.maxContentLength))
		return
	}

	input, err := review.NewReviewInput(req.ProductName, req.SalesPage)
	if err != nil {
		s.renderError(c, http.StatusUnprocessableEntity, "Validation Error", err.Error())
		return
	}

	log := logrus.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"product":    truncate(input.ProductName, 50),
	})
	log.Info("reviewing product")

	record, err := s.engine.Review(c.Request.Context(), input)
	if err != nil {
		var failure *review.Failure
		if errors.As(err, &failure) {
			s.renderError(c, statusForFailure(failure.Class), "Review Failed", failure.Message)
			return
		}
		s.renderError(c, http.StatusInternalServerError, "Internal Server Error", "Review service error")
		return
	}

	log.WithField("decision", record.Decision).Info("review completed")
	c.JSON(http.StatusOK, ReviewResponse{
		Decision:    string(record.Decision),
		Explanation: record.Explanation,
	})
}

func statusForFailure(class review.FailureClass) int {
	switch class {
	case review.FailureTimeout:
		return http.StatusGatewayTimeout
	case review.FailureUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) renderError(c *gin.Context, status int, message, detail string) {
	c.JSON(status, ErrorResponse{Error: message, Detail: detail})
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
