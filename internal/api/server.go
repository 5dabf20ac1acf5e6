// Package api exposes the analyzer over HTTP.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/pvoronin/newsgauge/internal/analyze"
	"github.com/pvoronin/newsgauge/internal/model"
)

const missingTextDetail = "Either 'text' or 'content' field is required"

// Server routes analysis requests to the analyzer. One endpoint per
// signal plus the full /analyze bundle.
type Server struct {
	analyzer *analyze.Analyzer
	cfg      model.ServerConfig
}

// NewServer wires the HTTP surface around an analyzer.
func NewServer(analyzer *analyze.Analyzer, cfg model.ServerConfig) *Server {
	return &Server{analyzer: analyzer, cfg: cfg}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	group := router.Group("/")
	group.Use(rateLimiter(s.cfg.RatePerSecond, s.cfg.RateBurst))

	group.GET("/", s.handleHealth)
	group.POST("/analyze", s.handleAnalyze)
	group.POST("/sentiment", s.handleSentiment)
	group.POST("/entities", s.handleEntities)
	group.POST("/classify", s.handleClassify)
	group.POST("/geographic", s.handleGeographic)
	group.POST("/summarize", s.handleSummarize)
	group.POST("/bias", s.handleBias)
	return router
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	return s.Router().Run(s.cfg.Addr)
}

func rateLimiter(perSecond float64, burst int) gin.HandlerFunc {
	if perSecond <= 0 {
		perSecond = 100
	}
	if burst <= 0 {
		burst = int(perSecond) * 2
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(ctx *gin.Context) {
		if limiter.Allow() {
			ctx.Next()
		} else {
			ctx.AbortWithStatus(http.StatusTooManyRequests)
		}
	}
}

func (s *Server) handleHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "newsgauge is running", "status": "ok"})
}

// bindArticle decodes the payload. A false return means the response is
// already written. The text/content requirement itself is enforced by the
// analyzer, which sees decoded-but-empty articles.
func bindArticle(ctx *gin.Context) (model.Article, bool) {
	var article model.Article
	if err := ctx.ShouldBindJSON(&article); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": fmt.Sprintf("Invalid request body: %v", err)})
		return model.Article{}, false
	}
	return article, true
}

// writeError maps the caller-input error to 422 and everything else to
// 500 with an operation-specific detail prefix.
func writeError(ctx *gin.Context, op string, err error) {
	if errors.Is(err, analyze.ErrEmptyText) {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": missingTextDetail})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Error %s: %v", op, err)})
}

func (s *Server) handleAnalyze(ctx *gin.Context) {
	article, ok := bindArticle(ctx)
	if !ok {
		return
	}
	report, err := s.analyzer.Analyze(ctx.Request.Context(), article)
	if err != nil {
		writeError(ctx, "analyzing text", err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

func (s *Server) handleSentiment(ctx *gin.Context) {
	article, ok := bindArticle(ctx)
	if !ok {
		return
	}
	sentiment, err := s.analyzer.Sentiment(ctx.Request.Context(), article.Body())
	if err != nil {
		writeError(ctx, "analyzing sentiment", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"sentiment": sentiment})
}

func (s *Server) handleEntities(ctx *gin.Context) {
	article, ok := bindArticle(ctx)
	if !ok {
		return
	}
	entities, err := s.analyzer.Entities(ctx.Request.Context(), article.Body())
	if err != nil {
		writeError(ctx, "extracting entities", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entities": entities})
}

func (s *Server) handleClassify(ctx *gin.Context) {
	article, ok := bindArticle(ctx)
	if !ok {
		return
	}
	classification, err := s.analyzer.Classify(ctx.Request.Context(), article.Body())
	if err != nil {
		writeError(ctx, "classifying text", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"classification": classification})
}

func (s *Server) handleGeographic(ctx *gin.Context) {
	article, ok := bindArticle(ctx)
	if !ok {
		return
	}
	info, err := s.analyzer.Geographic(ctx.Request.Context(), article.Body())
	if err != nil {
		writeError(ctx, "extracting geographic info", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"geographic_info": info})
}

func (s *Server) handleSummarize(ctx *gin.Context) {
	article, ok := bindArticle(ctx)
	if !ok {
		return
	}
	summary, err := s.analyzer.Summarize(ctx.Request.Context(), article.Body())
	if err != nil {
		writeError(ctx, "summarizing text", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (s *Server) handleBias(ctx *gin.Context) {
	article, ok := bindArticle(ctx)
	if !ok {
		return
	}
	bias, err := s.analyzer.Bias(ctx.Request.Context(), article.Body(), article.SourceName())
	if err != nil {
		writeError(ctx, "analyzing bias", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"bias_analysis": bias})
}
