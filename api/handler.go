// Package api exposes the text engine over HTTP.
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/textprocessor/analyzer"
	"github.com/seo-optimizer/textprocessor/highlight"
	"github.com/seo-optimizer/textprocessor/stats"
	"github.com/seo-optimizer/textprocessor/textformat"
)

// ErrInputTooLarge is returned when submitted text exceeds the configured limit
var ErrInputTooLarge = errors.New("input too large")

// TextAnalyzer produces document metrics
type TextAnalyzer interface {
	Analyze(text string) analyzer.Result
	CacheStats() analyzer.CacheStats
}

// HighlightDetector finds and resolves highlights
type HighlightDetector interface {
	Annotate(text string, criticalKeywords []string) []highlight.Highlight
}

// UsageRecorder counts requests per month
type UsageRecorder interface {
	IncrementStats(analyses, highlights, formats, rejected int)
	GetCurrentStats() stats.MonthlyStats
}

const (
	modeStrip = "strip"
	modeAuto  = "auto"
)

type Handler struct {
	analyzer TextAnalyzer
	detector HighlightDetector
	usage    UsageRecorder
	maxInput int
}

func NewHandler(a TextAnalyzer, d HighlightDetector, usage UsageRecorder, maxInput int) *Handler {
	return &Handler{
		analyzer: a,
		detector: d,
		usage:    usage,
		maxInput: maxInput,
	}
}

type textRequest struct {
	Text string `json:"text"`
}

type highlightRequest struct {
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
}

type highlightResponse struct {
	Highlights []highlight.Highlight `json:"highlights"`
	HTML       string                `json:"html"`
}

type formatRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode" binding:"required"`
}

type formattingRequest struct {
	HTML string `json:"html"`
}

type statisticsResponse struct {
	Month         stats.MonthlyStats  `json:"month"`
	SyllableCache analyzer.CacheStats `json:"syllableCache"`
}

// RegisterRoutes mounts the handlers on r
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.health)
	r.POST("/analyze", h.analyze)
	r.POST("/highlights", h.highlights)
	r.POST("/format", h.format)
	r.POST("/formatting", h.formatting)
	r.GET("/statistics", h.statistics)
}

// RecordRejected counts a request turned away before reaching a handler
func (h *Handler) RecordRejected(*gin.Context) {
	h.usage.IncrementStats(0, 0, 0, 1)
}

func (h *Handler) health(c *gin.Context) {
	slog.Debug("health check", "client_ip", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) analyze(c *gin.Context) {
	var req textRequest
	if !h.bind(c, &req) || !h.checkSize(c, req.Text) {
		return
	}

	result := h.analyzer.Analyze(req.Text)
	h.usage.IncrementStats(1, 0, 0, 0)
	slog.Debug("analysis completed", "words", result.Words, "seo_score", result.SEOScore)

	c.JSON(http.StatusOK, result)
}

func (h *Handler) highlights(c *gin.Context) {
	var req highlightRequest
	if !h.bind(c, &req) || !h.checkSize(c, req.Text) {
		return
	}

	keywords := req.Keywords
	if keywords == nil {
		keywords = analyzer.CriticalKeywords(h.analyzer.Analyze(req.Text).KeywordDensity)
	}

	found := h.detector.Annotate(req.Text, keywords)
	h.usage.IncrementStats(0, 1, 0, 0)

	c.JSON(http.StatusOK, highlightResponse{
		Highlights: found,
		HTML:       highlight.Render(req.Text, found),
	})
}

func (h *Handler) format(c *gin.Context) {
	var req formatRequest
	if !h.bind(c, &req) || !h.checkSize(c, req.Text) {
		return
	}

	out, err := applyFormat(req.Text, req.Mode)
	if err != nil {
		if errors.Is(err, textformat.ErrUnknownCase) {
			h.reject(c, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("format failed", "mode", req.Mode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to format text"})
		return
	}
	h.usage.IncrementStats(0, 0, 1, 0)

	c.JSON(http.StatusOK, gin.H{"text": out})
}

func applyFormat(text, mode string) (string, error) {
	switch mode {
	case modeStrip:
		return textformat.StripFormatting(text)
	case modeAuto:
		return textformat.AutoFormat(text), nil
	default:
		return textformat.ConvertCase(text, textformat.CaseMode(mode))
	}
}

func (h *Handler) formatting(c *gin.Context) {
	var req formattingRequest
	if !h.bind(c, &req) || !h.checkSize(c, req.HTML) {
		return
	}

	info, err := textformat.ExtractFormatting(req.HTML)
	if err != nil {
		slog.Error("formatting extraction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read formatting"})
		return
	}
	h.usage.IncrementStats(0, 0, 1, 0)

	c.JSON(http.StatusOK, info)
}

func (h *Handler) statistics(c *gin.Context) {
	c.JSON(http.StatusOK, statisticsResponse{
		Month:         h.usage.GetCurrentStats(),
		SyllableCache: h.analyzer.CacheStats(),
	})
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.reject(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func (h *Handler) checkSize(c *gin.Context, text string) bool {
	if err := h.validateLength(text); err != nil {
		h.reject(c, http.StatusRequestEntityTooLarge, err.Error())
		return false
	}
	return true
}

func (h *Handler) validateLength(text string) error {
	if h.maxInput <= 0 {
		return nil
	}
	if n := utf8.RuneCountInString(text); n > h.maxInput {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrInputTooLarge, n, h.maxInput)
	}
	return nil
}

func (h *Handler) reject(c *gin.Context, status int, message string) {
	h.usage.IncrementStats(0, 0, 0, 1)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
