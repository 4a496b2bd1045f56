package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/support-qa/internal/domain/faq"
)

// Handler wires the HTTP transport to the FAQ service.
type Handler struct {
	faqSvc faq.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc faq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc: faqSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Answer returns the best matching FAQ answer or the localized fallback.
func (h *Handler) Answer(c *gin.Context) {
	var req faq.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.faqSvc.Answer(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err, "faq_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// List returns every FAQ projected into the requested language.
func (h *Handler) List(c *gin.Context) {
	items, err := h.faqSvc.List(c.Request.Context(), c.Query("language"))
	if err != nil {
		abortWithError(c, fromAppError(err, "faq_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"faqs": items})
}

// Search filters FAQs by a substring of their keywords or prompt.
func (h *Handler) Search(c *gin.Context) {
	req := faq.SearchRequest{
		Query:    c.Query("query"),
		Language: c.Query("language"),
	}
	hits, err := h.faqSvc.Search(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err, "faq_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": hits})
}

// Health reports liveness together with the loaded knowledge base.
func (h *Handler) Health(c *gin.Context) {
	status := h.faqSvc.Status(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"knowledgeBase": status,
	})
}

// KnowledgeBaseStatus returns the source and size of the active knowledge base.
func (h *Handler) KnowledgeBaseStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.faqSvc.Status(c.Request.Context()))
}

// ReloadKnowledgeBase re-runs the loading chain and swaps the active snapshot.
func (h *Handler) ReloadKnowledgeBase(c *gin.Context) {
	result, err := h.faqSvc.Reload(c.Request.Context())
	if err != nil {
		abortWithError(c, fromAppError(err, "faq_failed"))
		return
	}
	if claims, ok := getAdminClaims(c); ok {
		h.logger.Info("knowledge base reload requested", "subject", claims.Subject, "source", result.Current.Source)
	}
	c.JSON(http.StatusOK, result)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
