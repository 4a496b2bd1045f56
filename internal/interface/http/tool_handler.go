package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/support-qa/internal/domain/faq"
)

// ToolContent is one block of tool output.
type ToolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the envelope returned by every tool call. Failures are reported
// in-band with IsError set, never as an HTTP error status.
type ToolResult struct {
	Content  []ToolContent `json:"content"`
	Metadata *ToolMetadata `json:"metadata,omitempty"`
	IsError  bool          `json:"isError,omitempty"`
}

// ToolMetadata carries the match details of answerQuestion.
type ToolMetadata struct {
	Confidence float64 `json:"confidence"`
	ID         *int64  `json:"id"`
}

type toolArguments struct {
	Question string `json:"question"`
	Query    string `json:"query"`
	Language string `json:"language"`
}

type toolFunc func(ctx context.Context, args toolArguments) (ToolResult, error)

func (h *Handler) tools() map[string]toolFunc {
	return map[string]toolFunc{
		"answerQuestion": h.answerTool,
		"listFAQs":       h.listTool,
		"searchFAQs":     h.searchTool,
	}
}

// CallTool dispatches POST /tools/:name to the named FAQ tool.
func (h *Handler) CallTool(c *gin.Context) {
	name := c.Param("name")
	tool, ok := h.tools()[name]
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "unknown_tool", fmt.Sprintf("tool %q is not registered", name), nil))
		return
	}

	var args toolArguments
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&args); err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
			return
		}
	}

	result, err := tool(c.Request.Context(), args)
	if err != nil {
		h.logger.Warn("tool call failed", "tool", name, "error", err)
		result = ToolResult{
			Content: []ToolContent{{Type: "text", Text: fmt.Sprintf("%s failed: %s", name, err.Error())}},
			IsError: true,
		}
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) answerTool(ctx context.Context, args toolArguments) (ToolResult, error) {
	resp, err := h.faqSvc.Answer(ctx, faq.AnswerRequest{Question: args.Question, Language: args.Language})
	if err != nil {
		return ToolResult{}, err
	}
	return ToolResult{
		Content:  []ToolContent{{Type: "text", Text: resp.Answer}},
		Metadata: &ToolMetadata{Confidence: resp.Confidence, ID: resp.ID},
	}, nil
}

func (h *Handler) listTool(ctx context.Context, args toolArguments) (ToolResult, error) {
	items, err := h.faqSvc.List(ctx, args.Language)
	if err != nil {
		return ToolResult{}, err
	}
	return jsonToolResult(items)
}

func (h *Handler) searchTool(ctx context.Context, args toolArguments) (ToolResult, error) {
	hits, err := h.faqSvc.Search(ctx, faq.SearchRequest{Query: args.Query, Language: args.Language})
	if err != nil {
		return ToolResult{}, err
	}
	return jsonToolResult(hits)
}

func jsonToolResult(v any) (ToolResult, error) {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ToolResult{}, err
	}
	return ToolResult{Content: []ToolContent{{Type: "text", Text: string(payload)}}}, nil
}
