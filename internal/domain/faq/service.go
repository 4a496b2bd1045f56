package faq

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/support-qa/pkg/errors"
)

// Service exposes the customer support FAQ operations.
type Service interface {
	Answer(ctx context.Context, req AnswerRequest) (AnswerResponse, error)
	List(ctx context.Context, language string) ([]Summary, error)
	Search(ctx context.Context, req SearchRequest) ([]SearchHit, error)
	Status(ctx context.Context) Status
	Reload(ctx context.Context) (ReloadResult, error)
}

// Loader builds a fresh knowledge base and names the source it came from.
type Loader interface {
	LoadKnowledgeBase(ctx context.Context) (*KnowledgeBase, string, error)
}

// Recorder receives match outcomes for monitoring.
type Recorder interface {
	ObserveMatch(lang Language, matched bool, score float64)
	ObserveReload(source string, entries int, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveMatch(Language, bool, float64) {}
func (nopRecorder) ObserveReload(string, int, error)     {}

type service struct {
	cfg      Config
	holder   *Holder
	loader   Loader
	matcher  *Matcher
	recorder Recorder
	logger   *slog.Logger
}

// NewService wires up the FAQ domain. loader and recorder may be nil.
func NewService(cfg Config, holder *Holder, loader Loader, recorder Recorder, logger *slog.Logger) Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &service{
		cfg:      cfg,
		holder:   holder,
		loader:   loader,
		matcher:  NewMatcher(cfg.Weights),
		recorder: recorder,
		logger:   logger.With("component", "faq.service"),
	}
}

func (s *service) Answer(_ context.Context, req AnswerRequest) (AnswerResponse, error) {
	if strings.TrimSpace(req.Question) == "" {
		return AnswerResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "question cannot be empty", nil)
	}
	// Scored as received: surrounding whitespace counts toward the LCS length.
	question := req.Question
	lang := ParseLanguage(req.Language)

	kb, _ := s.holder.Load()
	result := s.matcher.FindBestMatch(question, lang, kb)
	matched := result.Entry != nil && result.Score > s.cfg.MinConfidence
	s.recorder.ObserveMatch(lang, matched, result.Score)

	if !matched {
		s.logger.Debug("faq no confident match", "language", lang, "score", result.Score)
		return AnswerResponse{
			Question: question,
			Answer:   s.cfg.fallback(lang),
			Language: lang,
		}, nil
	}

	id := result.Entry.ID
	s.logger.Debug("faq matched", "id", id, "language", lang, "score", result.Score)
	return AnswerResponse{
		Question:   question,
		Answer:     result.Entry.Answer(lang),
		Confidence: result.Score,
		ID:         &id,
		Language:   lang,
	}, nil
}

func (s *service) List(_ context.Context, language string) ([]Summary, error) {
	lang := ParseLanguage(language)
	kb, _ := s.holder.Load()
	entries := kb.Entries()
	out := make([]Summary, 0, len(entries))
	for _, e := range entries {
		out = append(out, Summary{
			ID:       e.ID,
			Question: e.Keywords(lang),
			Prompt:   e.Prompt(lang),
		})
	}
	return out, nil
}

func (s *service) Search(_ context.Context, req SearchRequest) ([]SearchHit, error) {
	if req.Query == "" {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "query cannot be empty", nil)
	}
	lang := ParseLanguage(req.Language)
	kb, _ := s.holder.Load()
	out := make([]SearchHit, 0)
	for _, e := range kb.Entries() {
		keywords, prompt := e.Keywords(lang), e.Prompt(lang)
		if !strings.Contains(keywords, req.Query) && !strings.Contains(prompt, req.Query) {
			continue
		}
		out = append(out, SearchHit{
			ID:       e.ID,
			Question: keywords,
			Prompt:   prompt,
			Answer:   e.Answer(lang),
		})
	}
	return out, nil
}

func (s *service) Status(context.Context) Status {
	_, status := s.holder.Load()
	return status
}

func (s *service) Reload(ctx context.Context) (ReloadResult, error) {
	if s.loader == nil {
		return ReloadResult{}, apperrors.Wrap(apperrors.CodeReloadUnavailable, "no knowledge base loader configured", nil)
	}
	kb, source, err := s.loader.LoadKnowledgeBase(ctx)
	if err != nil {
		s.recorder.ObserveReload(source, 0, err)
		return ReloadResult{}, apperrors.Wrap(apperrors.CodeReloadFailed, "knowledge base reload failed", err)
	}
	prev := s.holder.Store(kb, source)
	_, current := s.holder.Load()
	s.recorder.ObserveReload(source, kb.Len(), nil)
	s.logger.Info("faq knowledge base reloaded", "source", source, "entries", kb.Len(), "previous_entries", prev.Entries)
	return ReloadResult{Previous: prev, Current: current}, nil
}
