//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/support-qa/internal/bootstrap"
	"github.com/yanqian/support-qa/internal/domain/faq"
	"github.com/yanqian/support-qa/internal/infra/config"
	"github.com/yanqian/support-qa/internal/infra/kbsource"
	"github.com/yanqian/support-qa/internal/infra/metrics"
	httpiface "github.com/yanqian/support-qa/internal/interface/http"
	"github.com/yanqian/support-qa/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideFAQConfig,
		provideCollector,
		provideKnowledgeBaseChain,
		provideKnowledgeBaseWatcher,
		provideHolder,
		faq.NewService,
		wire.Bind(new(faq.Loader), new(*kbsource.Chain)),
		wire.Bind(new(faq.Recorder), new(*metrics.Collector)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
