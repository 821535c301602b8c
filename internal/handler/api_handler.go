package handler

import (
	"github-scout/api"
	"github-scout/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*BatchHandler
	*PodHandler
	*FellowHandler
	*PRHandler
	*AnalyticsHandler
}

func NewAPIHandler(
	batchUseCase domain.BatchUseCase,
	podUseCase domain.PodUseCase,
	fellowUseCase domain.FellowUseCase,
	prUseCase domain.PRUseCase,
	analyticsUseCase domain.AnalyticsUseCase,
	logger *logrus.Logger,
) api.ServerInterface {
	return &APIHandler{
		BatchHandler:     NewBatchHandler(batchUseCase, logger),
		PodHandler:       NewPodHandler(podUseCase, logger),
		FellowHandler:    NewFellowHandler(fellowUseCase, logger),
		PRHandler:        NewPRHandler(prUseCase, logger),
		AnalyticsHandler: NewAnalyticsHandler(analyticsUseCase, logger),
	}
}
