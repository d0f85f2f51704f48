package service

import (
	"github.com/nsmeele/magistra/internal/config"
	"go.uber.org/zap"
)

type RepositoryI interface {
	ListRI
	QuizListRI
	QuizEntryRI
	SessionRI
}

type Service struct {
	*ListS
	*QuizS
}

func InitServices(api TranslateAPII, repo RepositoryI, cfg config.QuizConfig, log *zap.Logger) *Service {
	eval := NewEvaluator(cfg.MatchMode, cfg.AcceptThreshold)

	return &Service{
		ListS: NewListService(api, repo, log),
		QuizS: NewQuizService(repo, repo, repo, eval, log),
	}
}
