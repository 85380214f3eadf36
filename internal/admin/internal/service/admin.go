package service

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/pofo-ai/pofo/internal/admin/internal/domain"
	"github.com/pofo-ai/pofo/internal/admin/internal/repository"
	"github.com/pofo-ai/pofo/internal/ai"
	"golang.org/x/sync/errgroup"
)

// aiStatsSampleSize 전체 집계 대신 최근 로그 표본만 센다
const aiStatsSampleSize = 1000

//go:generate mockgen -source=./admin.go -package=svcmocks -destination=mocks/admin.mock.go AdminService
type AdminService interface {
	Stats(ctx context.Context) (domain.Stats, error)
	ListUsers(ctx context.Context, skip, limit int, search string) (domain.UserPage, error)
	DeleteUsers(ctx context.Context, userIds []string) (domain.BatchDeleteResult, error)
	ListPortfolios(ctx context.Context, skip, limit int, search string) (domain.PortfolioPage, error)
	AIStats(ctx context.Context) domain.AIStats
	TemplateConfigs(ctx context.Context) map[string]bool
	UpsertTemplateConfig(ctx context.Context, key string, active bool) error
}

type adminService struct {
	repo    repository.AdminRepository
	logRepo ai.LLMLogRepo
	logger  *elog.Component
}

func NewAdminService(repo repository.AdminRepository, logRepo ai.LLMLogRepo) AdminService {
	return &adminService{
		repo:    repo,
		logRepo: logRepo,
		logger:  elog.DefaultLogger,
	}
}

func (s *adminService) Stats(ctx context.Context) (domain.Stats, error) {
	var res domain.Stats
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		res.TotalUsers, err = s.repo.CountUsers(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalPortfolios, err = s.repo.CountPortfolios(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TodayPortfolios, err = s.repo.CountTodayPortfolios(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.ActiveUsers, err = s.repo.CountActiveUsers(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Stats{}, err
	}
	return res, nil
}

func (s *adminService) ListUsers(ctx context.Context, skip, limit int, search string) (domain.UserPage, error) {
	users, err := s.repo.ListUsers(ctx, skip, limit, search)
	if err != nil {
		return domain.UserPage{}, err
	}
	return domain.UserPage{
		Users: users,
		Skip:  skip,
		Limit: limit,
	}, nil
}

func (s *adminService) DeleteUsers(ctx context.Context, userIds []string) (domain.BatchDeleteResult, error) {
	return s.repo.DeleteUsers(ctx, userIds)
}

func (s *adminService) ListPortfolios(ctx context.Context, skip, limit int, search string) (domain.PortfolioPage, error) {
	pfs, total, err := s.repo.ListPortfolios(ctx, skip, limit, search)
	if err != nil {
		return domain.PortfolioPage{}, err
	}
	return domain.PortfolioPage{
		Portfolios: pfs,
		Total:      total,
		Skip:       skip,
		Limit:      limit,
	}, nil
}

// AIStats 실패해도 대시보드가 깨지지 않게 0 통계로 내려간다
func (s *adminService) AIStats(ctx context.Context) domain.AIStats {
	res := domain.AIStats{
		ByType:  map[string]int{},
		ByModel: map[string]int{},
	}
	logs, err := s.logRepo.RecentLogs(ctx, aiStatsSampleSize)
	if err != nil {
		s.logger.Error("AI 사용 로그 조회 실패", elog.FieldErr(err))
		return res
	}
	res.TotalRequests = len(logs)
	for _, l := range logs {
		biz := l.Biz
		if biz == "" {
			biz = "unknown"
		}
		model := l.Model
		if model == "" {
			model = "unknown"
		}
		res.ByType[biz]++
		res.ByModel[model]++
	}
	return res
}

// TemplateConfigs 실패하면 빈 설정. 프런트는 전부 활성으로 간주한다
func (s *adminService) TemplateConfigs(ctx context.Context) map[string]bool {
	configs, err := s.repo.TemplateConfigs(ctx)
	if err != nil {
		s.logger.Error("템플릿 설정 조회 실패", elog.FieldErr(err))
		return map[string]bool{}
	}
	return configs
}

func (s *adminService) UpsertTemplateConfig(ctx context.Context, key string, active bool) error {
	return s.repo.UpsertTemplateConfig(ctx, key, active)
}
