package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/pofo-ai/pofo/internal/admin/internal/domain"
	"github.com/pofo-ai/pofo/internal/admin/internal/repository/dao"
)

type AdminRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountPortfolios(ctx context.Context) (int64, error)
	CountTodayPortfolios(ctx context.Context) (int64, error)
	CountActiveUsers(ctx context.Context) (int64, error)

	ListUsers(ctx context.Context, skip, limit int, search string) ([]domain.UserProfile, error)
	DeleteUsers(ctx context.Context, userIds []string) (domain.BatchDeleteResult, error)
	ListPortfolios(ctx context.Context, skip, limit int, search string) ([]domain.PortfolioSummary, int64, error)

	TemplateConfigs(ctx context.Context) (map[string]bool, error)
	UpsertTemplateConfig(ctx context.Context, key string, active bool) error
}

type adminRepository struct {
	dao dao.AdminDAO
}

func NewAdminRepository(d dao.AdminDAO) AdminRepository {
	return &adminRepository{dao: d}
}

func (r *adminRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.dao.CountUsers(ctx)
}

func (r *adminRepository) CountPortfolios(ctx context.Context) (int64, error) {
	return r.dao.CountPortfolios(ctx)
}

func (r *adminRepository) CountTodayPortfolios(ctx context.Context) (int64, error) {
	return r.dao.CountTodayPortfolios(ctx)
}

func (r *adminRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	return r.dao.CountActiveUsers(ctx)
}

func (r *adminRepository) ListUsers(ctx context.Context, skip, limit int, search string) ([]domain.UserProfile, error) {
	profiles, err := r.dao.ListUsers(ctx, skip, limit, search)
	if err != nil {
		return nil, err
	}
	ids := slice.Map(profiles, func(idx int, src dao.UserProfile) string {
		return src.Id
	})
	counts, err := r.dao.PortfolioCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(profiles, func(idx int, src dao.UserProfile) domain.UserProfile {
		return domain.UserProfile{
			Id:             src.Id,
			Email:          src.Email,
			Name:           src.Name,
			PortfolioCount: counts[src.Id],
			Ctime:          src.Ctime,
		}
	}), nil
}

func (r *adminRepository) DeleteUsers(ctx context.Context, userIds []string) (domain.BatchDeleteResult, error) {
	pf, us, err := r.dao.DeleteUsers(ctx, userIds)
	return domain.BatchDeleteResult{
		DeletedPortfolios: pf,
		DeletedUsers:      us,
	}, err
}

func (r *adminRepository) ListPortfolios(ctx context.Context, skip, limit int, search string) ([]domain.PortfolioSummary, int64, error) {
	pfs, total, err := r.dao.ListPortfolios(ctx, skip, limit, search)
	if err != nil {
		return nil, 0, err
	}
	ownerIds := slice.Map(pfs, func(idx int, src dao.Portfolio) string {
		return src.UserId
	})
	owners, err := r.dao.FindProfiles(ctx, ownerIds)
	if err != nil {
		return nil, 0, err
	}
	byId := make(map[string]dao.UserProfile, len(owners))
	for _, o := range owners {
		byId[o.Id] = o
	}
	return slice.Map(pfs, func(idx int, src dao.Portfolio) domain.PortfolioSummary {
		owner := byId[src.UserId]
		title := src.Title
		if title == "" {
			title = "이름 없음"
		}
		return domain.PortfolioSummary{
			Id:        src.Id,
			Title:     title,
			UserEmail: owner.Email,
			UserName:  owner.Name,
			Job:       src.Job,
			Template:  src.Template,
			Ctime:     src.Ctime,
		}
	}), total, nil
}

func (r *adminRepository) TemplateConfigs(ctx context.Context) (map[string]bool, error) {
	configs, err := r.dao.TemplateConfigs(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[string]bool, len(configs))
	for _, c := range configs {
		res[c.Key] = c.Active
	}
	return res, nil
}

func (r *adminRepository) UpsertTemplateConfig(ctx context.Context, key string, active bool) error {
	return r.dao.UpsertTemplateConfig(ctx, key, active)
}
