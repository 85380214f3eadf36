package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/pofo-ai/pofo/internal/notice/internal/domain"
	"github.com/pofo-ai/pofo/internal/notice/internal/repository/dao"
)

type NoticeRepository interface {
	List(ctx context.Context, skip, limit int) ([]domain.Notice, error)
	ListActive(ctx context.Context) ([]domain.Notice, error)
	Create(ctx context.Context, n domain.Notice) (domain.Notice, error)
	Update(ctx context.Context, id int64, p domain.Patch) error
	Delete(ctx context.Context, id int64) error
}

type noticeRepository struct {
	dao dao.NoticeDAO
}

func NewNoticeRepository(d dao.NoticeDAO) NoticeRepository {
	return &noticeRepository{dao: d}
}

func (r *noticeRepository) List(ctx context.Context, skip, limit int) ([]domain.Notice, error) {
	ns, err := r.dao.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ns), nil
}

func (r *noticeRepository) ListActive(ctx context.Context) ([]domain.Notice, error) {
	ns, err := r.dao.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ns), nil
}

func (r *noticeRepository) Create(ctx context.Context, n domain.Notice) (domain.Notice, error) {
	created, err := r.dao.Create(ctx, dao.Notice{
		Title:   n.Title,
		Content: n.Content,
		Active:  n.Active,
	})
	if err != nil {
		return domain.Notice{}, err
	}
	return r.toDomain(created), nil
}

func (r *noticeRepository) Update(ctx context.Context, id int64, p domain.Patch) error {
	fields := make(map[string]any, 3)
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Content != nil {
		fields["content"] = *p.Content
	}
	if p.Active != nil {
		fields["active"] = *p.Active
	}
	return r.dao.Update(ctx, id, fields)
}

func (r *noticeRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *noticeRepository) toDomains(ns []dao.Notice) []domain.Notice {
	return slice.Map(ns, func(idx int, src dao.Notice) domain.Notice {
		return r.toDomain(src)
	})
}

func (r *noticeRepository) toDomain(n dao.Notice) domain.Notice {
	return domain.Notice{
		Id:      n.Id,
		Title:   n.Title,
		Content: n.Content,
		Active:  n.Active,
		Ctime:   n.Ctime,
		Utime:   n.Utime,
	}
}
