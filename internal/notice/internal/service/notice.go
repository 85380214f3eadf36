package service

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/pofo-ai/pofo/internal/notice/internal/domain"
	"github.com/pofo-ai/pofo/internal/notice/internal/repository"
)

//go:generate mockgen -source=./notice.go -package=svcmocks -destination=mocks/notice.mock.go NoticeService
type NoticeService interface {
	// ActiveList 공개 조회. 실패해도 빈 목록으로 덮는다
	ActiveList(ctx context.Context) []domain.Notice
	List(ctx context.Context, skip, limit int) ([]domain.Notice, error)
	Create(ctx context.Context, n domain.Notice) (domain.Notice, error)
	Update(ctx context.Context, id int64, p domain.Patch) error
	Delete(ctx context.Context, id int64) error
}

type noticeService struct {
	repo   repository.NoticeRepository
	logger *elog.Component
}

func NewNoticeService(repo repository.NoticeRepository) NoticeService {
	return &noticeService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *noticeService) ActiveList(ctx context.Context) []domain.Notice {
	ns, err := s.repo.ListActive(ctx)
	if err != nil {
		// 공지 장애가 서비스 첫 화면을 막으면 안 된다
		s.logger.Error("활성 공지 조회 실패", elog.FieldErr(err))
		return []domain.Notice{}
	}
	return ns
}

func (s *noticeService) List(ctx context.Context, skip, limit int) ([]domain.Notice, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *noticeService) Create(ctx context.Context, n domain.Notice) (domain.Notice, error) {
	return s.repo.Create(ctx, n)
}

func (s *noticeService) Update(ctx context.Context, id int64, p domain.Patch) error {
	if p.Empty() {
		return nil
	}
	return s.repo.Update(ctx, id, p)
}

func (s *noticeService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
