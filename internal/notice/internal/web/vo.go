package web

import "github.com/pofo-ai/pofo/internal/notice/internal/domain"

type NoticeVO struct {
	Id       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive bool   `json:"is_active"`
	Ctime    int64  `json:"created_at"`
	Utime    int64  `json:"updated_at"`
}

func newNoticeVO(n domain.Notice) NoticeVO {
	return NoticeVO{
		Id:       n.Id,
		Title:    n.Title,
		Content:  n.Content,
		IsActive: n.Active,
		Ctime:    n.Ctime,
		Utime:    n.Utime,
	}
}

type CreateNoticeReq struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive *bool  `json:"is_active"`
}

type UpdateNoticeReq struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsActive *bool   `json:"is_active"`
}
