package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/pofo-ai/pofo/internal/admin/internal/domain"
)

type StatsVO struct {
	TotalUsers      int64 `json:"total_users"`
	TotalPortfolios int64 `json:"total_portfolios"`
	TodayPortfolios int64 `json:"today_portfolios"`
	ActiveUsers     int64 `json:"active_users"`
}

type UserVO struct {
	Id             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	PortfolioCount int64  `json:"portfolio_count"`
	Ctime          int64  `json:"created_at"`
}

type UserPageVO struct {
	Users []UserVO `json:"users"`
	Skip  int      `json:"skip"`
	Limit int      `json:"limit"`
}

func newUserPageVO(page domain.UserPage) UserPageVO {
	return UserPageVO{
		Users: slice.Map(page.Users, func(idx int, src domain.UserProfile) UserVO {
			return UserVO{
				Id:             src.Id,
				Email:          src.Email,
				Name:           src.Name,
				PortfolioCount: src.PortfolioCount,
				Ctime:          src.Ctime,
			}
		}),
		Skip:  page.Skip,
		Limit: page.Limit,
	}
}

type PortfolioVO struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`
	Job       string `json:"job"`
	Template  string `json:"template"`
	Ctime     int64  `json:"created_at"`
}

type PortfolioPageVO struct {
	Portfolios []PortfolioVO `json:"portfolios"`
	Total      int64         `json:"total"`
	Skip       int           `json:"skip"`
	Limit      int           `json:"limit"`
}

func newPortfolioPageVO(page domain.PortfolioPage) PortfolioPageVO {
	return PortfolioPageVO{
		Portfolios: slice.Map(page.Portfolios, func(idx int, src domain.PortfolioSummary) PortfolioVO {
			return PortfolioVO{
				Id:        src.Id,
				Title:     src.Title,
				UserEmail: src.UserEmail,
				UserName:  src.UserName,
				Job:       src.Job,
				Template:  src.Template,
				Ctime:     src.Ctime,
			}
		}),
		Total: page.Total,
		Skip:  page.Skip,
		Limit: page.Limit,
	}
}

type BatchDeleteReq struct {
	UserIds []string `json:"user_ids"`
}

type BatchDeleteVO struct {
	Message           string `json:"message"`
	DeletedPortfolios int64  `json:"deleted_portfolios"`
	DeletedUsers      int64  `json:"deleted_users"`
}

type AIStatsVO struct {
	TotalRequests int            `json:"total_requests"`
	ByType        map[string]int `json:"by_type"`
	ByModel       map[string]int `json:"by_model"`
}

type TemplateConfigReq struct {
	IsActive bool `json:"is_active"`
}
