package admin

import (
	"github.com/pofo-ai/pofo/internal/admin/internal/service"
	"github.com/pofo-ai/pofo/internal/admin/internal/web"
)

type AdminHandler = web.AdminHandler
type AdminService = service.AdminService

type Module struct {
	AdminHdl *AdminHandler
	Svc      AdminService
}
