package user

import (
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/pofo-ai/pofo/internal/user/internal/repository/dao"
	"github.com/pofo-ai/pofo/internal/user/internal/service"
	"github.com/pofo-ai/pofo/internal/user/internal/service/social"
	"github.com/pofo-ai/pofo/internal/user/internal/web"
)

func initHandler(userSvc service.UserService,
	google googleVerifier, kakao kakaoVerifier, naver naverVerifier) *Handler {
	return web.NewHandler(userSvc, google, kakao, naver)
}

func initDAO(db *egorm.Component) dao.UserDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMUserDAO(db)
}

func initGoogleVerifier() googleVerifier {
	type Config struct {
		ClientID string `yaml:"clientID"`
	}
	var cfg Config
	err := econf.UnmarshalKey("google", &cfg)
	if err != nil {
		panic(err)
	}
	return social.NewGoogleVerifier(cfg.ClientID)
}

func initKakaoVerifier() kakaoVerifier {
	return social.NewKakaoVerifier()
}

func initNaverVerifier() naverVerifier {
	return social.NewNaverVerifier()
}
