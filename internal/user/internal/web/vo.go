package web

import "encoding/json"

type SignupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenReq struct {
	Token string `json:"token"`
}

type LoginResp struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	// PortfolioData 저장된 문서를 그대로 돌려준다. 없으면 null
	PortfolioData json.RawMessage `json:"portfolio_data"`
}
