package domain

// Document 생성 파이프라인이 내려주는 포트폴리오 문서.
// 저장할 때는 직렬화 블롭으로 취급하고 내부 구조 검증은 하지 않는다.
type Document struct {
	Theme    Theme     `json:"theme"`
	Hero     Hero      `json:"hero"`
	About    About     `json:"about"`
	Projects []Project `json:"projects"`
	Contact  Contact   `json:"contact"`
}

type Theme struct {
	Color     string `json:"color"`
	Font      string `json:"font"`
	MoodEmoji string `json:"mood_emoji"`
	Layout    string `json:"layout"`
}

type Hero struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Tags     []string `json:"tags"`
}

type About struct {
	Intro       string `json:"intro"`
	Description string `json:"description"`
}

type Project struct {
	Title  string   `json:"title"`
	Desc   string   `json:"desc"`
	Detail string   `json:"detail"`
	Tags   []string `json:"tags"`
}

type Contact struct {
	Email  string `json:"email"`
	Github string `json:"github"`
}
