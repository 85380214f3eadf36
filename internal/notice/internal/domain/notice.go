package domain

// Notice 관리자가 작성하는 공지. 활성 상태인 것만 일반 사용자에게 노출된다.
type Notice struct {
	Id      int64
	Title   string
	Content string
	Active  bool
	Ctime   int64
	Utime   int64
}

// Patch 부분 수정. nil 필드는 건드리지 않는다
type Patch struct {
	Title   *string
	Content *string
	Active  *bool
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Active == nil
}
