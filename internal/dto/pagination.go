package dto

type PageFilter struct {
	Limit *int `form:"limit" binding:"omitempty,min=1,max=100"`
	Skip  *int `form:"skip" binding:"omitempty,min=0"`
}

const DefaultPageSize = 50

func (f PageFilter) LimitOrDefault() int {

	if f.Limit == nil {
		return DefaultPageSize
	}

	return *f.Limit
}

func (f PageFilter) SkipOrDefault() int {

	if f.Skip == nil {
		return 0
	}

	return *f.Skip
}
