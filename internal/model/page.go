package model

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a limit/offset window over a list query.
type Page struct {
	Limit  int32
	Offset int32
}

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
