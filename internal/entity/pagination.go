package entity

type PaginationInput struct {
	Limit  int
	Offset int
}

func NewPaginationInput(limit int, offset int) *PaginationInput {
	return &PaginationInput{
		Limit:  limit,
		Offset: offset,
	}
}

// Slice applies the pagination window to a collection of length n and
// returns the [from, to) bounds.
func (p *PaginationInput) Slice(n int) (int, int) {
	from := p.Offset
	if from > n {
		from = n
	}
	to := n
	if p.Limit > 0 && from+p.Limit < n {
		to = from + p.Limit
	}

	return from, to
}
