package villa

import "math"

const (
	// MaxPageSize caps the number of rows returned by a single list call.
	MaxPageSize = 100
	// MaxPageNumber caps the page number so Offset always fits in an int32.
	MaxPageNumber = math.MaxInt32 / MaxPageSize
)

// Page represents paging information for list requests.
// A zero Size means the whole result set.
type Page struct {
	Number int // Number is the 1-based page number
	Size   int // Size is the number of records per page
}

// NewPage normalizes paging parameters coming from a request.
func NewPage(number, size int) Page {
	if size <= 0 {
		return Page{}
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if number <= 0 {
		number = 1
	}
	if number > MaxPageNumber {
		number = MaxPageNumber
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Size == 0 {
		return 0
	}
	return (p.Number - 1) * p.Size
}
