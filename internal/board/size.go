// internal/board/size.go
//
// Size classes for the supported boards. The set is closed: the rules,
// solver and generator are only exercised against these three grids.

package board

import "fmt"

// Size selects a board dimension.
type Size int

const (
	Easy   Size = iota // 4×4 cells
	Medium             // 5×5 cells
	Hard               // 7×7 cells
)

// Grid returns the number of cells per side for the size class.
func (s Size) Grid() int {
	switch s {
	case Easy:
		return 4
	case Medium:
		return 5
	case Hard:
		return 7
	}
	return 4
}

func (s Size) String() string {
	switch s {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "easy"
}

// ParseSize maps a wire string ("easy"/"medium"/"hard") to a Size.
func ParseSize(v string) (Size, error) {
	switch v {
	case "", "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown size %q", v)
}
