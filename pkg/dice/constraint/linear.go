// Package constraint describes which face counts a die family can realize.
//
// A family's geometric face counts follow the linear formula A*n + B. When
// repetition is allowed, a die that should show fewer distinct numbers can be
// packed onto a larger valid shape by printing every number on m faces.
package constraint

import "sort"

// Linear is a size constraint of the form A*n + B (n >= 0).
// The zero value is not useful; use NewLinear.
type Linear struct {
	A               int
	B               int
	AllowRepetition bool
}

// NewLinear returns the constraint A*n + B.
func NewLinear(a, b int, allowRepetition bool) Linear {
	return Linear{A: a, B: b, AllowRepetition: allowRepetition}
}

// Validate reports whether size can be generated, possibly with repetition.
func (c Linear) Validate(size int) bool {
	return c.GetScalingFactor(size) != -1
}

// GetSize returns the seed-th valid geometric size.
func (c Linear) GetSize(seed int) int {
	return c.A*seed + c.B
}

// GetScalingFactor returns the smallest multiplier m such that m*size is a
// valid geometric size, or -1 if there is none.
func (c Linear) GetScalingFactor(size int) int {
	if size <= 0 {
		return -1
	}

	// A single-size family only matches exactly.
	if c.A == 0 {
		if size == c.B {
			return 1
		}
		return -1
	}

	if !c.AllowRepetition {
		if c.fits(size) {
			return 1
		}
		return -1
	}

	for _, m := range c.multipliers() {
		if c.fits(m * size) {
			return m
		}
	}
	return -1
}

// Multipliers lists every candidate scaling factor in ascending order.
// Without repetition the only candidate is 1.
func (c Linear) Multipliers() []int {
	if !c.AllowRepetition || c.A == 0 {
		return []int{1}
	}
	return c.multipliers()
}

func (c Linear) fits(size int) bool {
	return size >= c.B && (size-c.B)%c.A == 0
}

// multipliers returns the subset products of the prime factors A and B
// share, sorted ascending and deduplicated.
func (c Linear) multipliers() []int {
	products := subsetProducts(commonFactors(Factorize(c.A), Factorize(c.B)))
	sort.Ints(products)

	unique := products[:0]
	for i, p := range products {
		if i == 0 || p != products[i-1] {
			unique = append(unique, p)
		}
	}
	return unique
}
