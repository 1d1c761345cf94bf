package constraint

// Factorize returns the prime factors of n in ascending order, repeated by
// multiplicity. Values below 2 have no factors.
func Factorize(n int) []int {
	if n < 0 {
		n = -n
	}

	var factors []int
	for div := 2; div*div <= n; div++ {
		for n%div == 0 {
			factors = append(factors, div)
			n /= div
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// commonFactors returns the multiset intersection of two sorted factor lists.
func commonFactors(a, b []int) []int {
	var common []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			common = append(common, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return common
}

// subsetProducts enumerates the product of every subset of factors,
// including the empty subset (1). Duplicated factors yield duplicated products.
func subsetProducts(factors []int) []int {
	products := []int{1}
	for _, f := range factors {
		n := len(products)
		for i := 0; i < n; i++ {
			products = append(products, products[i]*f)
		}
	}
	return products
}
