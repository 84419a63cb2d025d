package util

type GaussLegendreRule struct {
	nodes   []float64 // positive half, symmetric around 0
	weights []float64
}

var gaussLegendreRules = map[int]GaussLegendreRule{
	2: {[]float64{0.5773502691896257}, []float64{1.0}},
	4: {
		[]float64{0.3399810435848563, 0.8611363115940526},
		[]float64{0.6521451548625461, 0.3478548451374538},
	},
	8: {
		[]float64{0.1834346424956498, 0.5255324099163290, 0.7966664774136267, 0.9602898564975363},
		[]float64{0.3626837833783620, 0.3137066458778873, 0.2223810344533745, 0.1012285362903763},
	},
}

// GetGaussLegendre returns nodes and weights on [-1, 1]. Unsupported orders
// fall back to 8 points.
func GetGaussLegendre(order int) ([]float64, []float64) {
	rule, ok := gaussLegendreRules[order]
	if !ok {
		rule = gaussLegendreRules[8]
	}

	nodes := make([]float64, 0, 2*len(rule.nodes))
	weights := make([]float64, 0, 2*len(rule.nodes))
	for i := len(rule.nodes) - 1; i >= 0; i-- {
		nodes = append(nodes, -rule.nodes[i])
		weights = append(weights, rule.weights[i])
	}
	for i := range rule.nodes {
		nodes = append(nodes, rule.nodes[i])
		weights = append(weights, rule.weights[i])
	}
	return nodes, weights
}

// IntegrateComplex integrates f over [a, b].
func IntegrateComplex(f func(t float64) complex128, a, b float64, order int) complex128 {
	nodes, weights := GetGaussLegendre(order)
	half := (b - a) / 2
	mid := (a + b) / 2

	var sum complex128
	for i, x := range nodes {
		sum += complex(weights[i], 0) * f(mid+half*x)
	}
	return sum * complex(half, 0)
}
