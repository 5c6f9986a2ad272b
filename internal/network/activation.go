package network

import "math"

// Sigmoid is the logistic function 1/(1+e^(-x)).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidPrime is the first derivative of Sigmoid.
func SigmoidPrime(x float64) float64 {
	s := Sigmoid(x)
	return s * (1.0 - s)
}
