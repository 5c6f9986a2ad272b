package trainer

import (
	"gonum.org/v1/gonum/mat"

	"github.com/alvaroabascar/neurotic/internal/network"
)

// trace holds every intermediate of one example's forward and backward
// pass. Reusing a trace across examples avoids reallocating the
// per-layer vectors.
type trace struct {
	// zs[l] is the weighted input of layer l+1, as[0] is the example
	// itself and as[l+1] its activation at layer l+1.
	zs []*mat.VecDense
	as []*mat.VecDense

	gradW []*mat.Dense
	gradB []*mat.VecDense
}

func newTrace(net *network.Network) *trace {
	sizes := net.Sizes()
	pairs := len(sizes) - 1

	tr := &trace{
		zs:    make([]*mat.VecDense, pairs),
		as:    make([]*mat.VecDense, len(sizes)),
		gradW: make([]*mat.Dense, pairs),
		gradB: make([]*mat.VecDense, pairs),
	}
	tr.as[0] = mat.NewVecDense(sizes[0], nil)
	for l := 0; l < pairs; l++ {
		tr.zs[l] = mat.NewVecDense(sizes[l+1], nil)
		tr.as[l+1] = mat.NewVecDense(sizes[l+1], nil)
		tr.gradW[l] = mat.NewDense(sizes[l+1], sizes[l], nil)
		tr.gradB[l] = mat.NewVecDense(sizes[l+1], nil)
	}
	return tr
}

// forward runs x through net, recording weighted inputs and
// activations layer by layer.
func (tr *trace) forward(net *network.Network, x mat.Vector) {
	tr.as[0].CopyVec(x)
	for l := 0; l < len(tr.zs); l++ {
		z := tr.zs[l]
		z.MulVec(net.Weight(l), tr.as[l])
		z.AddVec(z, net.Bias(l))

		a := tr.as[l+1]
		for i := 0; i < z.Len(); i++ {
			a.SetVec(i, network.Sigmoid(z.AtVec(i)))
		}
	}
}

// backward propagates the quadratic-cost error for label y back
// through the recorded pass, filling gradW and gradB. It returns the
// example's cost. forward must have run first.
func (tr *trace) backward(net *network.Network, y mat.Vector) float64 {
	last := len(tr.zs) - 1
	out := tr.as[last+1]

	delta := mat.NewVecDense(out.Len(), nil)
	delta.SubVec(out, y)
	cost := 0.5 * mat.Dot(delta, delta)
	for i := 0; i < delta.Len(); i++ {
		delta.SetVec(i, delta.AtVec(i)*network.SigmoidPrime(tr.zs[last].AtVec(i)))
	}

	for l := last; ; l-- {
		tr.gradB[l].CopyVec(delta)
		tr.gradW[l].Outer(1, delta, tr.as[l])
		if l == 0 {
			return cost
		}

		below := mat.NewVecDense(tr.as[l].Len(), nil)
		below.MulVec(net.Weight(l).T(), delta)
		for i := 0; i < below.Len(); i++ {
			below.SetVec(i, below.AtVec(i)*network.SigmoidPrime(tr.zs[l-1].AtVec(i)))
		}
		delta = below
	}
}
