// ket.go
package qket

import "fmt"

const (
	ComplexZero complex128 = 0 + 0i
	ComplexOne  complex128 = 1 + 0i
)

/*
Ket is an unnormalized two-level quantum state. First holds the amplitude of
|0⟩ and Second the amplitude of |1⟩. Nothing forces |First|² + |Second|² to
be 1.
*/
type Ket struct {
	First  complex128 // |0⟩ amplitude
	Second complex128 // |1⟩ amplitude
}

var (
	// KetZero is the basis state |0⟩.
	KetZero = Ket{First: ComplexOne, Second: ComplexZero}
	// KetOne is the basis state |1⟩.
	KetOne = Ket{First: ComplexZero, Second: ComplexOne}
)

/*
Equal reports whether both amplitudes of k and other are exactly equal.
Comparison is plain IEEE equality on each real and imaginary part, so a NaN
component never matches and -0 matches +0. It agrees with k == other.
*/
func (k Ket) Equal(other Ket) bool {
	return k.First == other.First && k.Second == other.Second
}

// Add returns the component-wise sum k + other.
func (k Ket) Add(other Ket) Ket {
	return Ket{
		First:  k.First + other.First,
		Second: k.Second + other.Second,
	}
}

// Scale returns k with both amplitudes multiplied by c (ket times scalar).
func (k Ket) Scale(c complex128) Ket {
	return scale(c, k)
}

// Scale returns k with both amplitudes multiplied by c (scalar times ket).
func Scale(c complex128, k Ket) Ket {
	return scale(c, k)
}

// Both call orders go through here so they round identically.
func scale(c complex128, k Ket) Ket {
	return Ket{
		First:  c * k.First,
		Second: c * k.Second,
	}
}

// String renders the ket in Dirac notation, e.g. "(1+0i)|0⟩ + (0+0i)|1⟩".
func (k Ket) String() string {
	return fmt.Sprintf("%v|0⟩ + %v|1⟩", k.First, k.Second)
}
