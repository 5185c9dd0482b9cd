/*
Package qket provides Ket, a two-level quantum state over the computational
basis {|0⟩, |1⟩} with complex amplitudes.

A Ket is a plain value. Addition and scalar multiplication always return a
new Ket and never touch their operands, so kets can be shared freely between
goroutines without locking.

	psi := qket.Scale(0.6, qket.KetZero).Add(qket.KetOne.Scale(0.8))
	psi.Equal(qket.Ket{First: 0.6, Second: 0.8}) // true
*/
package qket
