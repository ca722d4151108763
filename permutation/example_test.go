// SPDX-License-Identifier: MIT
package permutation_test

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/permutation"
)

// ExampleNew builds rotor I of the Enigma I and follows the letter A forward
// and backward through its wiring.
func ExampleNew() {
	az := alphabet.MustNew(alphabet.Upper)
	p, err := permutation.New("(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)", az)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fwd, _ := p.PermuteSymbol('A')
	back, _ := p.InvertSymbol('A')
	fmt.Printf("A -> %c, %c -> A, derangement=%v\n", fwd, back, p.IsDerangement())
	// Output: A -> E, U -> A, derangement=false
}
