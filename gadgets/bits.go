package gadgets

import (
	"fmt"
	"math/big"

	"zk-falcon/cs"
)

// Decompose splits a into width bits, least significant first. Each bit is
// a constrained witness and a single linear constraint ties the
// reconstruction back to a, so a value needing more than width bits makes
// the system unsatisfiable rather than being truncated.
func Decompose(sys cs.System, a cs.Lin, width int) ([]cs.Bool, error) {
	if width < 1 {
		return nil, fmt.Errorf("gadgets: decomposition width %d", width)
	}
	if width >= sys.FieldModulus().BitLen() {
		return nil, fmt.Errorf("gadgets: decomposition width %d exceeds the native field", width)
	}
	av := cs.Eval(sys, a)
	bits := make([]cs.Bool, width)
	recon := cs.Zero()
	for i := 0; i < width; i++ {
		b := cs.AllocBit(sys, av.Bit(i) == 1)
		bits[i] = b
		recon = recon.AddScaled(b.L, new(big.Int).Lsh(one, uint(i)))
	}
	cs.AssertEq(sys, a, recon)
	return bits, nil
}
