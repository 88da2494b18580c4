package section

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_rectangle01(tst *testing.T) {
	chk.PrintTitle("rectangle01. 300x500")

	p, err := Rectangle(300, 500)
	if err != nil {
		tst.Errorf("Rectangle failed:\n%v", err)
		return
	}
	chk.Float64(tst, "A", 1e-9, p.Area, 150000)
	chk.Float64(tst, "I", 1e-3, p.MomentOfInertia, 300*500*500*500/12.0)
	chk.Float64(tst, "S", 1e-6, p.SectionModulus, 300*500*500/6.0)
	chk.Float64(tst, "Ip", 1e-3, p.PolarMomentOfInertia, 2*p.MomentOfInertia)

	// a = 500, b = 300, r = 0.6
	r := 0.6
	J := 500 * 300.0 * 300 * 300 * (1.0/3 - 0.21*r*(1-r*r*r*r/12))
	chk.Float64(tst, "J", 1e-3, p.TorsionalConstant, J)
}

func Test_rectangle02(tst *testing.T) {
	chk.PrintTitle("rectangle02. symmetry of J")

	chk.Float64(tst, "J(w,h) = J(h,w)", 1e-6, TorsionalConstant(250, 600), TorsionalConstant(600, 250))

	// square: J ≈ 0.1406 a⁴
	chk.Float64(tst, "J square", 1e-3, TorsionalConstant(1, 1), 1.0/3-0.21*(1-1.0/12))
}

func Test_rectangle03(tst *testing.T) {
	chk.PrintTitle("rectangle03. invalid dimensions")

	for _, dims := range [][2]float64{{0, 500}, {300, 0}, {-1, 500}, {300, -5}} {
		_, err := Rectangle(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			tst.Errorf("Rectangle(%g, %g) should fail with ErrInvalidDimensions, got %v", dims[0], dims[1], err)
		}
	}
}
