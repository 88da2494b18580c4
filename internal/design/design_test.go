package design

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// 300x500 beam, f'c = 28 MPa, fy = 420 MPa: d = 440 mm
func baseInput(mu float64) Input {
	return Input{
		Fc:              28,
		Fy:              420,
		Width:           300,
		Height:          500,
		Cover:           40,
		StirrupDiameter: 10,
		BarDiameter:     20,
		Mu:              mu,
	}.WithDefaults()
}

func Test_flexure01(tst *testing.T) {
	chk.PrintTitle("flexure01. required steel satisfies the moment equation")

	in := baseInput(150)
	d := EffectiveDepth(in.Height, in.Cover, in.StirrupDiameter, in.BarDiameter)
	chk.Float64(tst, "d", 1e-15, d, 440)

	as, err := RequiredSteel(in.Mu, 0.9, in.Fc, in.Fy, in.Width, d)
	if err != nil {
		tst.Errorf("RequiredSteel failed:\n%v", err)
		return
	}
	mu := 0.9 * as * in.Fy * (d - as*in.Fy/(1.7*in.Fc*in.Width)) / 1e6
	chk.Float64(tst, "Mu", 1e-9, mu, 150)

	lim := SteelLimits(in.Fc, in.Fy, in.Width, d)
	chk.Float64(tst, "As,min", 1e-9, lim.AsMin, 1.4/420*300*440)
	chk.Float64(tst, "As,max", 1e-9, lim.AsMax, 0.85*0.85*28.0/420*0.375*300*440)

	// small demand is governed by the minimum
	r, err := Flexure(baseInput(10), d)
	if err != nil {
		tst.Errorf("Flexure failed:\n%v", err)
		return
	}
	chk.Float64(tst, "As governed by As,min", 1e-12, r.AsRequired, r.AsMin)
}

func Test_flexure02(tst *testing.T) {
	chk.PrintTitle("flexure02. round trip: provided capacity covers the demand")

	for _, mu := range []float64{50, 100, 150, 200, 250, 300} {
		r, err := Design(baseInput(mu))
		if err != nil {
			tst.Errorf("Design(Mu=%g) failed:\n%v", mu, err)
			continue
		}
		if r.Flexure.Doubly {
			continue
		}
		if r.AsProvided() < r.AsRequired() {
			tst.Errorf("Mu=%g: As,prov = %g < As,req = %g", mu, r.AsProvided(), r.AsRequired())
		}
		if r.Capacity.PhiMn < mu {
			tst.Errorf("Mu=%g: φMn = %g is below the demand", mu, r.Capacity.PhiMn)
		}
		if !r.Adequate() || r.CapacityRatio < 1 {
			tst.Errorf("Mu=%g: design flagged inadequate (ratio %g)", mu, r.CapacityRatio)
		}
	}
}

func Test_flexure03(tst *testing.T) {
	chk.PrintTitle("flexure03. doubly reinforced")

	in := baseInput(400)
	r, err := Flexure(in, 440)
	if err != nil {
		tst.Errorf("Flexure failed:\n%v", err)
		return
	}
	if !r.Doubly {
		tst.Errorf("Mu = 400 kN·m should need compression steel")
		return
	}
	chk.Float64(tst, "d'", 1e-15, r.CompressionDepth, 60)
	chk.Float64(tst, "Mu1+Mu2", 1e-9, r.Mu1+r.Mu2, 400)

	// c = a/β1 at the tension-controlled limit is 0.375·d = 165 mm
	εsc := 0.003 * (165 - 60) / 165.0
	chk.Float64(tst, "εs'", 1e-12, r.CompressionStrain, εsc)
	if r.CompressionYielded {
		tst.Errorf("compression steel should not yield (εs' = %g)", r.CompressionStrain)
	}
	chk.Float64(tst, "fs'", 1e-9, r.CompressionStress, εsc*200000)
	if r.AsRequired <= r.AsMax || r.AsCompression <= 0 {
		tst.Errorf("unexpected steel areas: As = %g, As' = %g", r.AsRequired, r.AsCompression)
	}

	full, err := Design(in)
	if err != nil {
		tst.Errorf("Design failed:\n%v", err)
		return
	}
	if full.Compression == nil || full.Compression.AsProvided < full.Flexure.AsCompression {
		tst.Errorf("compression bars do not cover As' = %g", full.Flexure.AsCompression)
	}
	if full.Capacity.PhiMn < 400 {
		tst.Errorf("φMn = %g is below the demand", full.Capacity.PhiMn)
	}
}

func Test_flexure04(tst *testing.T) {
	chk.PrintTitle("flexure04. infeasible flexure")

	_, err := Design(baseInput(1000))
	if !errors.Is(err, ErrSectionTooSmall) {
		tst.Errorf("expected ErrSectionTooSmall, got %v", err)
	}
	var se *StepError
	if !errors.As(err, &se) || se.Step != "flexure" {
		tst.Errorf("expected a flexure StepError, got %v", err)
	}

	// compression bars sit below the neutral axis of a shallow section
	in := baseInput(80)
	in.Height, in.Cover, in.BarDiameter, in.CompressionBarDiameter = 250, 50, 25, 32
	_, err = Design(in)
	if !errors.Is(err, ErrCompressionSteelIneffective) {
		tst.Errorf("expected ErrCompressionSteelIneffective, got %v", err)
	}
}

func Test_flexure05(tst *testing.T) {
	chk.PrintTitle("flexure05. round trip at the depth of the selected bars")

	known := []error{ErrSectionTooSmall, ErrBarsDoNotFit, ErrCompressionSteelIneffective,
		ErrCapacityNotMet, ErrDepthNotConverged}
	layered := false
	for b := 200.0; b <= 400; b += 10 {
		for mu := 50.0; mu <= 600; mu += 25 {
			in := baseInput(mu)
			in.Width = b
			r, err := Design(in)
			if err != nil {
				ok := false
				for _, e := range known {
					ok = ok || errors.Is(err, e)
				}
				if !ok {
					tst.Errorf("b=%g Mu=%g: unexpected error %v", b, mu, err)
				}
				continue
			}
			layered = layered || r.Bars.Layers > 1

			d := TensionDepth(r.Input, r.Bars)
			if math.Abs(r.EffectiveDepth-d) > 1e-9 {
				tst.Errorf("b=%g Mu=%g: d = %g but the bars sit at %g", b, mu, r.EffectiveDepth, d)
			}
			if r.EffectiveDepth < r.Flexure.EffectiveDepth-1e-9 {
				tst.Errorf("b=%g Mu=%g: bars at d = %g are shallower than the design depth %g",
					b, mu, r.EffectiveDepth, r.Flexure.EffectiveDepth)
			}

			sec := Section{Width: b, Depth: d, Fc: in.Fc, Fy: in.Fy, As: r.Bars.AsProvided}
			if r.Compression != nil {
				sec.AsCompression = r.Compression.AsProvided
				sec.CompressionDepth = CompressionDepth(r.Input, *r.Compression)
			}
			c, err := VerifyCapacity(sec)
			if err != nil {
				tst.Errorf("b=%g Mu=%g: VerifyCapacity failed: %v", b, mu, err)
				continue
			}
			if c.PhiMn < mu {
				tst.Errorf("b=%g Mu=%g: φMn = %g at the bar centroid is below the demand", b, mu, c.PhiMn)
			}
			chk.Float64(tst, "reported φMn", 1e-9, r.Capacity.PhiMn, c.PhiMn)
		}
	}
	if !layered {
		tst.Errorf("no design used more than one layer")
	}

	// 3-Ø36 in two layers: centroid 72/3 mm above the bottom layer
	in := baseInput(300)
	l := BarLayout{Diameter: 36, BarArea: 1017.88, Count: 3, Layers: 2, PerLayer: 2}
	chk.Float64(tst, "d of two layers", 1e-12, TensionDepth(in, l), 500-40-10-18-24)
}

func Test_bars01(tst *testing.T) {
	chk.PrintTitle("bars01. selection")

	in := baseInput(150)
	// clear width 200 mm holds three Ø36 bars at 36 mm spacing
	n, s := BarsPerLayer(AvailableWidth(in), 36, in.MinClearSpacing)
	chk.Int(tst, "n", n, 3)
	chk.Float64(tst, "s", 1e-15, s, 36)

	l, err := SelectBars(1500, in)
	if err != nil {
		tst.Errorf("SelectBars failed:\n%v", err)
		return
	}
	chk.Float64(tst, "db", 1e-15, l.Diameter, 36)
	chk.Int(tst, "count", l.Count, 2)
	chk.Int(tst, "layers", l.Layers, 1)
	chk.Float64(tst, "As,prov", 1e-9, l.AsProvided, 2*1017.88)

	// side bars: two Ø12 side bars plus main bars in one layer
	in.UseSideBars = true
	in.SideBarDiameter = 12
	l, err = SelectBars(1500, in)
	if err != nil {
		tst.Errorf("SelectBars with side bars failed:\n%v", err)
		return
	}
	chk.Int(tst, "side bars", l.SideBars, 2)
	chk.Int(tst, "layers", l.Layers, 1)
	if l.AsProvided < 1500 || l.Count > l.PerLayer {
		tst.Errorf("side bar layout under-provides or overflows: %v", l)
	}

	// at least two bars, even for tiny areas
	in.UseSideBars = false
	l, _ = SelectBars(10, in)
	chk.Int(tst, "minimum count", l.Count, 2)
}

func Test_bars02(tst *testing.T) {
	chk.PrintTitle("bars02. wider sections keep fitting")

	in := baseInput(0)
	fitted := false
	for b := 150.0; b <= 500; b += 10 {
		in.Width = b
		_, err := SelectBars(1500, in)
		if err != nil && !errors.Is(err, ErrBarsDoNotFit) {
			tst.Errorf("b=%g: unexpected error %v", b, err)
			return
		}
		if fitted && err != nil {
			tst.Errorf("b=%g: layout no longer fits after fitting a narrower section", b)
		}
		fitted = fitted || err == nil
	}
	if !fitted {
		tst.Errorf("no width fitted")
	}

	in.Width = 150
	if _, err := SelectBars(1500, in); !errors.Is(err, ErrBarsDoNotFit) {
		tst.Errorf("expected ErrBarsDoNotFit for b = 150 mm, got %v", err)
	}
}

func Test_shear01(tst *testing.T) {
	chk.PrintTitle("shear01. stirrups")

	in := baseInput(150)
	in.Vu = 150
	r, err := DesignShear(in, 440)
	if err != nil {
		tst.Errorf("DesignShear failed:\n%v", err)
		return
	}
	vc := 0.17 * math.Sqrt(28) * 300 * 440 / 1e3
	chk.Float64(tst, "Vc", 1e-9, r.Vc, vc)
	chk.Float64(tst, "Vs", 1e-9, r.Vs, 150/0.75-vc)
	chk.Float64(tst, "Av", 1e-12, r.Av, 2*78.54)
	chk.Float64(tst, "s", 1e-12, r.Spacing, 220) // d/2 governs
	if r.PhiVn < in.Vu {
		tst.Errorf("φVn = %g below Vu", r.PhiVn)
	}

	in.Vu = 30
	r, _ = DesignShear(in, 440)
	if r.Required {
		tst.Errorf("Vu below 0.5·φ·Vc should not need stirrups")
	}

	in.Vu = 1000
	if _, err = DesignShear(in, 440); !errors.Is(err, ErrShearTooHigh) {
		tst.Errorf("expected ErrShearTooHigh, got %v", err)
	}
}

func Test_torsion01(tst *testing.T) {
	chk.PrintTitle("torsion01. closed stirrups and longitudinal steel")

	in := baseInput(150)
	in.Vu, in.Tu = 150, 20
	sh, _ := DesignShear(in, 440)
	r, err := DesignTorsion(in, 440, sh)
	if err != nil {
		tst.Errorf("DesignTorsion failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Aoh", 1e-9, r.Aoh, 210*410)
	chk.Float64(tst, "ph", 1e-9, r.Ph, 2*(210+410))
	chk.Float64(tst, "At/s", 1e-12, r.AtOverS, 20e6/(0.75*2*0.85*210*410*420))
	if r.Neglectable {
		tst.Errorf("Tu = 20 kN·m is above the threshold %g", r.Threshold)
	}
	if r.CombinedSpacing > r.Spacing || r.CombinedSpacing > sh.Spacing {
		tst.Errorf("combined spacing %g exceeds a single demand (%g, %g)", r.CombinedSpacing, r.Spacing, sh.Spacing)
	}
	if r.LongitudinalArea <= 0 {
		tst.Errorf("longitudinal torsion steel missing")
	}

	in.Tu = 2
	r, _ = DesignTorsion(in, 440, sh)
	if !r.Neglectable {
		tst.Errorf("Tu = 2 kN·m is below the threshold %g", r.Threshold)
	}

	in.Tu = 200
	if _, err = Design(in); !errors.Is(err, ErrTorsionTooHigh) {
		tst.Errorf("expected ErrTorsionTooHigh, got %v", err)
	}
}

func Test_verify01(tst *testing.T) {
	chk.PrintTitle("verify01. neutral axis by equilibrium")

	s := Section{Width: 300, Depth: 440, Fc: 28, Fy: 420, As: 1500}
	c, err := VerifyCapacity(s)
	if err != nil {
		tst.Errorf("VerifyCapacity failed:\n%v", err)
		return
	}
	a := 1500 * 420 / (0.85 * 28 * 300)
	chk.Float64(tst, "a", 1e-6, c.A, a)
	chk.Float64(tst, "φ", 1e-15, c.Phi, 0.9)
	chk.Float64(tst, "Mn", 1e-6, c.Mn, 1500*420*(440-a/2)/1e6)
	chk.Float64(tst, "T = C", 1e-5, c.T, c.Cc+c.Cs)

	// heavily reinforced: compression controlled
	s.As = 6000
	c, _ = VerifyCapacity(s)
	if c.Phi >= 0.9 || c.EpsilonT >= 0.005 {
		tst.Errorf("expected reduced φ, got φ = %g at εt = %g", c.Phi, c.EpsilonT)
	}
	chk.Float64(tst, "T = C heavy", 1e-5, c.T, c.Cc+c.Cs)

	// compression steel raises the tensile strain
	s.AsCompression, s.CompressionDepth = 1500, 60
	cd, _ := VerifyCapacity(s)
	if cd.EpsilonT <= c.EpsilonT {
		tst.Errorf("compression steel should reduce c: εt %g vs %g", cd.EpsilonT, c.EpsilonT)
	}
	chk.Float64(tst, "T = C doubly", 1e-5, cd.T, cd.Cc+cd.Cs)

	if _, err = VerifyCapacity(Section{Width: 300, Depth: 440, Fc: 28, Fy: 420}); err == nil {
		tst.Errorf("zero tension steel accepted")
	}
}

func Test_input01(tst *testing.T) {
	chk.PrintTitle("input01. validation")

	in := baseInput(100)
	in.Fc = 0
	_, err := Design(in)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "fc" {
		tst.Errorf("expected a validation error on fc, got %v", err)
	}

	in = baseInput(100)
	in.Height = 60
	if _, err = Design(in); !errors.As(err, &verr) {
		tst.Errorf("expected a validation error for a non-positive d, got %v", err)
	}

	in = baseInput(-5)
	if _, err = Design(in); !errors.As(err, &verr) {
		tst.Errorf("expected a validation error for negative Mu, got %v", err)
	}
}

func Test_bars03(tst *testing.T) {
	chk.PrintTitle("bars03. compression bars must fit")

	in := baseInput(0)
	in.CompressionBarDiameter = 25
	l, err := CompressionBars(1200, in)
	if err != nil {
		tst.Errorf("CompressionBars failed:\n%v", err)
		return
	}
	// 200 mm clear width holds four Ø25 bars at 25 mm
	chk.Int(tst, "count", l.Count, 3)
	chk.Int(tst, "per layer", l.PerLayer, 3)
	chk.Int(tst, "layers", l.Layers, 1)
	chk.Float64(tst, "d'", 1e-12, CompressionDepth(in, l), 40+10+12.5)

	in.Width = 120
	if _, err := CompressionBars(500, in); !errors.Is(err, ErrBarsDoNotFit) {
		tst.Errorf("expected ErrBarsDoNotFit for a 20 mm clear width, got %v", err)
	}
	in.Width = 300
	in.MaxLayers = 1
	if _, err := CompressionBars(5000, in); !errors.Is(err, ErrBarsDoNotFit) {
		tst.Errorf("expected ErrBarsDoNotFit above the layer limit, got %v", err)
	}
}
