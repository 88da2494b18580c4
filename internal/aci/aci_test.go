package aci

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_beta1(tst *testing.T) {
	chk.PrintTitle("beta1")

	chk.Float64(tst, "β1(21)", 1e-15, Beta1(21), 0.85)
	chk.Float64(tst, "β1(28)", 1e-15, Beta1(28), 0.85)
	chk.Float64(tst, "β1(35)", 1e-15, Beta1(35), 0.80)
	chk.Float64(tst, "β1(70)", 1e-15, Beta1(70), 0.65)
}

func Test_phi(tst *testing.T) {
	chk.PrintTitle("phi")

	chk.Float64(tst, "φ tension-controlled", 1e-15, Phi(0.006), 0.90)
	chk.Float64(tst, "φ at 0.005", 1e-15, Phi(0.005), 0.90)
	chk.Float64(tst, "φ compression-controlled", 1e-15, Phi(0.001), 0.65)
	chk.Float64(tst, "φ transition", 1e-12, Phi(0.0035), 0.775)

	if Region(0.0035) != Transition {
		tst.Errorf("region of 0.0035 should be transition, got %s", Region(0.0035))
	}
	if Region(0.01) != TensionControlled {
		tst.Errorf("region of 0.01 should be tension-controlled")
	}
}

func Test_rho(tst *testing.T) {
	chk.PrintTitle("rho")

	// 1.4/fy governs for f'c = 28
	chk.Float64(tst, "ρmin(28,420)", 1e-15, RhoMin(28, 420), 1.4/420.0)
	// 0.25√f'c/fy governs for f'c = 40
	chk.Float64(tst, "ρmin(40,420)", 1e-15, RhoMin(40, 420), 0.25*6.324555320336759/420.0)

	rhoMax := RhoMax(28, 420)
	chk.Float64(tst, "ρmax(28,420)", 1e-12, rhoMax, 0.85*0.85*28.0/420.0*0.375)
	if rhoMax >= RhoBalanced(28, 420) {
		tst.Errorf("ρmax must be below ρbal")
	}
}

func Test_combinations(tst *testing.T) {
	chk.PrintTitle("combinations")

	effects := LoadEffects{Dead: 50, Live: 30}
	u, combo := Governing(effects, LoadCombinations)
	chk.Float64(tst, "Mu", 1e-12, u, 1.2*50+1.6*30)
	if combo.ID != "5.3.1b-Lr" {
		tst.Errorf("governing combination should be 5.3.1b-Lr, got %s", combo.ID)
	}

	// dead load only: 1.4D governs
	u, combo = Governing(LoadEffects{Dead: 10}, GravityCombinations)
	chk.Float64(tst, "Mu dead", 1e-12, u, 14)
	if combo.ID != "5.3.1a" {
		tst.Errorf("governing combination should be 5.3.1a, got %s", combo.ID)
	}

	// alternatives are not summed
	c := LoadCombination{Dead: 1.2, Roof: 0.5, Snow: 0.5, Rain: 0.5}
	chk.Float64(tst, "alternatives", 1e-12, c.Factor(LoadEffects{Roof: 10, Snow: 20, Rain: 5}), 10)
}
