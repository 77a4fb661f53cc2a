/*
 * faraday_test.go, part of goelectro.
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package electro

import "fmt"
import "math"
import "testing"

//TestFaradayMass tests the plain, no-collaborators calculation against the
//copper electrolysis textbook case: Cu2+ + 2e- -> Cu, where passing
//~1227.7 C deposits 0.404 g of copper.
func TestFaradayMass(Te *testing.T) {
	m := FaradayMass(63.5, 1227.72, 2)
	fmt.Println("Cu deposited:", m, "g")
	if math.Abs(m-0.404) > 1e-3 {
		Te.Errorf("Copper deposition: got %v, want 0.404", m)
	}
	//passing exactly valence*F coulombs must deposit one mole
	m = FaradayMass(63.546, 2*Faraday, 2)
	if math.Abs(m-63.546)/63.546 > 1e-12 {
		Te.Errorf("One mole worth of charge deposited %v g, want 63.546", m)
	}
}

//Zero charge gives exactly zero mass, no tolerance involved.
func TestFaradayMassZeroCharge(Te *testing.T) {
	m := FaradayMass(63.5, 0, 2)
	if m != 0 {
		Te.Errorf("Zero charge deposited %v g, want exactly 0", m)
	}
}

//A zero valence is not masked: the division yields the float64 infinity.
func TestFaradayMassZeroValence(Te *testing.T) {
	m := FaradayMass(63.5, 100, 0)
	fmt.Println("Zero-valence result:", m)
	if !math.IsInf(m, 1) {
		Te.Errorf("Zero valence gave %v, want +Inf", m)
	}
	if m == 0 {
		Te.Error("Zero valence was silently coerced to 0")
	}
}

func TestFaradayMassLinearity(Te *testing.T) {
	base := FaradayMass(63.5, 100, 2)
	double := FaradayMass(63.5, 200, 2)
	if math.Abs(double-2*base)/base > 1e-12 {
		Te.Errorf("Mass is not linear in charge: %v vs %v", double, 2*base)
	}
	prev := 0.0
	for _, q := range []float64{10, 100, 1000, 10000} {
		m := FaradayMass(63.5, q, 2)
		if m <= prev {
			Te.Errorf("Mass not strictly increasing in charge at %v C", q)
		}
		prev = m
	}
}

func TestFaradayMassValenceInverse(Te *testing.T) {
	prev := math.Inf(1)
	for v := 1.0; v <= 4; v++ {
		m := FaradayMass(63.5, 1000, v)
		if m >= prev {
			Te.Errorf("Mass not strictly decreasing in valence at v=%v", v)
		}
		prev = m
	}
}

//TestFaradayMassUnits checks that a units collaborator rescales the
//literal constant by its coulomb/mole ratio, and that the rescaling
//commutes with the rest of the formula.
func TestFaradayMassUnits(Te *testing.T) {
	bare := FaradayMass(63.5, 1227.72, 2)
	si := FaradayMassWith(63.5, 1227.72, 2, nil, SI)
	if si != bare {
		Te.Errorf("SI units changed the result: %v vs %v", si, bare)
	}
	cgs := FaradayMassWith(63.5, 1227.72, 2, nil, CGS)
	scale := CGS.Coulomb() / CGS.Mole()
	fmt.Println("bare:", bare, "cgs:", cgs, "scale:", scale)
	if math.Abs(cgs*scale-bare)/bare > 1e-12 {
		Te.Errorf("Units rescaling does not commute: %v * %v != %v", cgs, scale, bare)
	}
}

//TestFaradayMassConstants checks the constants-provider branch, and that
//an explicit provider is taken verbatim, ignoring any units collaborator.
func TestFaradayMassConstants(Te *testing.T) {
	bare := FaradayMass(63.5, 1227.72, 2)
	codata := FaradayMassWith(63.5, 1227.72, 2, CODATA{}, nil)
	fmt.Println("CODATA Faraday constant:", CODATA{}.FaradayConstant())
	if math.Abs(codata-bare)/bare > 1e-6 {
		Te.Errorf("CODATA result too far from literal-constant result: %v vs %v", codata, bare)
	}
	//the provider is pre-scaled: units must be ignored in this branch
	both := FaradayMassWith(63.5, 1227.72, 2, CODATA{}, CGS)
	if both != codata {
		Te.Errorf("Units were not ignored with an explicit constants provider: %v vs %v", both, codata)
	}
}

//TestNernst checks the Nernst equation against the usual ~59.2 mV/decade
//slope at 25 C for a one-electron half-cell.
func TestNernst(Te *testing.T) {
	e := NernstPotential(0, 1, 298.15, 10)
	fmt.Println("Nernst potential at Q=10:", e, "V")
	if math.Abs(e+0.05916) > 1e-4 {
		Te.Errorf("Nernst potential: got %v, want -0.05916", e)
	}
	if NernstPotential(0.34, 2, 298.15, 1) != 0.34 {
		Te.Error("Unit reaction quotient should give the standard potential back")
	}
	e2 := NernstPotential(0, 1, 298.15, 10, CODATA{})
	if math.Abs(e2-e)/math.Abs(e) > 1e-6 {
		Te.Errorf("CODATA Nernst potential too far from literal-constant one: %v vs %v", e2, e)
	}
}

//With a CODATA provider the Nernst equation must take both its Faraday
//constant and its gas constant, not mix provider and literal values.
func TestNernstCODATA(Te *testing.T) {
	c := CODATA{}
	want := 0.0 - (c.GasConstantValue()*298.15)/(1*c.FaradayConstant())*math.Log(10)
	got := NernstPotential(0, 1, 298.15, 10, c)
	if got != want {
		Te.Errorf("CODATA Nernst potential: got %v, want %v", got, want)
	}
	fmt.Println("CODATA gas constant:", c.GasConstantValue())
	if math.Abs(c.GasConstantValue()-GasConstant) > 1e-4 {
		Te.Errorf("CODATA gas constant %v too far from the literal %v", c.GasConstantValue(), GasConstant)
	}
}

func TestDerivedQuantities(Te *testing.T) {
	z := ElectrochemicalEquivalent(107.87, 1) //silver
	if math.Abs(z-1.118e-3) > 1e-6 {
		Te.Errorf("Electrochemical equivalent of Ag: got %v, want ~1.118e-3", z)
	}
	r := DepositionRate(107.87, 1, 2) //2 A
	if math.Abs(r-2*z) > 1e-15 {
		Te.Errorf("Deposition rate: got %v, want %v", r, 2*z)
	}
	theo := FaradayMass(63.546, 1000, 2)
	eff := CurrentEfficiency(0.9*theo, 63.546, 1000, 2)
	if math.Abs(eff-0.9) > 1e-12 {
		Te.Errorf("Current efficiency: got %v, want 0.9", eff)
	}
}
