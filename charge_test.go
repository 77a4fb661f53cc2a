/*
 * charge_test.go, part of goelectro.
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

func TestChargeFromCurrent(Te *testing.T) {
	if q := ChargeFromCurrent(2, 3600); q != 7200 {
		Te.Errorf("2 A for an hour: got %v C, want 7200", q)
	}
	if q := ChargeFromAh(1.5); q != 5400 {
		Te.Errorf("1.5 Ah: got %v C, want 5400", q)
	}
}

func TestChargeFromTrace(Te *testing.T) {
	//constant 0.5 A over 10 s
	times := make([]float64, 11)
	currents := make([]float64, 11)
	for i := range times {
		times[i] = float64(i)
		currents[i] = 0.5
	}
	q, err := ChargeFromTrace(times, currents)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(q-5) > 1e-12 {
		Te.Errorf("Constant trace: got %v C, want 5", q)
	}
	//a linear ramp is integrated exactly by the trapezoidal rule
	for i := range times {
		currents[i] = times[i]
	}
	q, err = ChargeFromTrace(times, currents)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(q-50) > 1e-12 {
		Te.Errorf("Ramp trace: got %v C, want 50", q)
	}
	fmt.Println("Ramp trace charge:", q, "C")
}

func TestChargeFromTraceErrors(Te *testing.T) {
	if _, err := ChargeFromTrace([]float64{0, 1}, []float64{1}); err == nil {
		Te.Error("Mismatched lengths not caught")
	}
	if _, err := ChargeFromTrace([]float64{0}, []float64{1}); err == nil {
		Te.Error("Single-sample trace not caught")
	}
	if _, err := ChargeFromTrace([]float64{0, 2, 1}, []float64{1, 1, 1}); err == nil {
		Te.Error("Non-increasing times not caught")
	}
}

//TestFitDeposition builds exact Faraday-law data for copper and checks that
//the fit recovers the electrochemical equivalent and the valence.
func TestFitDeposition(Te *testing.T) {
	z := ElectrochemicalEquivalent(63.546, 2)
	charges := []float64{100, 200, 300, 400, 500}
	masses := make([]float64, len(charges))
	for i, q := range charges {
		masses[i] = z * q
	}
	zfit, err := FitDeposition(charges, masses)
	if err != nil {
		Te.Error(err)
	}
	fmt.Println("Fitted electrochemical equivalent:", zfit, "g/C")
	if math.Abs(zfit-z)/z > 1e-9 {
		Te.Errorf("Fitted equivalent %v, want %v", zfit, z)
	}
	v, err := EstimateValence(63.546, charges, masses)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(v-2) > 1e-6 {
		Te.Errorf("Estimated valence %v, want 2", v)
	}
	if _, err := FitDeposition(charges, masses[:2]); err == nil {
		Te.Error("Mismatched lengths not caught")
	}
}
