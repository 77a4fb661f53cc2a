/*
 * charge.go, part of goelectro.
 *
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
 * goElectro is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package electro

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"
)

//Obtaining the total charge passed through a cell, which is what
//Faraday's law actually wants, from the quantities one measures.

//ChargeFromCurrent returns the total charge in coulombs for a constant
//current in amperes held for the given time in seconds.
func ChargeFromCurrent(current, seconds float64) float64 {
	return current * seconds
}

//ChargeFromAh returns the charge in coulombs for a capacity given in
//ampere-hours, the unit battery and plating-bath instruments report.
func ChargeFromAh(ah float64) float64 {
	return ah * Ah2C
}

//ChargeFromTrace integrates a sampled current trace over time with the
//trapezoidal rule and returns the total charge in coulombs. times must be
//strictly increasing and of the same length as currents, with at least
//two points.
func ChargeFromTrace(times, currents []float64) (float64, error) {
	if len(times) != len(currents) {
		return 0, fmt.Errorf("ChargeFromTrace: Mismatched time and current sample numbers: %d, %d", len(times), len(currents))
	}
	if len(times) < 2 {
		return 0, fmt.Errorf("ChargeFromTrace: At least 2 samples needed, got %d", len(times))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return 0, fmt.Errorf("ChargeFromTrace: Times are not strictly increasing at sample %d", i)
		}
	}
	return integrate.Trapezoidal(times, currents), nil
}
