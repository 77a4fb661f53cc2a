/*
 * deposition.go, part of goelectro.
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

	"gonum.org/v1/gonum/stat"
)

//Recovering Faraday-law parameters from measured deposition data.

//FitDeposition fits measured (charge, mass) pairs to the Faraday-law line
//mass = Z*charge, forced through the origin, and returns the fitted
//electrochemical equivalent Z in g/C. charges and masses must have the
//same length, with at least two points.
func FitDeposition(charges, masses []float64) (float64, error) {
	if len(charges) != len(masses) {
		return 0, fmt.Errorf("FitDeposition: Mismatched charge and mass sample numbers: %d, %d", len(charges), len(masses))
	}
	if len(charges) < 2 {
		return 0, fmt.Errorf("FitDeposition: At least 2 samples needed, got %d", len(charges))
	}
	_, z := stat.LinearRegression(charges, masses, nil, true)
	return z, nil
}

//EstimateValence estimates, from measured (charge, mass) pairs and the
//molar mass of the deposited species, the valence at which the species was
//deposited. The value is not rounded: a fractional result can point to a
//mixed-oxidation deposit, or to a current efficiency below 1.
func EstimateValence(atomicMass float64, charges, masses []float64) (float64, error) {
	z, err := FitDeposition(charges, masses)
	if err != nil {
		return 0, err
	}
	return atomicMass / (z * Faraday), nil
}
