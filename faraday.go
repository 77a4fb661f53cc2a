/*
 * faraday.go, part of goelectro.
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

//FaradayMass implements Faraday's 1st and 2nd laws of electrolysis:
//the mass of a species liberated or deposited at an electrode is directly
//proportional to the total electrical charge passed, and inversely
//proportional to the valence of the freed material (Serway 2005).
//atomicMass is the molar mass of the species (g/mol), charge the total
//charge passed (C) and valence the number of electrons transferred per
//formula unit. It returns grams of substance deposited or dissolved.
//Inputs are not validated: a zero valence gives the usual float64
//infinity (or NaN when the charge is also zero).
func FaradayMass(atomicMass, charge, valence float64) float64 {
	return FaradayMassWith(atomicMass, charge, valence, nil, nil)
}

//FaradayMassWith is FaradayMass with explicit collaborators, either of
//which can be nil. If constants is nil the built-in literal Faraday
//constant is used and, when units is non-nil, rescaled by the units
//system's coulomb/mole ratio so the literal carries the caller's units.
//If constants is non-nil its value is used verbatim and units is ignored
//for the constant: an explicit provider is expected to be pre-scaled.
//The asymmetry is intentional and kept as documented behavior.
func FaradayMassWith(atomicMass, charge, valence float64, constants ConstantsProvider, units UnitsProvider) float64 {
	var f float64
	if constants == nil {
		f = Faraday
		if units != nil {
			f *= units.Coulomb() / units.Mole()
		}
	} else {
		f = constants.FaradayConstant()
	}
	return (atomicMass * charge) / (valence * f)
}

//ElectrochemicalEquivalent returns the mass in grams deposited per coulomb
//for a species of the given molar mass (g/mol) and valence, i.e. the slope
//of the Faraday-law line mass = Z*charge.
func ElectrochemicalEquivalent(atomicMass, valence float64) float64 {
	return atomicMass / (valence * Faraday)
}

//DepositionRate returns the mass deposition rate in g/s for a species of
//the given molar mass and valence under a constant current (A).
func DepositionRate(atomicMass, valence, current float64) float64 {
	return ElectrochemicalEquivalent(atomicMass, valence) * current
}

//CurrentEfficiency returns the ratio between the mass actually recovered
//from an electrolytic cell and the mass Faraday's law predicts for the
//charge passed. It is 1 for an ideal cell and below 1 when side reactions
//consume part of the current.
func CurrentEfficiency(actualMass, atomicMass, charge, valence float64) float64 {
	return actualMass / FaradayMass(atomicMass, charge, valence)
}
