/*
 * atomicdata.go, part of goelectro.
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

import "fmt"

//A map for assigning molar mass to elements (g/mol, IUPAC 2021 values,
//rounded). Note that just elements commonly plated, refined or dissolved
//in electrolytic cells are present.
var symbolMass = map[string]float64{
	"H":  1.008,
	"Li": 6.94,
	"O":  16.00,
	"Na": 22.99,
	"Mg": 24.31,
	"Al": 26.98,
	"Cl": 35.45,
	"K":  39.10,
	"Ca": 40.08,
	"Cr": 52.00,
	"Mn": 54.94,
	"Fe": 55.84,
	"Ni": 58.69,
	"Co": 58.93,
	"Cu": 63.546,
	"Zn": 65.38,
	"Ag": 107.87,
	"Cd": 112.41,
	"Sn": 118.71,
	"Au": 196.97,
	"Pb": 207.2,
}

//A map for assigning the valence at which each element is most commonly
//deposited or dissolved electrolytically. Several elements admit other
//oxidation states (Cr is also plated hexavalent, Fe dissolves as +3);
//callers that need those pass the valence to FaradayMass themselves.
var symbolValence = map[string]float64{
	"H":  1,
	"Li": 1,
	"O":  2,
	"Na": 1,
	"Mg": 2,
	"Al": 3,
	"Cl": 1,
	"K":  1,
	"Ca": 2,
	"Cr": 3,
	"Mn": 2,
	"Fe": 2,
	"Ni": 2,
	"Co": 2,
	"Cu": 2,
	"Zn": 2,
	"Ag": 1,
	"Cd": 2,
	"Sn": 2,
	"Au": 3,
	"Pb": 2,
}

//ElementMass returns the molar mass in g/mol for the element with the
//given symbol, or an error if the element is not in the table.
func ElementMass(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, fmt.Errorf("ElementMass: No molar mass for element %s", symbol)
	}
	return m, nil
}

//ElementValence returns the most common electrolytic valence for the
//element with the given symbol, or an error if the element is not in the
//table.
func ElementValence(symbol string) (float64, error) {
	v, ok := symbolValence[symbol]
	if !ok {
		return 0, fmt.Errorf("ElementValence: No valence for element %s", symbol)
	}
	return v, nil
}

//FaradayMassElement computes FaradayMass for the element with the given
//symbol, taking molar mass and valence from the built-in tables. The
//optional valence argument overrides the tabulated valence, for species
//deposited at an uncommon oxidation state.
func FaradayMassElement(symbol string, charge float64, valence ...float64) (float64, error) {
	m, err := ElementMass(symbol)
	if err != nil {
		return 0, err
	}
	var v float64
	if len(valence) > 0 {
		v = valence[0]
	} else {
		v, err = ElementValence(symbol)
		if err != nil {
			return 0, err
		}
	}
	return FaradayMass(m, charge, v), nil
}
