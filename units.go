/*
 * units.go, part of goelectro.
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

//Built-in unit systems. A UnitSystem gives the magnitude of one gram, one
//coulomb, one joule and one mole expressed in its own units, which is all
//FaradayMassWith needs to rescale the literal Faraday constant.

// UnitSystem is a table-driven UnitsProvider.
type UnitSystem struct {
	gram    float64
	coulomb float64
	joule   float64
	mole    float64
}

func (u UnitSystem) Gram() float64    { return u.gram }
func (u UnitSystem) Coulomb() float64 { return u.coulomb }
func (u UnitSystem) Joule() float64   { return u.joule }
func (u UnitSystem) Mole() float64    { return u.mole }

// SI is the SI unit system (with the gram, not the kilogram, as the mass
// unit, as is customary for molar masses). All magnitudes are 1 so it
// rescales nothing.
var SI = UnitSystem{gram: 1, coulomb: 1, joule: 1, mole: 1}

// CGS is the centimetre-gram-second (Gaussian) system: charge in
// statcoulombs, energy in ergs.
var CGS = UnitSystem{gram: 1, coulomb: 2.99792458e9, joule: 1e7, mole: 1}
