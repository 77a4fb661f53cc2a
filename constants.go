/*
 * constants.go, part of goelectro.
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

import "gonum.org/v1/gonum/unit/constant"

//This provides useful physical constants and conversion factors

//Constants
const (
	Faraday     = 96485.33289      //Faraday constant, C/mol (CODATA 2014)
	GasConstant = 8.3144598        //Molar gas constant, J/(K mol) (CODATA 2014)
	Avogadro    = 6.022140857e23   //1/mol (CODATA 2014)
	ECharge     = 1.6021766208e-19 //Elementary charge, C (CODATA 2014)
)

//Conversions
const (
	Ah2C      = 3600.0 //Ampere-hour to coulomb
	C2Ah      = 1 / 3600.0
	MAh2C     = 3.6 //milliampere-hour to coulomb
	C2Faraday = 1 / Faraday //Coulomb to moles of electrons
	Cal2J     = 4.184
	J2Cal     = 1 / 4.184
)

//CODATA is a ConstantsProvider holding the currently recommended CODATA
//values, as carried by gonum. Its Faraday constant differs from the
//built-in literal (a CODATA 2014 value) in the 4th decimal.
type CODATA struct{}

//FaradayConstant returns the Faraday constant in C/mol, built from the
//exact SI values of the elementary charge and the Avogadro constant.
func (c CODATA) FaradayConstant() float64 {
	return float64(constant.ElementaryCharge) * float64(constant.Avogadro)
}

//GasConstantValue returns the molar gas constant in J/(K mol) from the
//same source.
func (c CODATA) GasConstantValue() float64 {
	return float64(constant.Boltzmann) * float64(constant.Avogadro)
}
