/*
 * nernst.go, part of goelectro.
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

import "math"

//NernstPotential returns the electrode potential in volts given the
//standard potential (V), the number of electrons transferred, the
//temperature (K) and the reaction quotient of the half-cell:
//E = E0 - (RT/zF)*ln(Q). As with FaradayMass, a zero electron count is
//not masked and yields a float64 infinity. The constants argument is
//optional; when given, its Faraday constant replaces the built-in
//literal and, if the provider also carries a gas constant (as CODATA
//does), that one replaces the built-in literal too.
func NernstPotential(standardPotential, electrons, temperature, quotient float64, constants ...ConstantsProvider) float64 {
	var f float64 = Faraday
	var r float64 = GasConstant
	if len(constants) > 0 && constants[0] != nil {
		f = constants[0].FaradayConstant()
		if g, ok := constants[0].(interface{ GasConstantValue() float64 }); ok {
			r = g.GasConstantValue()
		}
	}
	return standardPotential - (r*temperature)/(electrons*f)*math.Log(quotient)
}
