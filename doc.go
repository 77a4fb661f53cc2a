/*
 * doc.go, part of goelectro.
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

/*Package electro is the main package of the goElectro library. It implements
Faraday's laws of electrolysis and the small amount of supporting machinery
an electrodeposition calculation needs in practice.


	**goElectro Capabilities**

    Computes the mass of a chemical species liberated or deposited at an
	electrode from its molar mass, the total charge passed and its valence
	(Faraday's 1st and 2nd laws).

    Accepts optional physical-constants and unit-system collaborators, so
	the same calculation can be run against CODATA values or a non-SI
	unit system.

    Computes electrode potentials with the Nernst equation.

    Carries molar masses and common deposition valences for the elements
	usually plated or dissolved in electrolytic cells, so the common cases
	can be calculated directly from the element symbol.

    Obtains total charge from a constant current and a time, from a sampled
	current/time trace (trapezoidal integration) or from ampere-hours.

    Fits measured (charge, mass) deposition data to Faraday's law to recover
	the electrochemical equivalent, and from it, the valence at which a
	species was actually deposited.

    Reads and writes amperometry traces, plain or compressed (package amp).

    Plots deposition data against the theoretical Faraday-law line
	(package electroplot).


The core calculation is a pure function with no state and no side effects;
it is safe to call from any number of goroutines. Division by a zero valence
is deliberately not masked: it propagates as the usual float64 infinity.*/
package electro
