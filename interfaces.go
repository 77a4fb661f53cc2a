/*
 * interfaces.go, part of goelectro.
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

//Collaborators for the Faraday-law calculation. Both are optional: a nil
//value means "use the built-in defaults". They are deliberately narrow,
//one accessor per quantity, so any constants or units package can be
//plugged in with a thin adapter.

// ConstantsProvider supplies the Faraday constant to be used in place of
// the built-in literal. The value returned is taken as-is, already scaled
// to whatever unit system the caller works in (coulomb/mole in SI).
type ConstantsProvider interface {
	FaradayConstant() float64
}

// UnitsProvider describes a unit system by the magnitude, in that system's
// own units, of one gram, one coulomb, one joule and one mole. For SI all
// four are 1. It is only consulted to rescale the built-in literal Faraday
// constant when no ConstantsProvider is given.
type UnitsProvider interface {
	Gram() float64
	Coulomb() float64
	Joule() float64
	Mole() float64
}

//Errors

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate allows you to add information when you pass the error up. Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// TraceError is the interface for errors in amperometry traces
type TraceError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastSampleError has a useless function to distinguish the harmless errors (i.e. last sample) so they can be
// filtered in a typeswitch that looks for this interface.
type LastSampleError interface {
	TraceError
	NormalLastSampleTermination() //does nothing, just to separate this interface from other TraceError's

}
