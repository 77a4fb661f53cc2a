/*
 * doc.go, part of goelectro.
 *
 * Copyright 2023 Raul Mera <rauldotmeraatusachdotcl>
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
 * /

//Package amp implements the amperometry trace format, a line-oriented format for the
//current-vs-time traces recorded during an electrolytic run. amp aims to be trivial to
//read and write from any language while keeping long traces small on disk through
//optional compression.

/******************** Format Specification   ***************************************************


An AMP file has the extension amp, optionally followed by one letter selecting the
compression: no letter for plain text, "z" for gzip, "s" for z-standard, "r" for flate
and "l" for LZW. So trace.amps is a z-standard-compressed trace.

An AMP file may only contain ASCII symbols.

An AMP file has a "header" starting in the first line, and ending with a line containing
the characters "**" and nothing else. Each line of the header must be a pair key=value.
The header may be empty (a file may start with the "**" line). Common keys are "analyte",
"electrode" and "prec"; implementations must preserve keys they do not understand.

After the header, the file has one line per sample. Each line contains 2 floating-point
numbers separated by whitespace: the time in seconds since the start of the run, and the
current in amperes at that time, and nothing more. Samples must appear in strictly
increasing time order.

The "**" sequence may only be used as a header termination, as described above, and can
not appear anywhere else in the file.

***************************************************************************************************/

package amp
