/*
 * deposition.go, part of goelectro
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 * goElectro is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 *
*/

//Package electroplot draws the plots one wants to look at after an
//electrolytic run: deposited mass against charge passed, compared with the
//theoretical Faraday-law line, and the raw current trace.
package electroplot

import (
	"fmt"
	"image/color"

	electro "github.com/rmera/goelectro"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//DepositionPlot plots the measured (charge, mass) pairs of an electrolytic
//run as a scatter, together with the mass Faraday's law predicts for a
//species of the given molar mass and valence, as a line. The plot is saved
//as plotname.png. charges and masses must have the same length.
func DepositionPlot(charges, masses []float64, atomicMass, valence float64, title, plotname string) error {
	if len(charges) != len(masses) {
		return fmt.Errorf("DepositionPlot: Mismatched charge and mass sample numbers: %d, %d", len(charges), len(masses))
	}
	if len(charges) == 0 {
		return fmt.Errorf("DepositionPlot: Given no data")
	}
	p := basicPlot(title, "Charge (C)", "Mass (g)")
	pts := make(plotter.XYs, len(charges))
	var maxq float64
	for i, v := range charges {
		pts[i].X = v
		pts[i].Y = masses[i]
		if v > maxq {
			maxq = v
		}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = paletteColor(0)
	p.Add(s)
	p.Legend.Add("measured", s)
	//the theoretical line only needs its 2 end points
	z := electro.ElectrochemicalEquivalent(atomicMass, valence)
	theo := plotter.XYs{{X: 0, Y: 0}, {X: maxq, Y: z * maxq}}
	l, err := plotter.NewLine(theo)
	if err != nil {
		return err
	}
	l.LineStyle.Color = paletteColor(1)
	p.Add(l)
	p.Legend.Add("Faraday's law", l)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}

//TracePlot plots a sampled current-vs-time trace, as read by the amp
//package, and saves it as plotname.png.
func TracePlot(times, currents []float64, title, plotname string) error {
	if len(times) != len(currents) {
		return fmt.Errorf("TracePlot: Mismatched time and current sample numbers: %d, %d", len(times), len(currents))
	}
	if len(times) == 0 {
		return fmt.Errorf("TracePlot: Given no data")
	}
	p := basicPlot(title, "Time (s)", "Current (A)")
	pts := make(plotter.XYs, len(times))
	for i, v := range times {
		pts[i].X = v
		pts[i].Y = currents[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = paletteColor(0)
	p.Add(l)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}

var palette = []color.RGBA{
	{R: 200, G: 40, B: 40, A: 255},
	{R: 40, G: 40, B: 200, A: 255},
	{R: 40, G: 160, B: 40, A: 255},
	{R: 160, G: 40, B: 160, A: 255},
}

//paletteColor returns the nth plotting color, cycling through the palette.
func paletteColor(n int) color.RGBA {
	return palette[n%len(palette)]
}
