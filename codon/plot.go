package codon

import (
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/Davydov/seqcode/bio"
)

// UsagePlot creates a bar chart of observed codon frequencies. If
// expected is not nil, it is plotted next to the observed values.
func UsagePlot(u Usage, expected Frequency) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Codon usage"
	p.Y.Label.Text = "Frequency"

	observed := u.Frequency()

	names := make([]string, NCodon)
	obs := make(plotter.Values, NCodon)
	for i := 0; i < NCodon; i++ {
		names[i] = NumCodon[byte(i)]
		obs[i] = observed[i]
	}
	// group codons by amino acid
	order := make([]int, NCodon)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return bio.GeneticCode[names[order[a]]] < bio.GeneticCode[names[order[b]]]
	})
	sortedNames := make([]string, NCodon)
	sortedObs := make(plotter.Values, NCodon)
	for i, j := range order {
		sortedNames[i] = names[j]
		sortedObs[i] = obs[j]
	}

	w := vg.Points(4)
	bars, err := plotter.NewBarChart(sortedObs, w)
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.Legend.Add("observed", bars)

	if expected != nil {
		exp := make(plotter.Values, NCodon)
		for i, j := range order {
			exp[i] = expected[j]
		}
		ebars, err := plotter.NewBarChart(exp, w)
		if err != nil {
			return nil, err
		}
		ebars.LineStyle.Width = vg.Length(0)
		ebars.Color = plotutil.Color(1)
		bars.Offset = -w / 2
		ebars.Offset = w / 2
		p.Add(ebars)
		p.Legend.Add("expected", ebars)
	}
	p.Legend.Top = true
	p.NominalX(sortedNames...)
	p.X.Tick.Label.Rotation = math.Pi / 2

	return p, nil
}

// SaveUsagePlot writes a codon usage plot to a file, the format is
// determined by the extension.
func SaveUsagePlot(u Usage, expected Frequency, fn string) error {
	p, err := UsagePlot(u, expected)
	if err != nil {
		return err
	}
	log.Debugf("Saving codon usage plot to %s", fn)
	return p.Save(12*vg.Inch, 4*vg.Inch, fn)
}
