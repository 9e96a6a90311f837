/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/notargets/gocubature/cubature"
	"github.com/notargets/gocubature/types"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RulesCmd represents the rules command
var RulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the cubature rule catalog",
	Long: `Lists every catalog rule with its point count and polynomial degree,
optionally plotting the reference triangle points of each rule`,
	Run: func(cmd *cobra.Command, args []string) {
		rules, err := CatalogRules()
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		for _, rule := range rules {
			fmt.Printf("%-16s%s\n", rule.Type(), rule)
		}
		if plotFile, _ := cmd.Flags().GetString("plot"); len(plotFile) != 0 {
			if err = PlotRules(rules, plotFile); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			fmt.Printf("Wrote %s\n", plotFile)
		}
	},
}

func init() {
	rootCmd.AddCommand(RulesCmd)
	RulesCmd.Flags().String("plot", "", "write a plot of the rule points to this file (png, svg, pdf)")
}

func CatalogRules() (rules []*cubature.Rule, err error) {
	var rule *cubature.Rule
	for _, rt := range types.AllRuleTypes() {
		if rule, err = cubature.GetRule(rt); err != nil {
			return
		}
		rules = append(rules, rule)
	}
	return
}

func rulePoints(rule *cubature.Rule) (pts plotter.XYs) {
	RS := rule.Points()
	pts = make(plotter.XYs, rule.Len())
	for i := range pts {
		pts[i].X, pts[i].Y = RS.At(i, 0), RS.At(i, 1)
	}
	return
}

// PlotRules draws the reference triangle with the points of each rule; the
// image format follows the file extension
func PlotRules(rules []*cubature.Rule, fileName string) (err error) {
	var (
		outline *plotter.Line
		sc      *plotter.Scatter
	)
	p := plot.New()
	p.Title.Text = "Cubature points on the reference triangle"
	p.X.Label.Text = "r"
	p.Y.Label.Text = "s"
	p.X.Min, p.X.Max = -0.05, 1.05
	p.Y.Min, p.Y.Max = -0.05, 1.05
	if outline, err = plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}}); err != nil {
		return
	}
	p.Add(outline)
	for i, rule := range rules {
		if sc, err = plotter.NewScatter(rulePoints(rule)); err != nil {
			return
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Shape = plotutil.Shape(i)
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(rule.Name(), sc)
	}
	p.Legend.Top = true
	return p.Save(6*vg.Inch, 6*vg.Inch, fileName)
}
