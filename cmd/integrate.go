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
	"math"
	"os"

	"github.com/notargets/gocubature/InputParameters"
	"github.com/notargets/gocubature/cubature"
	"github.com/notargets/gocubature/polynomial"
	"github.com/notargets/gocubature/utils"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// IntegrateCmd represents the integrate command
var IntegrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Integrate a polynomial over a triangle or mesh with a cubature rule",
	Long: `Integrates the polynomial of a YAML case file with the selected rule and
with the exact integrator, and reports both values and their difference`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			cr  *CaseResult
		)
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		withProfile, _ := cmd.Flags().GetBool("profile")
		ip := processCaseInput(icFile)
		if ruleName, _ := cmd.Flags().GetString("rule"); len(ruleName) != 0 {
			ip.Rule = ruleName
		}
		ip.Print()
		profilePath := ""
		if withProfile {
			profilePath = "."
		}
		if cr, err = ProfileCase(ip, profilePath); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		cr.Print()
		if withProfile {
			fmt.Println(utils.GetMemUsage())
		}
	},
}

func init() {
	rootCmd.AddCommand(IntegrateCmd)
	IntegrateCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML case file with the polynomial, vertices and elements")
	IntegrateCmd.Flags().StringP("rule", "r", "", "cubature rule name, overrides the case file")
	IntegrateCmd.Flags().IntP("parallelDegree", "p", 1, "number of goroutines for mesh integration, 0 = one per CPU")
	IntegrateCmd.Flags().Bool("profile", false, "write a CPU profile in the working directory")
	_ = viper.BindPFlag("parallelDegree", IntegrateCmd.Flags().Lookup("parallelDegree"))
}

func processCaseInput(icFile string) (ip *InputParameters.CubatureCase) {
	var (
		err  error
		data []byte
	)
	if len(icFile) == 0 {
		err = fmt.Errorf("must supply a case file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Case"
Rule: midpoint # or lauffer, strang_fix, radon_7, gauss_jacobi_3 ...
Polynomial: [[2, 1, 1.0]] # x exponent, y exponent, coefficient
Vertices: [[0, 0], [1, 0], [0, 1]]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(icFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.CubatureCase{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

type CaseResult struct {
	Title          string
	Rule           *cubature.Rule
	Elements       int
	ParallelDegree int
	Cubature       float64
	Exact          float64
}

func (cr *CaseResult) AbsError() float64 { return math.Abs(cr.Cubature - cr.Exact) }

func (cr *CaseResult) Print() {
	fmt.Printf("%s\n", cr.Rule)
	fmt.Printf("[%d]\t\t\t= Elements\n", cr.Elements)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", cr.ParallelDegree)
	fmt.Printf("%22.15e\t= Cubature\n", cr.Cubature)
	fmt.Printf("%22.15e\t= Exact\n", cr.Exact)
	fmt.Printf("%22.15e\t= Error\n", cr.AbsError())
}

// selectRule resolves the case rule; an empty name falls back to the
// configured default
func selectRule(ip *InputParameters.CubatureCase) (rule *cubature.Rule, err error) {
	if ip.GaussOrder > 0 {
		return cubature.NewGaussJacobiRule(ip.GaussOrder)
	}
	name := ip.Rule
	if len(name) == 0 {
		name = viper.GetString("rule")
	}
	return cubature.GetRuleByName(name)
}

// ProfileCase is RunCase under a CPU profile written to profilePath. The
// profile is flushed before returning, also when the case fails. An empty
// path runs without profiling.
func ProfileCase(ip *InputParameters.CubatureCase, profilePath string) (cr *CaseResult, err error) {
	if len(profilePath) != 0 {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profilePath), profile.NoShutdownHook).Stop()
	}
	return RunCase(ip)
}

func RunCase(ip *InputParameters.CubatureCase) (cr *CaseResult, err error) {
	var (
		p    *polynomial.Polynomial
		rule *cubature.Rule
	)
	if rule, err = selectRule(ip); err != nil {
		return
	}
	if p, err = ip.GetPolynomial(); err != nil {
		return
	}
	VXY, err := ip.GetVertices()
	if err != nil {
		return
	}
	EToV := ip.GetElements()
	np := ip.ParallelDegree
	if np == 0 {
		np = viper.GetInt("parallelDegree")
	}
	mi := cubature.NewMeshIntegrator(np)
	cr = &CaseResult{
		Title:          ip.Title,
		Rule:           rule,
		Elements:       len(EToV),
		ParallelDegree: mi.ParallelDegree(len(EToV)),
	}
	if cr.Cubature, err = mi.Integrate(p.Evaluate, VXY, EToV, rule); err != nil {
		return
	}
	if cr.Exact, err = polynomial.IntegrateOnMesh(p, VXY, EToV); err != nil {
		return
	}
	if utils.IsNan(cr.Cubature) || utils.IsNan(cr.Exact) {
		err = fmt.Errorf("case %q integrates to NaN", ip.Title)
	}
	return
}
