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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/sem1d/InputParameters"
	"github.com/notargets/sem1d/model_problems/Wave1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional spectral element wave simulation",
	Long: `
Builds the 1D spectral element grid from an input parameters file and runs
the explicit wave solver,

sem1d 1D -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		ipFile, _ := cmd.Flags().GetString("input")
		ip := processInput(ipFile)
		if n, err := cmd.Flags().GetInt("n"); err == nil && n != 0 {
			ip.N = n
			ip.NGLJ = n
		}
		if k, err := cmd.Flags().GetInt("k"); err == nil && k != 0 {
			ip.NSpec = k
		}
		if cfl, err := cmd.Flags().GetFloat64("CFL"); err == nil && cfl != 0 {
			ip.CFL = cfl
		}
		if nts, err := cmd.Flags().GetInt("nSteps"); err == nil && nts != 0 {
			ip.NSteps = nts
		}
		if plot, _ := cmd.Flags().GetBool("plot"); plot {
			ip.Plot = true
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start().Stop()
		}
		Run1D(ip)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("input", "I", "", "input parameters file (YAML), defaults used when omitted")
	OneDCmd.Flags().IntP("k", "k", 0, "number of elements, overrides the input file")
	OneDCmd.Flags().IntP("n", "n", 0, "polynomial degree, overrides the input file")
	OneDCmd.Flags().Int("nSteps", 0, "number of time steps, overrides the input file")
	OneDCmd.Flags().Float64("CFL", 0, "CFL number, overrides the input file")
	OneDCmd.Flags().Bool("plot", false, "plot the source and periodic snapshots to the terminal")
	OneDCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

func processInput(ipFile string) (ip *InputParameters.Parameters1D) {
	ip = InputParameters.NewParameters1D()
	if len(ipFile) == 0 {
		return
	}
	data, err := os.ReadFile(ipFile)
	if err != nil {
		fmt.Printf("error: unable to read input parameters file: %s\n", err)
		exampleFile := `
########################################
Title: "Homogeneous test case"
Axisym: true
Length: 3000
NSpec: 250
N: 4
NGLJ: 4
NSteps: 1000
CFL: 0.45
GridType: homogeneous
Density: 2500
Rigidity: 3.e10
SourceType: ricker
TSource: 100
MaxAmpl: 1.e7
DecayRate: 2.628
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error: unable to parse input parameters file: %s\n", err)
		os.Exit(1)
	}
	return
}

func Run1D(ip *InputParameters.Parameters1D) {
	ip.Print()
	if err := ip.Validate(); err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
	c, err := Wave1D.NewWave(ip)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
	if ip.Plot {
		fmt.Println(c.PlotGrid())
		fmt.Println(c.PlotSource(200))
	}
	c.Run()
}
