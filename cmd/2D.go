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
	"io/ioutil"

	"github.com/pkg/profile"

	"github.com/notargets/gofd/InputParameters"
	"github.com/notargets/gofd/model_problems/EulerLF2D"

	"github.com/spf13/cobra"
)

type Model2D struct {
	ICFile  string
	NSteps  int
	Procs   int
	Profile bool
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional Lax-Friedrichs solver for flow around an immersed obstacle",
	Long:  `Two dimensional Lax-Friedrichs solver for flow around an immersed obstacle`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("2D called")
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m2d.NSteps, _ = cmd.Flags().GetInt("nSteps")
		m2d.Procs, _ = cmd.Flags().GetInt("procs")
		m2d.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processInput(m2d)
		Run2D(m2d, ip)
	},
}

func processInput(m2d *Model2D) (ip *InputParameters.InputParameters2D) {
	var (
		err error
	)
	ip = InputParameters.NewInputParameters2D()
	if len(m2d.ICFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(m2d.ICFile); err != nil {
			err = fmt.Errorf("unable to read input conditions file %s: %v", m2d.ICFile, err)
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	if m2d.NSteps != 0 {
		ip.NSteps = m2d.NSteps
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- Grid dimensions\n\t- Obstacle center and radius")
	TwoDCmd.Flags().IntP("nSteps", "s", 0, "number of time steps, overrides the input file")
	TwoDCmd.Flags().IntP("procs", "p", 0, "number of parallel go routines, 0 uses all CPUs")
	TwoDCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}

func Run2D(m2d *Model2D, ip *InputParameters.InputParameters2D) {
	if m2d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	ob := EulerLF2D.Obstacle{Cx: ip.Cx, Cy: ip.Cy, Radius: ip.Radius}
	c := EulerLF2D.NewEuler(
		ip.Nx, ip.Ny, ip.Lx, ip.Ly, ob,
		ip.Rho0, ip.U0, ip.V0, ip.P0, ip.Gamma, ip.CFL,
		ip.NSteps, ip.ReportInterval, m2d.Procs, true)
	c.Solve()
}
