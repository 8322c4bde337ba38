// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ilpinfo prints the host CPU features, the CPU profile the ilp
// package selects, and the unroll factors that profile recommends.
//
// Usage:
//
//	ilpinfo                       # host info and the active profile
//	ilpinfo -profile zen5         # a specific profile
//	ilpinfo -all                  # every built-in profile
//	ilpinfo -category dotproduct  # one row only
//
// The active profile honors the ILP_CPU and ILP_NO_DETECT environment
// variables.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ajroetker/go-ilp/ilp"
	"github.com/janpfeifer/must"
	"github.com/samber/lo"
	"k8s.io/klog/v2"
)

var (
	profileName = flag.String("profile", "", "Profile to show ("+strings.Join(ilp.ProfileNames(), ",")+"); default: the active profile")
	showAll     = flag.Bool("all", false, "Show every built-in profile")
	category    = flag.String("category", "", "Show only this category (e.g. sum, dotproduct, search)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	var categories []ilp.Category
	if *category != "" {
		categories = []ilp.Category{must.M1(ilp.ParseCategory(*category))}
	} else {
		categories = ilp.Categories()
	}

	active := ilp.ActiveProfile()
	fmt.Print(hostReport(ilp.DetectHost(), &active))

	var profiles []ilp.Profile
	switch {
	case *showAll:
		profiles = lo.Map(ilp.ProfileNames(), func(name string, _ int) ilp.Profile {
			return ilp.GetProfile(name)
		})
	case *profileName != "":
		p, err := ilp.LookupProfile(*profileName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		profiles = append(profiles, p)
	default:
		profiles = append(profiles, active)
	}

	for i := range profiles {
		fmt.Println()
		fmt.Println(profileHeading(&profiles[i]))
		fmt.Println(profileTable(&profiles[i], categories))
	}
	fmt.Printf("\n* = no entry in the profile, the default K=%d is used\n", ilp.DefaultK)
}
