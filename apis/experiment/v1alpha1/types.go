/*
Copyright 2024 The Kubernetes Authors.

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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	GroupName = "pbo.iohprofiler.io"
	Version   = "v1alpha1"
	Kind      = "Experiment"
)

// APIVersion is the apiVersion an Experiment file has to declare.
const APIVersion = GroupName + "/" + Version

// Experiment describes a benchmarking campaign: which problems of the suite
// to run, where and how to log them, and the algorithm to run on them.
type Experiment struct {
	metav1.TypeMeta `json:",inline"`

	Suite     SuiteSpec     `json:"suite"`
	Logger    LoggerSpec    `json:"logger"`
	Observer  ObserverSpec  `json:"observer"`
	Algorithm AlgorithmSpec `json:"algorithm"`
}

// SuiteSpec selects problems. Ids are given as range strings such as "1-5,7".
type SuiteSpec struct {
	// SuiteName must be "PBO"
	SuiteName string `json:"suiteName,omitempty"`

	// ProblemID selects function ids between 1 and 24
	ProblemID string `json:"problemID,omitempty"`

	// InstanceID selects instance ids between 1 and 100
	InstanceID string `json:"instanceID,omitempty"`

	// Dimension selects the numbers of variables
	Dimension string `json:"dimension,omitempty"`
}

// LoggerSpec names the result folder and the algorithm in the info files.
type LoggerSpec struct {
	// OutputDirectory is the parent of the result folder
	OutputDirectory string `json:"outputDirectory,omitempty"`

	// ResultFolder is renamed with a numeric suffix when it already exists
	ResultFolder string `json:"resultFolder,omitempty"`

	AlgorithmName string `json:"algorithmName,omitempty"`
	AlgorithmInfo string `json:"algorithmInfo,omitempty"`
}

// ObserverSpec selects the data files written for every run.
type ObserverSpec struct {
	// CompleteTriggers writes every evaluation to the .cdat file
	CompleteTriggers *bool `json:"completeTriggers,omitempty"`

	// UpdateTriggers writes every improvement to the .dat file
	UpdateTriggers *bool `json:"updateTriggers,omitempty"`

	// BaseEvaluationTriggers writes the .tdat file at dimension*base*10^k
	// evaluations, at most 10 values
	BaseEvaluationTriggers []int `json:"baseEvaluationTriggers,omitempty"`

	// NumberOfEvaluationTriggers is the number of .tdat lines per decade of
	// evaluations, zero meaning the dimension
	NumberOfEvaluationTriggers int `json:"numberOfEvaluationTriggers,omitempty"`

	// NumberIntervalTriggers writes the .idat file every that many
	// evaluations, zero disabling it
	NumberIntervalTriggers int `json:"numberIntervalTriggers,omitempty"`
}

// AlgorithmSpec selects the optimizer and the run protocol.
type AlgorithmSpec struct {
	// Name is one of random_search, one_plus_lambda_ea and genetic_algorithm
	Name string `json:"name,omitempty"`

	// Lambda is the offspring count of the EA and the population of the GA
	Lambda *int    `json:"lambda,omitempty"`
	Seed   *uint32 `json:"seed,omitempty"`

	// IndependentRuns is the number of runs on every problem
	IndependentRuns *int `json:"independentRuns,omitempty"`

	// BudgetMultiplier times the dimension is the evaluation budget of a run
	BudgetMultiplier *int `json:"budgetMultiplier,omitempty"`

	// Workers bounds the problems run concurrently
	Workers *int `json:"workers,omitempty"`
}
