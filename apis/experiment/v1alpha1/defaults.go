package v1alpha1

import (
	"k8s.io/utils/ptr"
)

const (
	DefaultSuiteName        = "PBO"
	DefaultProblemID        = "1-24"
	DefaultInstanceID       = "1"
	DefaultDimension        = "16"
	DefaultOutputDirectory  = "./"
	DefaultResultFolder     = "Experiment"
	DefaultAlgorithmName    = "one_plus_lambda_ea"
	DefaultIndependentRuns  = 1
	DefaultBudgetMultiplier = 100
	DefaultLambda           = 1
	DefaultWorkers          = 4
)

// SetDefaults_Experiment fills every unset field.
func SetDefaults_Experiment(obj *Experiment) {
	if obj.APIVersion == "" {
		obj.APIVersion = APIVersion
	}
	if obj.Kind == "" {
		obj.Kind = Kind
	}

	s := &obj.Suite
	if s.SuiteName == "" {
		s.SuiteName = DefaultSuiteName
	}
	if s.ProblemID == "" {
		s.ProblemID = DefaultProblemID
	}
	if s.InstanceID == "" {
		s.InstanceID = DefaultInstanceID
	}
	if s.Dimension == "" {
		s.Dimension = DefaultDimension
	}

	l := &obj.Logger
	if l.OutputDirectory == "" {
		l.OutputDirectory = DefaultOutputDirectory
	}
	if l.ResultFolder == "" {
		l.ResultFolder = DefaultResultFolder
	}

	o := &obj.Observer
	if o.CompleteTriggers == nil {
		o.CompleteTriggers = ptr.To(false)
	}
	if o.UpdateTriggers == nil {
		o.UpdateTriggers = ptr.To(true)
	}

	a := &obj.Algorithm
	if a.Name == "" {
		a.Name = DefaultAlgorithmName
	}
	if l.AlgorithmName == "" {
		l.AlgorithmName = a.Name
	}
	if l.AlgorithmInfo == "" {
		l.AlgorithmInfo = a.Name
	}
	if a.Lambda == nil {
		a.Lambda = ptr.To(DefaultLambda)
	}
	if a.Seed == nil {
		a.Seed = ptr.To[uint32](1)
	}
	if a.IndependentRuns == nil {
		a.IndependentRuns = ptr.To(DefaultIndependentRuns)
	}
	if a.BudgetMultiplier == nil {
		a.BudgetMultiplier = ptr.To(DefaultBudgetMultiplier)
	}
	if a.Workers == nil {
		a.Workers = ptr.To(DefaultWorkers)
	}
}
