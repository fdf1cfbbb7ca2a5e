package v1alpha1

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/algorithms"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/logger"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/suite"
)

// ValidateExperiment checks a defaulted Experiment.
func ValidateExperiment(obj *Experiment) field.ErrorList {
	var errs field.ErrorList

	if obj.APIVersion != APIVersion {
		errs = append(errs, field.NotSupported(field.NewPath("apiVersion"), obj.APIVersion, []string{APIVersion}))
	}
	if obj.Kind != Kind {
		errs = append(errs, field.NotSupported(field.NewPath("kind"), obj.Kind, []string{Kind}))
	}

	errs = append(errs, validateSuite(&obj.Suite, field.NewPath("suite"))...)
	errs = append(errs, validateLogger(&obj.Logger, field.NewPath("logger"))...)
	errs = append(errs, validateObserver(&obj.Observer, field.NewPath("observer"))...)
	errs = append(errs, validateAlgorithm(&obj.Algorithm, field.NewPath("algorithm"))...)
	return errs
}

func validateSuite(s *SuiteSpec, path *field.Path) field.ErrorList {
	var errs field.ErrorList
	if s.SuiteName != suite.Name {
		errs = append(errs, field.NotSupported(path.Child("suiteName"), s.SuiteName, []string{suite.Name}))
	}
	ranges := []struct {
		name   string
		value  string
		lo, hi int
	}{
		{"problemID", s.ProblemID, 1, suite.NumberOfFunctions},
		{"instanceID", s.InstanceID, 1, suite.MaxInstance},
		{"dimension", s.Dimension, 1, suite.MaxDimension},
	}
	for _, r := range ranges {
		if _, err := suite.ParseRanges(r.value, r.lo, r.hi); err != nil {
			errs = append(errs, field.Invalid(path.Child(r.name), r.value, err.Error()))
		}
	}
	return errs
}

func validateLogger(l *LoggerSpec, path *field.Path) field.ErrorList {
	var errs field.ErrorList
	if l.OutputDirectory == "" {
		errs = append(errs, field.Required(path.Child("outputDirectory"), ""))
	}
	if l.ResultFolder == "" {
		errs = append(errs, field.Required(path.Child("resultFolder"), ""))
	}
	return errs
}

func validateObserver(o *ObserverSpec, path *field.Path) field.ErrorList {
	var errs field.ErrorList
	base := path.Child("baseEvaluationTriggers")
	if len(o.BaseEvaluationTriggers) > logger.MaxBaseEvaluationTriggers {
		errs = append(errs, field.TooMany(base, len(o.BaseEvaluationTriggers), logger.MaxBaseEvaluationTriggers))
	}
	for i, b := range o.BaseEvaluationTriggers {
		if b < 1 {
			errs = append(errs, field.Invalid(base.Index(i), b, "must be positive"))
		}
	}
	if o.NumberOfEvaluationTriggers < 0 {
		errs = append(errs, field.Invalid(path.Child("numberOfEvaluationTriggers"), o.NumberOfEvaluationTriggers, "must not be negative"))
	}
	if o.NumberIntervalTriggers < 0 {
		errs = append(errs, field.Invalid(path.Child("numberIntervalTriggers"), o.NumberIntervalTriggers, "must not be negative"))
	}
	return errs
}

func validateAlgorithm(a *AlgorithmSpec, path *field.Path) field.ErrorList {
	var errs field.ErrorList
	names := []string{algorithms.RandomSearchName, algorithms.OnePlusLambdaEAName, algorithms.GeneticAlgorithmName}
	switch a.Name {
	case algorithms.RandomSearchName, algorithms.OnePlusLambdaEAName:
	case algorithms.GeneticAlgorithmName:
		if a.Lambda != nil && *a.Lambda < 2 {
			errs = append(errs, field.Invalid(path.Child("lambda"), *a.Lambda, "population must be at least 2"))
		}
	default:
		errs = append(errs, field.NotSupported(path.Child("name"), a.Name, names))
	}
	if a.Seed == nil {
		errs = append(errs, field.Required(path.Child("seed"), ""))
	}
	positive := []struct {
		name  string
		value *int
	}{
		{"lambda", a.Lambda},
		{"independentRuns", a.IndependentRuns},
		{"budgetMultiplier", a.BudgetMultiplier},
		{"workers", a.Workers},
	}
	for _, p := range positive {
		if p.value == nil {
			errs = append(errs, field.Required(path.Child(p.name), ""))
			continue
		}
		if *p.value < 1 {
			errs = append(errs, field.Invalid(path.Child(p.name), *p.value, "must be positive"))
		}
	}
	return errs
}
