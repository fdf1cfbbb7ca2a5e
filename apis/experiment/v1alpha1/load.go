package v1alpha1

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadExperiment reads, defaults and validates an Experiment file. Unknown
// fields are rejected.
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment: %w", err)
	}
	return ParseExperiment(data)
}

func ParseExperiment(data []byte) (*Experiment, error) {
	obj := &Experiment{}
	if err := yaml.UnmarshalStrict(data, obj); err != nil {
		return nil, fmt.Errorf("decoding experiment: %w", err)
	}
	SetDefaults_Experiment(obj)
	if errs := ValidateExperiment(obj); len(errs) > 0 {
		return nil, errs.ToAggregate()
	}
	return obj, nil
}
