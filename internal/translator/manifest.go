package translator

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InstanceSource names one instance pricing file and the utilization class
// its entries are recorded under.
type InstanceSource struct {
	File  string `yaml:"file"`
	Class string `yaml:"class"`
}

// Manifest lists the files a run reads and the file it writes, all relative
// to the run directory.
type Manifest struct {
	Instances []InstanceSource `yaml:"instances"`
	EBS       string           `yaml:"ebs"`
	S3        string           `yaml:"s3"`
	Output    string           `yaml:"output"`
}

// DefaultManifest returns the file names published with the legacy price lists.
func DefaultManifest() Manifest {
	return Manifest{
		Instances: []InstanceSource{
			{File: "ri-heavy-linux.json", Class: "Heavy Utilization"},
			{File: "ri-medium-linux.json", Class: "Medium Utilization"},
			{File: "ri-light-linux.json", Class: "Light Utilization"},
			{File: "pricing-on-demand-instances.json", Class: "On Demand"},
			{File: "pricing-ebs-optimized-instances.json", Class: "EBS Optimized"},
		},
		EBS:    "pricing-ebs.json",
		S3:     "pricing-storage.json",
		Output: "aws-costs.json",
	}
}

// LoadManifest reads the YAML manifest at filename. Keys left out of the file
// keep their DefaultManifest values; an instances list, when present, replaces
// the default list entirely.
func LoadManifest(filename string) (*Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("manifest %s is empty", filename)
	}

	m := DefaultManifest()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", filename, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", filename, err)
	}
	return &m, nil
}

// Validate checks that every file name is set, that class labels are unique
// and that the output does not overwrite an input.
func (m Manifest) Validate() error {
	if len(m.Instances) == 0 {
		return fmt.Errorf("no instance files defined")
	}

	inputs := make(map[string]struct{}, len(m.Instances)+2)
	classes := make(map[string]struct{}, len(m.Instances))
	for i, src := range m.Instances {
		if src.File == "" {
			return fmt.Errorf("instances[%d]: file is required", i)
		}
		if src.Class == "" {
			return fmt.Errorf("instances[%d] (%s): class is required", i, src.File)
		}
		if _, dup := classes[src.Class]; dup {
			return fmt.Errorf("instances[%d] (%s): duplicate class %q", i, src.File, src.Class)
		}
		classes[src.Class] = struct{}{}
		inputs[src.File] = struct{}{}
	}

	if m.EBS == "" {
		return fmt.Errorf("ebs file is required")
	}
	if m.S3 == "" {
		return fmt.Errorf("s3 file is required")
	}
	if m.Output == "" {
		return fmt.Errorf("output file is required")
	}
	inputs[m.EBS] = struct{}{}
	inputs[m.S3] = struct{}{}
	if _, clash := inputs[m.Output]; clash {
		return fmt.Errorf("output %s would overwrite an input file", m.Output)
	}
	return nil
}
