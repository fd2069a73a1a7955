package almanac

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlFile is the root YAML structure for stage definitions.
type yamlFile struct {
	Seeds  []int64     `yaml:"seeds,omitempty"`
	Stages []yamlStage `yaml:"stages"`
}

type yamlStage struct {
	From string    `yaml:"from"`
	To   string    `yaml:"to"`
	Rows []yamlRow `yaml:"rows"`
}

type yamlRow struct {
	Dest   int64 `yaml:"dest"`
	Src    int64 `yaml:"src"`
	Length int64 `yaml:"length"`
}

// LoadYAML builds an almanac from a YAML description:
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - from: seed
//	    to: soil
//	    rows:
//	      - {dest: 50, src: 98, length: 2}
func LoadYAML(data []byte) (*Almanac, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Stages) == 0 {
		return nil, fmt.Errorf("no stages found in YAML")
	}

	stages := make([]Stage, 0, len(file.Stages))
	for i, ys := range file.Stages {
		if ys.From == "" || ys.To == "" {
			return nil, fmt.Errorf("stage %d: from and to are required", i)
		}
		rows := make([]Row, len(ys.Rows))
		for j, yr := range ys.Rows {
			rows[j] = Row{Dest: yr.Dest, Src: yr.Src, Length: yr.Length}
		}
		stage, err := newStage(ys.From, ys.To, rows)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	return New(file.Seeds, stages)
}

// LoadYAMLFile reads and parses a YAML stage file.
func LoadYAMLFile(path string) (*Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return LoadYAML(data)
}

// MarshalYAML renders the almanac in the format read by LoadYAML.
func (a *Almanac) MarshalYAML() (any, error) {
	file := yamlFile{Seeds: a.Seeds}
	for _, s := range a.Stages {
		ys := yamlStage{From: s.From, To: s.To}
		for _, r := range s.Rows {
			ys.Rows = append(ys.Rows, yamlRow{Dest: r.Dest, Src: r.Src, Length: r.Length})
		}
		file.Stages = append(file.Stages, ys)
	}
	return file, nil
}
