// Package project holds antenna descriptions as users write them: text
// blocks for wires, sources and loads plus frequency and ground settings.
// Descriptions are stored as YAML documents.
package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Antenna struct {
	HasGround      bool    `yaml:"hasGround"`
	HasIdealGround bool    `yaml:"hasIdealGround"`
	UserNotes      string  `yaml:"userNotes,omitempty"`
	Frequency      float64 `yaml:"frequency"` // MHz
	Wires          string  `yaml:"wires"`     // x1,y1,z1,x2,y2,z2,diameter,segments per line
	Sources        string  `yaml:"sources"`   // wire,segment,amplitude,phase per line
	Loads          string  `yaml:"loads,omitempty"`
	EpsilonR       float64 `yaml:"epsilonR"`
	Conductivity   float64 `yaml:"conductivity"` // S/m
}

func NewAntenna() Antenna {
	return Antenna{
		HasIdealGround: true,
		Frequency:      299.8,
		EpsilonR:       13,
		Conductivity:   0.005,
	}
}

// Parse reads a YAML document. Missing keys keep the NewAntenna defaults.
func Parse(data []byte) (Antenna, error) {
	a := NewAntenna()
	if err := yaml.Unmarshal(data, &a); err != nil {
		return Antenna{}, fmt.Errorf("parsing antenna: %v", err)
	}
	return a, nil
}

func Load(path string) (Antenna, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Antenna{}, fmt.Errorf("reading antenna file: %v", err)
	}
	return Parse(data)
}

func (a Antenna) Marshal() ([]byte, error) {
	return yaml.Marshal(a)
}

func (a Antenna) Save(path string) error {
	data, err := a.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
