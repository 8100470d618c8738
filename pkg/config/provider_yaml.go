package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	config, err := parseYAML(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", y.filename, err)
	}

	y.config = config
	return config, nil
}

func parseYAML(b []byte) (*ConfigData, error) {
	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Model  ModelYAML  `yaml:"model,omitempty"`
		Search SearchYAML `yaml:"search,omitempty"`
		Grid   GridYAML   `yaml:"grid,omitempty"`
		Sites  []SiteYAML `yaml:"sites"`
	}

	if err := yaml.UnmarshalStrict(b, &yamlConfig); err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Model: ModelData{
			Albedo:         yamlConfig.Model.Albedo,
			Efficiency:     yamlConfig.Model.Efficiency,
			PanelArea:      yamlConfig.Model.PanelArea,
			EquationOfTime: yamlConfig.Model.EquationOfTime,
		},
		Search: SearchData{
			TiltStep:    yamlConfig.Search.TiltStep,
			AzimuthStep: yamlConfig.Search.AzimuthStep,
			Workers:     yamlConfig.Search.Workers,
			Timeout:     yamlConfig.Search.Timeout,
		},
		Grid: GridData{
			DayStep:  yamlConfig.Grid.DayStep,
			HourStep: yamlConfig.Grid.HourStep,
		},
		Sites: make([]SiteData, len(yamlConfig.Sites)),
	}

	if cs := yamlConfig.Model.ClearSky; cs != nil {
		config.Model.ClearSky = &ClearSkyData{
			A:  cs.A,
			B:  cs.B,
			C1: cs.C1,
			C2: cs.C2,
			C3: cs.C3,
		}
	}

	for i, site := range yamlConfig.Sites {
		name := site.Name
		if name == "" {
			name = fmt.Sprintf("site-%d", i+1)
		}
		config.Sites[i] = SiteData{
			Name:        name,
			Latitude:    site.Latitude,
			Longitude:   site.Longitude,
			GroundSlope: site.GroundSlope,
		}
	}

	return config, nil
}

// GetSites returns site configurations
func (y *YAMLProvider) GetSites() ([]SiteData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return y.config.Sites, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs with proper YAML tags
type ModelYAML struct {
	ClearSky       *ClearSkyYAML `yaml:"clear-sky,omitempty"`
	Albedo         *float64      `yaml:"albedo,omitempty"`
	Efficiency     *float64      `yaml:"efficiency,omitempty"`
	PanelArea      *float64      `yaml:"panel-area,omitempty"`
	EquationOfTime *bool         `yaml:"equation-of-time,omitempty"`
}

type ClearSkyYAML struct {
	A  float64 `yaml:"a"`
	B  float64 `yaml:"b"`
	C1 float64 `yaml:"c1"`
	C2 float64 `yaml:"c2"`
	C3 float64 `yaml:"c3"`
}

type SearchYAML struct {
	TiltStep    float64 `yaml:"tilt-step,omitempty"`
	AzimuthStep float64 `yaml:"azimuth-step,omitempty"`
	Workers     int     `yaml:"workers,omitempty"`
	Timeout     string  `yaml:"timeout,omitempty"`
}

type GridYAML struct {
	DayStep  int `yaml:"day-step,omitempty"`
	HourStep int `yaml:"hour-step,omitempty"`
}

type SiteYAML struct {
	Name        string  `yaml:"name,omitempty"`
	Latitude    float64 `yaml:"latitude"`
	Longitude   float64 `yaml:"longitude"`
	GroundSlope float64 `yaml:"ground-slope,omitempty"`
}
