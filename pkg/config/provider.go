package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get the sites to optimize
	GetSites() ([]SiteData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure. Zero values and
// nil pointers mean "use the engine default".
type ConfigData struct {
	Model  ModelData  `json:"model"`
	Search SearchData `json:"search"`
	Grid   GridData   `json:"grid"`
	Sites  []SiteData `json:"sites"`
}

// ModelData holds the physical constants of the irradiance model
type ModelData struct {
	ClearSky       *ClearSkyData `json:"clear_sky,omitempty"`
	Albedo         *float64      `json:"albedo,omitempty"`
	Efficiency     *float64      `json:"efficiency,omitempty"`
	PanelArea      *float64      `json:"panel_area,omitempty"`
	EquationOfTime *bool         `json:"equation_of_time,omitempty"`
}

// ClearSkyData overrides the clear-sky constants; all five must be given
type ClearSkyData struct {
	A  float64 `json:"a"`
	B  float64 `json:"b"`
	C1 float64 `json:"c1"`
	C2 float64 `json:"c2"`
	C3 float64 `json:"c3"`
}

// SearchData holds the optimizer's resolution and limits
type SearchData struct {
	TiltStep    float64 `json:"tilt_step,omitempty"`
	AzimuthStep float64 `json:"azimuth_step,omitempty"`
	Workers     int     `json:"workers,omitempty"`
	Timeout     string  `json:"timeout,omitempty"`
}

// GridData holds the annual sampling grid
type GridData struct {
	DayStep  int `json:"day_step,omitempty"`
	HourStep int `json:"hour_step,omitempty"`
}

// SiteData is one location to optimize
type SiteData struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	GroundSlope float64 `json:"ground_slope,omitempty"`
}
