package config

// SiteOverlayProvider wraps a ConfigProvider and substitutes its sites, so a
// site given on the command line runs with the file's model and search
// settings. A nil base provider means engine defaults.
type SiteOverlayProvider struct {
	provider ConfigProvider
	sites    []SiteData
}

// NewSiteOverlayProvider creates a provider whose sites are replaced by sites
func NewSiteOverlayProvider(provider ConfigProvider, sites ...SiteData) *SiteOverlayProvider {
	return &SiteOverlayProvider{
		provider: provider,
		sites:    sites,
	}
}

// LoadConfig returns the wrapped configuration with the overlay sites
func (s *SiteOverlayProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}
	if s.provider != nil {
		base, err := s.provider.LoadConfig()
		if err != nil {
			return nil, err
		}
		copied := *base
		config = &copied
	}

	config.Sites = append([]SiteData(nil), s.sites...)
	return config, nil
}

// GetSites returns the overlay sites
func (s *SiteOverlayProvider) GetSites() ([]SiteData, error) {
	return s.sites, nil
}

func (s *SiteOverlayProvider) IsReadOnly() bool {
	return true
}

// Close closes the wrapped provider
func (s *SiteOverlayProvider) Close() error {
	if s.provider != nil {
		return s.provider.Close()
	}
	return nil
}
