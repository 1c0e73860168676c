package colorscheme

// NewDefaultResolver creates a resolver with every built-in detector
// registered.
func NewDefaultResolver(config ConfigProvider) *Resolver {
	r := NewResolver(config)
	r.RegisterDetector(NewPortalDetector())
	r.RegisterDetector(NewRegistryDetector())
	r.RegisterDetector(NewDefaultsDetector())
	r.RegisterDetector(NewTerminalDetector())
	r.RegisterDetector(NewEnvDetector())
	r.RegisterDetector(NewGsettingsDetector())
	return r
}
