package colorscheme

const (
	detectorNameRegistry = "registry"
	priorityRegistry     = 100
)

// RegistryDetector reads the Windows app theme from the user registry.
// It is never available on other platforms.
type RegistryDetector struct{}

// NewRegistryDetector creates a Windows registry detector.
func NewRegistryDetector() *RegistryDetector {
	return &RegistryDetector{}
}

// Name implements port.ColorSchemeDetector.
func (*RegistryDetector) Name() string {
	return detectorNameRegistry
}

// Priority implements port.ColorSchemeDetector.
func (*RegistryDetector) Priority() int {
	return priorityRegistry
}
