package manifest

// LinkingStatus tells whether a linked artifact must be present at runtime.
type LinkingStatus string

// Values of LinkingStatus.
const (
	StatusRequired LinkingStatus = "required"
	StatusOptional LinkingStatus = "optional"
)

// IsValid reports whether the status is a known value.
func (s LinkingStatus) IsValid() bool {
	return s == StatusRequired || s == StatusOptional
}

// SDKType tells whether an SDK dependency is a system library or framework.
type SDKType string

// Values of SDKType.
const (
	SDKTypeLibrary   SDKType = "library"
	SDKTypeFramework SDKType = "framework"
)

// IsValid reports whether the SDK type is a known value.
func (s SDKType) IsValid() bool {
	return s == SDKTypeLibrary || s == SDKTypeFramework
}

// PackageType tells how an external package product participates in the build.
type PackageType string

// Values of PackageType.
const (
	PackageRuntime PackageType = "runtime"
	PackagePlugin  PackageType = "plugin"
	PackageMacro   PackageType = "macro"
)

// IsValid reports whether the package type is a known value.
func (t PackageType) IsValid() bool {
	return t == PackageRuntime || t == PackagePlugin || t == PackageMacro
}
