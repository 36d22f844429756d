package manifest

// DependencyType identifies which variant of TargetDependency is populated.
type DependencyType string

// Values of DependencyType. These are the canonical tag strings used by the
// wire encoding and by diagnostics; external tooling relies on the exact
// spelling.
const (
	DependencyTarget        DependencyType = "target"
	DependencyProject       DependencyType = "project"
	DependencyFramework     DependencyType = "framework"
	DependencyLibrary       DependencyType = "library"
	DependencyPackage       DependencyType = "package"
	DependencyPackagePlugin DependencyType = "packagePlugin"
	DependencySDK           DependencyType = "sdk"
	DependencyXCFramework   DependencyType = "xcframework"
	DependencyXCTest        DependencyType = "xctest"
	DependencyExternal      DependencyType = "external"
	DependencyCocoapod      DependencyType = "cocoapod"
)

// IsValid reports whether the dependency type is a known value.
func (t DependencyType) IsValid() bool {
	switch t {
	case DependencyTarget, DependencyProject, DependencyFramework,
		DependencyLibrary, DependencyPackage, DependencyPackagePlugin,
		DependencySDK, DependencyXCFramework, DependencyXCTest,
		DependencyExternal, DependencyCocoapod:
		return true
	}
	return false
}

// TargetDependency declares one edge from a target to something it links
// against or builds after. Exactly one variant is populated per value;
// construct through the per-variant constructors. Values are immutable once
// constructed and compared structurally with Equal.
type TargetDependency struct {
	dependencyType DependencyType
	name           string
	path           string
	publicHeaders  string
	moduleMap      string
	status         LinkingStatus
	packageType    PackageType
	sdkType        SDKType
	content        string
	condition      *PlatformCondition
}

// TargetDep declares a dependency on a sibling target by name.
func TargetDep(name string, condition *PlatformCondition) TargetDependency {
	return TargetDependency{
		dependencyType: DependencyTarget,
		name:           name,
		condition:      condition,
	}
}

// TargetDepOf declares a dependency on a sibling target, taking the name
// from the target itself.
func TargetDepOf(target *Target, condition *PlatformCondition) TargetDependency {
	return TargetDep(target.Name, condition)
}

// ProjectDep declares a dependency on a target defined in another project,
// identified by target name and the project's relative path.
func ProjectDep(target, path string, condition *PlatformCondition) TargetDependency {
	return TargetDependency{
		dependencyType: DependencyProject,
		name:           target,
		path:           path,
		condition:      condition,
	}
}

// FrameworkDep declares a dependency on a prebuilt framework at path.
func FrameworkDep(path string, status LinkingStatus, condition *PlatformCondition) TargetDependency {
	return TargetDependency{
		dependencyType: DependencyFramework,
		path:           path,
		status:         status,
		condition:      condition,
	}
}

// XCFrameworkDep declares a dependency on a prebuilt XCFramework at path.
func XCFrameworkDep(path string, status LinkingStatus, condition *PlatformCondition) TargetDependency {
	return TargetDependency{
		dependencyType: DependencyXCFramework,
		path:           path,
		status:         status,
		condition:      condition,
	}
}

// LibraryDep declares a dependency on a prebuilt library at path, with its
// public headers and an optional module map.
func LibraryDep(path, publicHeaders, moduleMap string, condition *PlatformCondition) TargetDependency {
	return TargetDependency{
		dependencyType: DependencyLibrary,
		path:           path,
		publicHeaders:  publicHeaders,
		moduleMap:      moduleMap,
		condition:      condition,
	}
}

// PackageDep declares a dependency on an externally resolved package product.
func PackageDep(product string, packageType PackageType) TargetDependency {
	return TargetDependency{
		dependencyType: DependencyPackage,
		name:           product,
		packageType:    packageType,
	}
}

// PackagePluginDep declares a dependency on a build-time package plugin product.
func PackagePluginDep(product string) TargetDependency {
	return TargetDependency{
		dependencyType: DependencyPackagePlugin,
		name:           product,
	}
}

// SDKDep declares a dependency on a named system library or framework.
func SDKDep(name string, sdkType SDKType, status LinkingStatus, condition *PlatformCondition) TargetDependency {
	return TargetDependency{
		dependencyType: DependencySDK,
		name:           name,
		sdkType:        sdkType,
		status:         status,
		condition:      condition,
	}
}

// SDKDepRequired declares a required dependency on a named system library
// or framework.
func SDKDepRequired(name string, sdkType SDKType, condition *PlatformCondition) TargetDependency {
	return SDKDep(name, sdkType, StatusRequired, condition)
}

// XCTestDep declares the dependency on the platform test framework.
func XCTestDep() TargetDependency {
	return TargetDependency{dependencyType: DependencyXCTest}
}

// ExternalDep declares a dependency resolved through the dependency lock file.
func ExternalDep(name string, condition *PlatformCondition) TargetDependency {
	return TargetDependency{
		dependencyType: DependencyExternal,
		name:           name,
		condition:      condition,
	}
}

// CocoapodDep declares a CocoaPods dependency with an SDK kind and the raw
// pod declaration content.
func CocoapodDep(sdkType SDKType, content string) TargetDependency {
	return TargetDependency{
		dependencyType: DependencyCocoapod,
		sdkType:        sdkType,
		content:        content,
	}
}

// Type returns which variant is populated.
func (d TargetDependency) Type() DependencyType {
	return d.dependencyType
}

// TypeName returns the canonical tag string of the populated variant.
func (d TargetDependency) TypeName() string {
	return string(d.dependencyType)
}

// Name returns the referenced name: the target, product, SDK, or external
// dependency name, depending on the variant.
func (d TargetDependency) Name() string {
	return d.name
}

// Path returns the filesystem path payload of path-based variants.
func (d TargetDependency) Path() string {
	return d.path
}

// PublicHeaders returns the public headers path of a library dependency.
func (d TargetDependency) PublicHeaders() string {
	return d.publicHeaders
}

// ModuleMap returns the module map path of a library dependency, if any.
func (d TargetDependency) ModuleMap() string {
	return d.moduleMap
}

// Status returns the linkage status of framework, xcframework and sdk variants.
func (d TargetDependency) Status() LinkingStatus {
	return d.status
}

// PackageType returns the package kind of a package dependency.
func (d TargetDependency) PackageType() PackageType {
	return d.packageType
}

// SDKType returns the SDK kind of sdk and cocoapod variants.
func (d TargetDependency) SDKType() SDKType {
	return d.sdkType
}

// Content returns the raw declaration content of a cocoapod dependency.
func (d TargetDependency) Content() string {
	return d.content
}

// Condition returns the platform condition gating this edge, or nil.
func (d TargetDependency) Condition() *PlatformCondition {
	return d.condition
}

// Equal reports whether two dependencies are structurally identical.
func (d TargetDependency) Equal(o TargetDependency) bool {
	return d.dependencyType == o.dependencyType &&
		d.name == o.name &&
		d.path == o.path &&
		d.publicHeaders == o.publicHeaders &&
		d.moduleMap == o.moduleMap &&
		d.status == o.status &&
		d.packageType == o.packageType &&
		d.sdkType == o.sdkType &&
		d.content == o.content &&
		d.condition.Equal(o.condition)
}
