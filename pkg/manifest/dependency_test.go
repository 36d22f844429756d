package manifest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allVariants() []TargetDependency {
	return []TargetDependency{
		TargetDep("Core", When(PlatformIOS)),
		ProjectDep("Kit", "../kit", nil),
		FrameworkDep("Vendor/Sample.framework", StatusOptional, When(PlatformMacOS)),
		LibraryDep("Vendor/libsample.a", "Vendor/include", "Vendor/module.modulemap", nil),
		PackageDep("Sample", PackageRuntime),
		PackagePluginDep("SamplePlugin"),
		SDKDep("sqlite3", SDKTypeLibrary, StatusOptional, nil),
		XCFrameworkDep("Vendor/Sample.xcframework", StatusRequired, nil),
		XCTestDep(),
		ExternalDep("Alamofire", When(PlatformIOS, PlatformMacOS)),
		CocoapodDep(SDKTypeFramework, "pod 'Sample', '~> 1.0'"),
	}
}

func TestTypeNameStable(t *testing.T) {
	want := []string{
		"target", "project", "framework", "library", "package",
		"packagePlugin", "sdk", "xcframework", "xctest", "external",
		"cocoapod",
	}
	variants := allVariants()
	require.Len(t, variants, len(want))
	seen := make(map[string]struct{})
	for i, dep := range variants {
		assert.Equal(t, want[i], dep.TypeName())
		seen[dep.TypeName()] = struct{}{}
	}
	assert.Len(t, seen, len(want), "tags must be distinct")
}

func TestRoundTrip(t *testing.T) {
	for _, dep := range allVariants() {
		data, err := json.Marshal(dep)
		require.NoError(t, err, dep.TypeName())
		var decoded TargetDependency
		require.NoError(t, json.Unmarshal(data, &decoded), dep.TypeName())
		assert.True(t, dep.Equal(decoded), "%s: %s", dep.TypeName(), string(data))
	}
}

func TestSDKDepRequiredDefaultsStatus(t *testing.T) {
	dep := SDKDepRequired("CloudKit", SDKTypeFramework, nil)
	assert.Equal(t, StatusRequired, dep.Status())
	assert.True(t, dep.Equal(SDKDep("CloudKit", SDKTypeFramework, StatusRequired, nil)))
}

func TestTargetDepOfExtractsName(t *testing.T) {
	target := &Target{Name: "Core"}
	dep := TargetDepOf(target, When(PlatformIOS))
	assert.True(t, dep.Equal(TargetDep("Core", When(PlatformIOS))))
}

func TestEqualDistinguishesPayload(t *testing.T) {
	assert.False(t, TargetDep("A", nil).Equal(TargetDep("B", nil)))
	assert.False(t, TargetDep("A", nil).Equal(ExternalDep("A", nil)))
	assert.False(t, TargetDep("A", When(PlatformIOS)).Equal(TargetDep("A", nil)))
	assert.False(t, FrameworkDep("p", StatusRequired, nil).Equal(FrameworkDep("p", StatusOptional, nil)))
}
