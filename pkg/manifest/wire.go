package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/easeway/langx.go/mapper"
)

// dependencyWire is the tag + payload encoding of TargetDependency.
// Variant-irrelevant fields are omitted from the output.
type dependencyWire struct {
	Type          string         `json:"type"`
	Name          string         `json:"name,omitempty"`
	Path          string         `json:"path,omitempty"`
	PublicHeaders string         `json:"public_headers,omitempty"`
	ModuleMap     string         `json:"module_map,omitempty"`
	Status        string         `json:"status,omitempty"`
	PackageType   string         `json:"package_type,omitempty"`
	SDKType       string         `json:"sdk_type,omitempty"`
	Content       string         `json:"content,omitempty"`
	Condition     *conditionWire `json:"condition,omitempty"`
}

type conditionWire struct {
	Platforms []string `json:"platforms"`
}

// MarshalJSON implements json.Marshaler.
func (d TargetDependency) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *TargetDependency) UnmarshalJSON(data []byte) error {
	var w dependencyWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	dep, err := fromWire(w)
	if err != nil {
		return err
	}
	*d = dep
	return nil
}

// DecodeDependency constructs a TargetDependency from a generic manifest
// dictionary, failing with a DecodeError naming the offending field.
func DecodeDependency(dict map[string]interface{}) (TargetDependency, error) {
	var w dependencyWire
	m := mapper.Mapper{FieldTags: []string{"json", "map"}}
	if err := m.Map(&w, dict); err != nil {
		return TargetDependency{}, fmt.Errorf("decode dependency error: %w", err)
	}
	return fromWire(w)
}

func (d TargetDependency) wire() dependencyWire {
	w := dependencyWire{
		Type:          string(d.dependencyType),
		Name:          d.name,
		Path:          d.path,
		PublicHeaders: d.publicHeaders,
		ModuleMap:     d.moduleMap,
		Status:        string(d.status),
		PackageType:   string(d.packageType),
		SDKType:       string(d.sdkType),
		Content:       d.content,
	}
	if d.condition != nil {
		platforms := make([]string, len(d.condition.Platforms))
		for i, p := range d.condition.Platforms {
			platforms[i] = string(p)
		}
		w.Condition = &conditionWire{Platforms: platforms}
	}
	return w
}

func fromWire(w dependencyWire) (TargetDependency, error) {
	depType := DependencyType(w.Type)
	if w.Type == "" {
		return TargetDependency{}, &DecodeError{Field: "type"}
	}
	if !depType.IsValid() {
		return TargetDependency{}, fmt.Errorf("%w: %q", ErrUnknownDependencyType, w.Type)
	}

	condition, err := decodeCondition(w.Condition)
	if err != nil {
		return TargetDependency{}, err
	}

	switch depType {
	case DependencyTarget:
		if w.Name == "" {
			return TargetDependency{}, &DecodeError{Field: "name"}
		}
		return TargetDep(w.Name, condition), nil
	case DependencyProject:
		if w.Name == "" {
			return TargetDependency{}, &DecodeError{Field: "name"}
		}
		if w.Path == "" {
			return TargetDependency{}, &DecodeError{Field: "path"}
		}
		return ProjectDep(w.Name, w.Path, condition), nil
	case DependencyFramework, DependencyXCFramework:
		if w.Path == "" {
			return TargetDependency{}, &DecodeError{Field: "path"}
		}
		status, err := decodeStatus(w.Status)
		if err != nil {
			return TargetDependency{}, err
		}
		if depType == DependencyFramework {
			return FrameworkDep(w.Path, status, condition), nil
		}
		return XCFrameworkDep(w.Path, status, condition), nil
	case DependencyLibrary:
		if w.Path == "" {
			return TargetDependency{}, &DecodeError{Field: "path"}
		}
		if w.PublicHeaders == "" {
			return TargetDependency{}, &DecodeError{Field: "public_headers"}
		}
		return LibraryDep(w.Path, w.PublicHeaders, w.ModuleMap, condition), nil
	case DependencyPackage:
		if w.Name == "" {
			return TargetDependency{}, &DecodeError{Field: "name"}
		}
		if condition != nil {
			return TargetDependency{}, &DecodeError{Field: "condition"}
		}
		packageType := PackageType(w.PackageType)
		if w.PackageType == "" {
			packageType = PackageRuntime
		}
		if !packageType.IsValid() {
			return TargetDependency{}, &DecodeError{Field: "package_type"}
		}
		return PackageDep(w.Name, packageType), nil
	case DependencyPackagePlugin:
		if w.Name == "" {
			return TargetDependency{}, &DecodeError{Field: "name"}
		}
		if condition != nil {
			return TargetDependency{}, &DecodeError{Field: "condition"}
		}
		return PackagePluginDep(w.Name), nil
	case DependencySDK:
		if w.Name == "" {
			return TargetDependency{}, &DecodeError{Field: "name"}
		}
		sdkType := SDKType(w.SDKType)
		if !sdkType.IsValid() {
			return TargetDependency{}, &DecodeError{Field: "sdk_type"}
		}
		status, err := decodeStatus(w.Status)
		if err != nil {
			return TargetDependency{}, err
		}
		return SDKDep(w.Name, sdkType, status, condition), nil
	case DependencyXCTest:
		if condition != nil {
			return TargetDependency{}, &DecodeError{Field: "condition"}
		}
		return XCTestDep(), nil
	case DependencyExternal:
		if w.Name == "" {
			return TargetDependency{}, &DecodeError{Field: "name"}
		}
		return ExternalDep(w.Name, condition), nil
	default: // DependencyCocoapod
		sdkType := SDKType(w.SDKType)
		if !sdkType.IsValid() {
			return TargetDependency{}, &DecodeError{Field: "sdk_type"}
		}
		if w.Content == "" {
			return TargetDependency{}, &DecodeError{Field: "content"}
		}
		if condition != nil {
			return TargetDependency{}, &DecodeError{Field: "condition"}
		}
		return CocoapodDep(sdkType, w.Content), nil
	}
}

// decodeStatus defaults an absent linkage status to required.
func decodeStatus(val string) (LinkingStatus, error) {
	if val == "" {
		return StatusRequired, nil
	}
	status := LinkingStatus(val)
	if !status.IsValid() {
		return "", &DecodeError{Field: "status"}
	}
	return status, nil
}

func decodeCondition(w *conditionWire) (*PlatformCondition, error) {
	if w == nil {
		return nil, nil
	}
	platforms := make([]Platform, len(w.Platforms))
	for i, p := range w.Platforms {
		platforms[i] = Platform(p)
	}
	condition := &PlatformCondition{Platforms: platforms}
	if err := condition.validate(); err != nil {
		return nil, err
	}
	return When(platforms...), nil
}
