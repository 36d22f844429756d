package manifest

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUnknownType(t *testing.T) {
	var dep TargetDependency
	err := json.Unmarshal([]byte(`{"type":"carthage","name":"X"}`), &dep)
	assert.ErrorIs(t, err, ErrUnknownDependencyType)
}

func TestDecodeMissingTag(t *testing.T) {
	var dep TargetDependency
	err := json.Unmarshal([]byte(`{"name":"X"}`), &dep)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "type", decodeErr.Field)
}

func TestDecodeVariantShape(t *testing.T) {
	for _, test := range []struct {
		name  string
		doc   string
		field string
	}{
		{"target without name", `{"type":"target"}`, "name"},
		{"project without path", `{"type":"project","name":"Kit"}`, "path"},
		{"framework without path", `{"type":"framework"}`, "path"},
		{"library without headers", `{"type":"library","path":"lib.a"}`, "public_headers"},
		{"sdk without kind", `{"type":"sdk","name":"sqlite3"}`, "sdk_type"},
		{"sdk bad status", `{"type":"sdk","name":"sqlite3","sdk_type":"library","status":"maybe"}`, "status"},
		{"package bad kind", `{"type":"package","name":"P","package_type":"dynamic"}`, "package_type"},
		{"cocoapod without content", `{"type":"cocoapod","sdk_type":"framework"}`, "content"},
		{"xctest with condition", `{"type":"xctest","condition":{"platforms":["ios"]}}`, "condition"},
		{"bad platform", `{"type":"target","name":"X","condition":{"platforms":["android"]}}`, "condition.platforms"},
	} {
		t.Run(test.name, func(t *testing.T) {
			var dep TargetDependency
			err := json.Unmarshal([]byte(test.doc), &dep)
			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "got %v", err)
			assert.Equal(t, test.field, decodeErr.Field)
		})
	}
}

func TestDecodeEmptyConditionRejected(t *testing.T) {
	var dep TargetDependency
	err := json.Unmarshal([]byte(`{"type":"target","name":"X","condition":{"platforms":[]}}`), &dep)
	assert.ErrorIs(t, err, ErrEmptyCondition)
}

func TestDecodeStatusDefaultsToRequired(t *testing.T) {
	var dep TargetDependency
	require.NoError(t, json.Unmarshal([]byte(`{"type":"framework","path":"V/S.framework"}`), &dep))
	assert.Equal(t, StatusRequired, dep.Status())

	require.NoError(t, json.Unmarshal([]byte(`{"type":"package","name":"P"}`), &dep))
	assert.Equal(t, PackageRuntime, dep.PackageType())
}

func TestDecodeDependencyFromDict(t *testing.T) {
	dep, err := DecodeDependency(map[string]interface{}{
		"type": "sdk",
		"name": "CloudKit",
		"sdk_type": "framework",
		"status": "optional",
		"condition": map[string]interface{}{
			"platforms": []interface{}{"macos", "ios"},
		},
	})
	require.NoError(t, err)
	assert.True(t, dep.Equal(SDKDep("CloudKit", SDKTypeFramework, StatusOptional, When(PlatformIOS, PlatformMacOS))))
}

func TestDecodeDependencyFromDictMissingField(t *testing.T) {
	_, err := DecodeDependency(map[string]interface{}{"type": "external"})
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "name", decodeErr.Field)
}
