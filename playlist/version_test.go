package playlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		wantAttr   string
		wantLegacy bool
		wantErr    bool
	}{
		{name: "Rule based", version: "2.0", wantAttr: "2.0"},
		{name: "Major only", version: "2", wantAttr: "2.0"},
		{name: "Legacy", version: "1.0", wantAttr: "1.0", wantLegacy: true},
		{name: "Too new", version: "3.0", wantErr: true},
		{name: "Too old", version: "0.9", wantErr: true},
		{name: "Not a version", version: "latest", wantErr: true},
		{name: "Empty", version: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ver, err := ParseVersion(tt.version)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantAttr, versionAttribute(ver))
			require.Equal(t, tt.wantLegacy, isLegacy(ver))
		})
	}
}
