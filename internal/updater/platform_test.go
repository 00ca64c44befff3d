package updater

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
)

func TestArchiveName(t *testing.T) {
	name := ArchiveName()
	if !strings.HasPrefix(name, "swift-patterns_") {
		t.Errorf("ArchiveName = %q, want swift-patterns_ prefix", name)
	}
	if !strings.Contains(name, runtime.GOOS) || !strings.Contains(name, runtime.GOARCH) {
		t.Errorf("ArchiveName = %q, missing os/arch", name)
	}
	if runtime.GOOS == "windows" {
		if !strings.HasSuffix(name, ".zip") {
			t.Errorf("ArchiveName = %q, want .zip on windows", name)
		}
	} else if !strings.HasSuffix(name, ".tar.gz") {
		t.Errorf("ArchiveName = %q, want .tar.gz", name)
	}
}

func TestSelectAssetForPlatform(t *testing.T) {
	exact := ArchiveName()
	loose := fmt.Sprintf("release_%s_%s.tar.gz", runtime.GOOS, runtime.GOARCH)

	tests := []struct {
		name    string
		assets  []Asset
		want    string
		wantErr bool
	}{
		{
			"exact match",
			[]Asset{{Name: "other.tar.gz"}, {Name: exact}},
			exact,
			false,
		},
		{
			"loose match on os_arch",
			[]Asset{{Name: loose}},
			loose,
			false,
		},
		{
			"non-archive loose match skipped",
			[]Asset{{Name: fmt.Sprintf("checksums_%s_%s.txt", runtime.GOOS, runtime.GOARCH)}},
			"",
			true,
		},
		{
			"no match",
			[]Asset{{Name: "swift-patterns_plan9_mips.tar.gz"}},
			"",
			true,
		},
		{
			"empty list",
			nil,
			"",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := SelectAssetForPlatform(tt.assets)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if asset.Name != tt.want {
				t.Errorf("selected %q, want %q", asset.Name, tt.want)
			}
		})
	}
}
