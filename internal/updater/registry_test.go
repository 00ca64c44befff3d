package updater

import (
	"context"
	"testing"
)

func TestNPMRegistry_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NPMRegistry{Package: "swift-patterns-skill"}.LatestVersion(ctx)
	if err == nil {
		t.Error("expected error for canceled context")
	}
}
