package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ref        string
		wantBranch string
		wantTag    string
	}{
		{"branch ref", "refs/heads/main", "main", ""},
		{"branch ref with slashes", "refs/heads/feature/matrix", "feature/matrix", ""},
		{"tag ref", "refs/tags/v1.0", "", "v1.0"},
		{"tag ref with dots", "refs/tags/v0.12.0-rc1", "", "v0.12.0-rc1"},
		{"pull request ref", "refs/pull/42/merge", "", ""},
		{"remote ref", "refs/remotes/origin/main", "", ""},
		{"bare word", "main", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			branch, tag := classifyRef(tt.ref)
			assert.Equal(t, tt.wantBranch, branch)
			assert.Equal(t, tt.wantTag, tag)

			// Mutual exclusivity holds for every input shape.
			assert.False(t, branch != "" && tag != "")
		})
	}
}
