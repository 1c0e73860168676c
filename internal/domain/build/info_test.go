package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_Short(t *testing.T) {
	assert.Equal(t, "dev", Info{}.Short())
	assert.Equal(t, "v1.2.0", Info{Version: "v1.2.0", Commit: "unknown"}.Short())
	assert.Equal(t, "v1.2.0 (abcdef1)", Info{Version: "v1.2.0", Commit: "abcdef1234"}.Short())
}
