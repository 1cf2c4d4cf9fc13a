package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	full := Full()
	assert.True(t, strings.HasPrefix(full, AppName+"/"))
	assert.Equal(t, AppName+"/"+GitCommit, full)
}

func TestGitCommit(t *testing.T) {
	assert.NotEmpty(t, GitCommit)
	assert.LessOrEqual(t, len(GitCommit), 8)
}

func TestShort(t *testing.T) {
	assert.Equal(t, "a3f8c2d1", short("a3f8c2d1e9b74f06"))
	assert.Equal(t, "dev", short("dev"))
}
