package utils_test

import (
	"strings"
	"testing"

	"github.com/gambosports/gambo_sports/utils"
	"github.com/stretchr/testify/assert"
)

func TestGenerateCoachAvatarURL(t *testing.T) {
	url := utils.GenerateCoachAvatarURL("John Carter")

	assert.True(t, strings.HasPrefix(url, "https://avatars.dicebear.com/api/"))
	assert.True(t, strings.HasSuffix(url, "/JohnCarter.svg"), "seed strips spaces")

	assert.Equal(t, url, utils.GenerateCoachAvatarURL("John Carter"), "same name, same avatar")
}
