package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromSlugURL(t *testing.T) {
	assert.Equal(t, "a woman doing yoga",
		titleFromSlugURL("https://www.pexels.com/video/a-woman-doing-yoga-855386/"))
	assert.Equal(t, "city traffic at night",
		titleFromSlugURL("https://www.pexels.com/video/city-traffic-at-night-854745"))
	assert.Equal(t, "", titleFromSlugURL(""))
	// id 없는 슬러그는 그대로 쓴다.
	assert.Equal(t, "ocean waves", titleFromSlugURL("https://www.pexels.com/video/ocean-waves/"))
}
