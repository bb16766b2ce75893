package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathString(t *testing.T) {
	assert.Equal(t, "", Path(nil).String())
	assert.Equal(t, "name.middle", Path(nil).Key("name").Key("middle").String())
	assert.Equal(t, "subcategories[0]", Path(nil).Key("subcategories").Index(0).String())
	assert.Equal(t, "a[1][2].b", Path(nil).Key("a").Index(1).Index(2).Key("b").String())
	assert.Equal(t, "[3].x", Path(nil).Index(3).Key("x").String())
}

func TestPathAppendDoesNotAlias(t *testing.T) {
	base := Path(nil).Key("a").Key("b")
	left := base.Key("left")
	right := base.Key("right")

	assert.Equal(t, "a.b.left", left.String())
	assert.Equal(t, "a.b.right", right.String())
	assert.Equal(t, "a.b", base.String())
}
