package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindImages(t *testing.T) {
	body := "Intro ![a cat](cat.png) and ![remote](https://x.test/y.png \"title\")\n" +
		"```\n![in fence](skip.png)\n```\n" +
		"Use `![code](skip2.png)` literally.\n" +
		"    ![indented](skip3.png)\n" +
		"![ spaced ]( dir/pic.jpg )\n"

	imgs := FindImages([]byte(body))
	require.Len(t, imgs, 3)
	assert.Equal(t, "a cat", imgs[0].Alt)
	assert.Equal(t, "cat.png", imgs[0].Destination)
	assert.Equal(t, "cat.png", body[imgs[0].Start:imgs[0].End])
	assert.Equal(t, "https://x.test/y.png", imgs[1].Destination)
	assert.Equal(t, "dir/pic.jpg", imgs[2].Destination)
	assert.Equal(t, "dir/pic.jpg", body[imgs[2].Start:imgs[2].End])
}

func TestRewriteImages(t *testing.T) {
	body := "![a](a.png)\n~~~\n![b](b.png)\n~~~\n![c](http://c.test/c.png) ![d](./d.png)\n"
	out, err := RewriteImages([]byte(body), func(dest string) (string, bool) {
		if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
			return "", false
		}
		return "/images/blog/" + dest, true
	})
	require.NoError(t, err)
	assert.Equal(t, "![a](/images/blog/a.png)\n~~~\n![b](b.png)\n~~~\n![c](http://c.test/c.png) ![d](/images/blog/./d.png)\n", string(out))
}
