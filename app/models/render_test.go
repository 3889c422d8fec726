package models

import (
	"strings"
	"testing"

	"inkwell/app/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndScenario(t *testing.T) {
	alice := NewUser(testutil.FixedClock(), "Alice", "a@x.com")
	blog := alice.CreateBlog("My Blog")
	post, err := alice.AuthorPost(blog, "Hello", "World")
	require.NoError(t, err)
	_, err = alice.AuthorComment(post, "Re", "Nice!")
	require.NoError(t, err)

	blogOut := blog.Render()
	assert.Equal(t, "<h1>My Blog</h1><p><h2>Hello</h2>World</p>", blogOut)
	assert.True(t, strings.HasPrefix(blogOut, "<h1>My Blog</h1>"))

	postOut := post.Render()
	assert.Equal(t, "<div><h2>Hello</h2>World</div><h2>Comments:</h2><p><h2>Alice said: Re</h2>Nice!</p>", postOut)
	idx := strings.Index(postOut, "Comments:")
	require.GreaterOrEqual(t, idx, 0)
	assert.Contains(t, postOut[idx:], "Alice said: Re")
	assert.Contains(t, postOut[idx:], "Nice!")
}

func TestShortRender(t *testing.T) {
	alice := NewUser(testutil.FixedClock(), "Alice", "a@x.com")
	blog := alice.CreateBlog("b")

	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty", "", "<p><h2>T</h2></p>"},
		{"short body renders in full", "World", "<p><h2>T</h2>World</p>"},
		{"exactly thirty", strings.Repeat("a", 30), "<p><h2>T</h2>" + strings.Repeat("a", 30) + "</p>"},
		{"long body is cut at thirty", strings.Repeat("a", 30) + "bcdef", "<p><h2>T</h2>" + strings.Repeat("a", 30) + "</p>"},
		{"counts characters not bytes", strings.Repeat("é", 31), "<p><h2>T</h2>" + strings.Repeat("é", 30) + "</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := alice.AuthorPost(blog, "T", tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.ShortRender())
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	alice := NewUser(testutil.FixedClock(), "Alice", "a@x.com")
	blog := alice.CreateBlog("My Blog")
	for _, title := range []string{"one", "two", "three"} {
		p, err := alice.AuthorPost(blog, title, strings.Repeat(title, 12))
		require.NoError(t, err)
		_, err = alice.AuthorComment(p, "re "+title, "ok")
		require.NoError(t, err)
	}

	assert.Equal(t, blog.Render(), blog.Render())
	for _, p := range blog.Posts() {
		assert.Equal(t, p.Render(), p.Render())
		assert.Equal(t, p.ShortRender(), p.ShortRender())
	}
}

func TestRendererEscaping(t *testing.T) {
	bob := NewUser(testutil.FixedClock(), "<b>Bob</b>", "b@x.com")
	blog := bob.CreateBlog("Tom & Jerry")
	post, err := bob.AuthorPost(blog, "<script>", "a < b")
	require.NoError(t, err)
	comment, err := bob.AuthorComment(post, "\"quoted\"", "x")
	require.NoError(t, err)

	t.Run("verbatim by default", func(t *testing.T) {
		assert.Equal(t, "<h1>Tom & Jerry</h1><p><h2><script></h2>a < b</p>", blog.Render())
	})

	t.Run("escaped", func(t *testing.T) {
		r := Renderer{EscapeHTML: true}
		assert.Equal(t, "<h1>Tom &amp; Jerry</h1><p><h2>&lt;script&gt;</h2>a &lt; b</p>", r.Blog(blog))
		assert.Equal(t, "<p><h2>&lt;b&gt;Bob&lt;/b&gt; said: &#34;quoted&#34;</h2>x</p>", r.Comment(comment))
	})

	t.Run("truncates before escaping", func(t *testing.T) {
		p, err := bob.AuthorPost(blog, "t", "&&&&")
		require.NoError(t, err)
		r := Renderer{EscapeHTML: true, SummaryLength: 2}
		assert.Equal(t, "<p><h2>t</h2>&amp;&amp;</p>", r.PostSummary(p))
	})
}
