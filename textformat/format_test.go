package textformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFormattingPlainText(t *testing.T) {
	got, err := StripFormatting("  Hello \t  world  \n   next\tline  ")
	require.NoError(t, err)
	assert.Equal(t, "Hello world\nnext line", got)

	empty, err := StripFormatting("")
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestStripFormattingMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "paragraphs and breaks",
			in:   "<p>First line<br>second line</p><p>Next paragraph</p>",
			want: "First line\nsecond line\n\nNext paragraph",
		},
		{
			name: "list items",
			in:   "<ul><li>One</li><li>Two</li></ul>",
			want: "• One\n• Two",
		},
		{
			name: "headings and divs",
			in:   "<h1>Title</h1><div>Body  text</div>",
			want: "Title\nBody text",
		},
		{
			name: "scripts and styles are dropped",
			in:   "<p>Safe</p><script>alert('x')</script><style>p{color:red}</style>",
			want: "Safe",
		},
		{
			name: "entities are decoded",
			in:   "<b>Fish &amp; chips</b> &lt;3",
			want: "Fish & chips <3",
		},
		{
			name: "blank runs are capped",
			in:   "<div>a</div><br><br><br><br><div>b</div>",
			want: "a\n\n\nb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StripFormatting(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAutoFormat(t *testing.T) {
	in := "  hello   world . i think so! this is it .  \n\n\n  second   paragraph , yes\n\n"

	assert.Equal(t, "Hello world. I think so! This is it.\n\nSecond paragraph, yes", AutoFormat(in))
	assert.Equal(t, "", AutoFormat("  \n \n"))
	assert.Equal(t, "It's fine", AutoFormat("it ' s fine"))
}

func TestConvertCase(t *testing.T) {
	tests := []struct {
		mode CaseMode
		want string
	}{
		{CaseUpper, "HELLO WORLD. GO IS FUN!"},
		{CaseLower, "hello world. go is fun!"},
		{CaseTitle, "Hello World. Go Is Fun!"},
		{CaseSentence, "Hello world. Go is fun!"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got, err := ConvertCase("hELLO world. go IS fun!", tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ConvertCase("text", CaseMode("shout"))
	assert.ErrorIs(t, err, ErrUnknownCase)
}

func TestExtractFormatting(t *testing.T) {
	html := `<div style="font-family: 'Open Sans', Arial; font-size: 14px; color: #333">
		<h2>Heading</h2>
		<p><strong>Bold</strong> and <em>italic</em> and <u>under</u></p>
		<span style="font-weight: 400">normal</span>
		<span style="font-weight: 700; COLOR: red">heavy</span>
		<font face="Georgia" size="3" color="blue">legacy</font>
		<script>document.write("<b>x</b>")</script>
	</div>`

	info, err := ExtractFormatting(html)
	require.NoError(t, err)
	require.NotNil(t, info)

	assert.Equal(t, []string{"Open Sans, Arial", "Georgia"}, info.Fonts)
	assert.Equal(t, []string{"14px", "3"}, info.Sizes)
	assert.Equal(t, []string{"700"}, info.Weights)
	assert.Equal(t, []string{"#333", "red", "blue"}, info.Colors)
	assert.Equal(t, []string{"Heading", "Bold", "Italic", "Underline"}, info.Styles)
	assert.Equal(t, []string{"h2", "p", "strong", "em", "u"}, info.Elements)
	assert.True(t, info.HasFormatting)
}

func TestExtractFormattingPlainText(t *testing.T) {
	info, err := ExtractFormatting("no markup here")
	require.NoError(t, err)
	assert.Nil(t, info)

	bare, err := ExtractFormatting("<p>just a paragraph</p>")
	require.NoError(t, err)
	require.NotNil(t, bare)
	assert.False(t, bare.HasFormatting)
	assert.Equal(t, []string{"p"}, bare.Elements)
}

func TestOrderedSetFirst(t *testing.T) {
	s := newOrderedSet()
	for _, v := range []string{"div", " p ", "", "span", "p", "b", "i"} {
		s.add(v)
	}

	assert.Equal(t, []string{"div", "p", "span", "b", "i"}, s.items)
	assert.Equal(t, []string{"p", "b"}, s.first(2, "div", "span"))
	assert.Equal(t, []string{"p", "b", "i"}, s.first(8, "div", "span"))
	assert.Empty(t, s.first(0))
}
