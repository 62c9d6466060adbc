package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glotscan.dev/pkg/glotscan/internal/domain/tokenizers"
	m "glotscan.dev/pkg/glotscan/internal/model"
)

func detect(t *testing.T, d Detector, tok tokenizers.Tokenizer, src string) m.Extraction {
	t.Helper()

	tokens, err := tok.Tokenize([]byte(src))
	require.NoError(t, err)

	return d.Detect(DetectInput{
		File:     "fixture",
		Language: tok.Language(),
		Concat:   tok.ConcatOperator(),
		Tokens:   tokens,
	})
}

func texts(ext m.Extraction) []string {
	out := make([]string, 0, len(ext.CallSites))
	for _, cs := range ext.CallSites {
		out = append(out, cs.Text)
	}

	return out
}

func TestDetector_PHP(t *testing.T) {
	d := NewDetector(nil)
	php := tokenizers.NewPHPTokenizer()

	t.Run("merges concatenated literals", func(t *testing.T) {
		ext := detect(t, d, php, "<?php echo t('Hello ' . 'World'); ?>")

		require.Len(t, ext.CallSites, 1)
		assert.Equal(t, m.CallSite{Function: "t", Text: "Hello World", File: "fixture", Line: 1}, ext.CallSites[0])
		assert.Empty(t, ext.Unresolved)
	})

	t.Run("reads context argument", func(t *testing.T) {
		ext := detect(t, d, php, "<?php\n\n__(\"Open\", 'menu' . 'bar');\n")

		require.Len(t, ext.CallSites, 1)
		assert.Equal(t, "Open", ext.CallSites[0].Text)
		assert.Equal(t, "menubar", ext.CallSites[0].Context)
		assert.Equal(t, 3, ext.CallSites[0].Line)
	})

	t.Run("finds call within a closure", func(t *testing.T) {
		src := "<?php\n$out = array_map(function ($x) {\n    return t('Within a closure');\n}, $items);\n"
		ext := detect(t, d, php, src)

		require.Len(t, ext.CallSites, 1)
		assert.Equal(t, "Within a closure", ext.CallSites[0].Text)
		assert.Equal(t, 3, ext.CallSites[0].Line)
	})

	t.Run("nested translation call", func(t *testing.T) {
		ext := detect(t, d, php, "<?php t(t('inner'));")

		assert.Equal(t, []string{"inner"}, texts(ext))
		require.Len(t, ext.Unresolved, 1)
		assert.Equal(t, ReasonNestedCall, ext.Unresolved[0].Reason)
		assert.Equal(t, "t", ext.Unresolved[0].Function)
	})

	t.Run("variable argument", func(t *testing.T) {
		ext := detect(t, d, php, "<?php t($label);")

		assert.Empty(t, ext.CallSites)
		require.Len(t, ext.Unresolved, 1)
		assert.Equal(t, ReasonNoLiteral, ext.Unresolved[0].Reason)
	})

	t.Run("literal inside another call's arguments", func(t *testing.T) {
		ext := detect(t, d, php, "<?php t(sprintf('%d items', $n));")

		assert.Equal(t, []string{"%d items"}, texts(ext))
	})

	t.Run("sentinel text is dropped", func(t *testing.T) {
		ext := detect(t, d, php, "<?php t('"+SentinelText+"'); t('kept');")

		assert.Equal(t, []string{"kept"}, texts(ext))
		assert.Empty(t, ext.Unresolved)
	})

	t.Run("declarations are not calls", func(t *testing.T) {
		ext := detect(t, d, php, "<?php function t($text) { return $text; }")

		assert.Empty(t, ext.CallSites)
		assert.Empty(t, ext.Unresolved)
	})

	t.Run("literal beyond the lookahead horizon", func(t *testing.T) {
		src := "<?php t(" + strings.Repeat("$a, ", 12) + "'late');"
		ext := detect(t, d, php, src)

		assert.Empty(t, ext.CallSites)
		require.Len(t, ext.Unresolved, 1)
		assert.Equal(t, ReasonHorizon, ext.Unresolved[0].Reason)
	})

	t.Run("call cut off by end of file", func(t *testing.T) {
		ext := detect(t, d, php, "<?php t($a")

		require.Len(t, ext.Unresolved, 1)
		assert.Equal(t, ReasonUnterminated, ext.Unresolved[0].Reason)
	})

	t.Run("method names are matched too", func(t *testing.T) {
		ext := detect(t, d, php, "<?php $this->t('From method');")

		assert.Equal(t, []string{"From method"}, texts(ext))
	})
}

func TestDetector_OtherLanguages(t *testing.T) {
	d := NewDetector(nil)

	t.Run("python adjacent literals", func(t *testing.T) {
		ext := detect(t, d, tokenizers.NewPythonTokenizer(), "print(_(\"Hello \"\n  \"there\"))\n")

		assert.Equal(t, []string{"Hello there"}, texts(ext))
	})

	t.Run("javascript concatenation", func(t *testing.T) {
		ext := detect(t, d, tokenizers.NewJavaScriptTokenizer(), "const s = i18n('a' + \"b\", `ctx`);")

		require.Len(t, ext.CallSites, 1)
		assert.Equal(t, "ab", ext.CallSites[0].Text)
		assert.Equal(t, "ctx", ext.CallSites[0].Context)
	})

	t.Run("go raw strings", func(t *testing.T) {
		src := "package main\n\nfunc main() {\n\tprintln(T(`Raw ` + \"text\"))\n}\n"
		ext := detect(t, d, tokenizers.NewGoTokenizer(), src)

		require.Len(t, ext.CallSites, 1)
		assert.Equal(t, "Raw text", ext.CallSites[0].Text)
		assert.Equal(t, 4, ext.CallSites[0].Line)
	})

	t.Run("python explicit line join", func(t *testing.T) {
		ext := detect(t, d, tokenizers.NewPythonTokenizer(), "label = _('a' \\\n      'b')\n")

		require.Len(t, ext.CallSites, 1)
		assert.Equal(t, "ab", ext.CallSites[0].Text)
		assert.Equal(t, 1, ext.CallSites[0].Line)
	})

	t.Run("lua whitespace skipping escape", func(t *testing.T) {
		ext := detect(t, d, tokenizers.NewLuaTokenizer(), "print(T('a\\z\n   b'))\nprint(T('c'))\n")

		assert.Equal(t, []string{"ab", "c"}, texts(ext))
	})

	t.Run("go method declarations are not calls", func(t *testing.T) {
		src := "package main\n\nfunc (r Repo) T(s string) string {\n\treturn s\n}\n"
		ext := detect(t, d, tokenizers.NewGoTokenizer(), src)

		assert.Empty(t, ext.CallSites)
		assert.Empty(t, ext.Unresolved)
	})

	t.Run("javascript class methods are not calls", func(t *testing.T) {
		src := "class I18n {\n  t(text) {\n    return text;\n  }\n}\nif (t(label)) { go(); }\n"
		ext := detect(t, d, tokenizers.NewJavaScriptTokenizer(), src)

		assert.Empty(t, ext.CallSites)
		require.Len(t, ext.Unresolved, 1)
		assert.Equal(t, 6, ext.Unresolved[0].Line)
	})

	t.Run("lua concatenation and local functions", func(t *testing.T) {
		src := "local function L(s) return s end\nprint(T(\"one \" .. [[two]]))\n"
		ext := detect(t, d, tokenizers.NewLuaTokenizer(), src)

		assert.Equal(t, []string{"one two"}, texts(ext))
		assert.Empty(t, ext.Unresolved)
	})
}

func TestDetector_Functions(t *testing.T) {
	d := NewDetector(map[m.Language][]string{m.LanguagePHP: {"translate_me"}})

	assert.Equal(t, []string{"translate_me"}, d.Functions(m.LanguagePHP))
	assert.Equal(t, []string{"__", "i18n", "t"}, d.Functions(m.LanguageJavaScript))

	ext := detect(t, d, tokenizers.NewPHPTokenizer(), "<?php t('ignored'); translate_me('picked');")
	assert.Equal(t, []string{"picked"}, texts(ext))
}
