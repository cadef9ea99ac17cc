package i18n

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
		ok   bool
	}{
		{"ko", language.Korean, true},
		{"en", language.English, true},
		{"en-US", language.English, true},
		{"ja-JP", language.Japanese, true},
		{" ja ", language.Japanese, true},
		{"fr", language.Korean, false},
		{"", language.Korean, false},
		{"!!", language.Korean, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTag(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchTags(t *testing.T) {
	assert.Equal(t, language.Korean, MatchTags(nil))
	assert.Equal(t, language.English, MatchTags([]language.Tag{language.French, language.English}))
	assert.Equal(t, language.Japanese, MatchTags([]language.Tag{language.Japanese}))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "ko", Code(language.Korean))
	assert.Equal(t, "en", Code(language.AmericanEnglish))
	assert.True(t, IsSupportedCode("ja"))
	assert.False(t, IsSupportedCode("ja-JP"))
}

func TestLocalizer_Money(t *testing.T) {
	b := Default()
	tests := []struct {
		code string
		v    float64
		want string
	}{
		{"ko", 1050000.99, "1,050,000원"},
		{"en", 1050000.99, "$1,050,000"},
		{"ja", 1050000.99, "1,050,000円"},
		{"ko", 999.5, "999원"},
		{"en", -1500, "-$1,500"},
		{"ko", math.Inf(1), "∞"},
		{"en", math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, b.LocalizerFor(tt.code).Money(tt.v))
		})
	}
}

func TestLocalizer_AmountAndCurrency(t *testing.T) {
	b := Default()
	assert.Equal(t, "1,050,000", b.LocalizerFor("ja").Amount(1050000.99))
	assert.Equal(t, "∞", b.LocalizerFor("ja").Amount(math.Inf(1)))
	assert.Equal(t, "KRW", b.LocalizerFor("ko").CurrencyCode())
	assert.Equal(t, "USD", b.LocalizerFor("en").CurrencyCode())
	assert.Equal(t, "JPY", b.LocalizerFor("ja").CurrencyCode())
}

func TestLocalizer_MoneyBeyondInt64(t *testing.T) {
	en := Default().LocalizerFor("en")
	ko := Default().LocalizerFor("ko")

	assert.Equal(t, "$100,000,000,000,000,000,000", en.Money(1e20))
	assert.Equal(t, "100,000,000,000,000,000,000원", ko.Money(1e20))
	assert.Equal(t, "-100,000,000,000,000,000,000", en.Amount(-1e20))

	want := "1" + strings.Repeat(",000", 100)
	assert.Equal(t, "$"+want, en.Money(1e300))
	assert.Equal(t, want, en.Amount(1e300))

	// values past the int64 range must stay distinguishable
	assert.NotEqual(t, en.Money(1e19), en.Money(2e19))
	assert.Equal(t, "$20,000,000,000,000,000,000", en.Money(2e19))
}

func TestLocalizer_Percent(t *testing.T) {
	l := Default().LocalizerFor("en")
	assert.Equal(t, "62.89%", l.Percent(62.889))
	assert.Equal(t, "5.00%", l.Percent(5))
	assert.Equal(t, "∞", l.Percent(math.Inf(1)))
}

func TestLocalizer_T(t *testing.T) {
	b := Default()
	assert.Equal(t, "Interest Rate (%)", b.LocalizerFor("en").T("field.rate"))
	assert.Equal(t, "연이율 (%)", b.LocalizerFor("ko").T("field.rate"))
	assert.Equal(t, "A overtakes B in year 3", b.LocalizerFor("en").T("analysis.crossover", "A", "B", 3))
	assert.Equal(t, "복리 계산기", b.LocalizerFor("unknown").T("report.title"))
	assert.Equal(t, "ja", b.LocalizerFor("ja").Code())
}

func TestBundle_Options(t *testing.T) {
	opts := Default().Options(language.English)
	require.Len(t, opts, 3)
	assert.Equal(t, LanguageOption{Code: "ko", Label: "한국어"}, opts[0])
	assert.Equal(t, LanguageOption{Code: "en", Label: "English", Active: true}, opts[1])
	assert.Equal(t, LanguageOption{Code: "ja", Label: "日本語"}, opts[2])
}

func TestBundle_KeysAndMessage(t *testing.T) {
	b := Default()
	keys := b.Keys()
	assert.Contains(t, keys, "report.title")
	assert.Contains(t, keys, "format.money")

	msg, ok := b.Message(language.Japanese, "report.title")
	assert.True(t, ok)
	assert.Equal(t, "複利計算機", msg)

	_, ok = b.Message(language.English, "missing.key")
	assert.False(t, ok)
}

func TestLoadFromFS_Errors(t *testing.T) {
	complete := func() fstest.MapFS {
		return fstest.MapFS{
			"locales/ko.yaml": {Data: []byte("locale: ko\nmessages:\n  a: \"가\"\n")},
			"locales/en.yaml": {Data: []byte("locale: en\nmessages:\n  a: \"A\"\n")},
			"locales/ja.yaml": {Data: []byte("locale: ja\nmessages:\n  a: \"あ\"\n")},
		}
	}

	_, err := LoadFromFS(complete())
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(fstest.MapFS)
		want   string
	}{
		{"empty", func(fs fstest.MapFS) {
			for k := range fs {
				delete(fs, k)
			}
		}, "no catalog files"},
		{"missing locale", func(fs fstest.MapFS) { delete(fs, "locales/ja.yaml") }, "locale ja is not defined"},
		{"missing key", func(fs fstest.MapFS) {
			fs["locales/en.yaml"] = &fstest.MapFile{Data: []byte("locale: en\nmessages:\n  b: \"B\"\n")}
		}, "missing key"},
		{"name mismatch", func(fs fstest.MapFS) {
			fs["locales/en.yaml"] = &fstest.MapFile{Data: []byte("locale: ja\nmessages:\n  a: \"A\"\n")}
		}, "must match file name"},
		{"unsupported", func(fs fstest.MapFS) {
			fs["locales/fr.yaml"] = &fstest.MapFile{Data: []byte("locale: fr\nmessages:\n  a: \"A\"\n")}
		}, "unsupported locale"},
		{"bad yaml", func(fs fstest.MapFS) {
			fs["locales/en.yaml"] = &fstest.MapFile{Data: []byte("locale: [")}
		}, "parse catalog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := complete()
			tt.mutate(fsys)
			_, err := LoadFromFS(fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestResolveTag(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		cookie  string
		accept  string
		want    language.Tag
		persist bool
	}{
		{"query wins", "/?lang=ja", "en", "en", language.Japanese, true},
		{"cookie", "/", "en", "ja", language.English, false},
		{"bad query falls to cookie", "/?lang=xx", "ja", "", language.Japanese, false},
		{"accept language", "/", "", "fr-FR,en;q=0.8", language.English, false},
		{"default", "/", "", "", language.Korean, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://example.com"+tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			tag, persist := ResolveTag(req)
			assert.Equal(t, tt.want, tag)
			assert.Equal(t, tt.persist, persist)
		})
	}

	tag, persist := ResolveTag(nil)
	assert.Equal(t, language.Korean, tag)
	assert.False(t, persist)
}

func TestSetLanguageCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.Japanese)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, LangCookieName, cookies[0].Name)
	assert.Equal(t, "ja", cookies[0].Value)

	SetLanguageCookie(nil, language.English)
}

func TestResolveTagOr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	tag, persist := ResolveTagOr(req, language.Japanese)
	assert.Equal(t, language.Japanese, tag)
	assert.False(t, persist)

	req.Header.Set("Accept-Language", "en-GB")
	tag, _ = ResolveTagOr(req, language.Japanese)
	assert.Equal(t, language.English, tag)
}
