package translation_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/supportbot/internal/translation"
)

func newResolver(t *testing.T) *translation.Resolver {
	t.Helper()
	r, err := translation.NewResolver(translation.NewCatalog(
		translation.Language{Code: "en_US", Name: "English"},
		translation.Language{Code: "pt_BR", Name: "Português"},
		translation.Language{Code: "es_ES", Name: "Español"},
		translation.Language{Code: "de_DE", Name: "Deutsch"},
	))
	require.NoError(t, err)
	return r
}

func TestResolver_TranslatesCatalogLanguages(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	pt := r.For("pt_BR")
	assert.Equal(t, "Por favor, escolha um idioma:", pt(translation.MsgChooseLanguage))
	assert.Equal(t, "Idioma atualizado para Português", pt(translation.MsgLanguageUpdated, "Português"))

	es := r.For("es_ES")
	assert.Equal(t, "¡Idioma desconocido! :(", es(translation.MsgUnknownLanguage))
}

func TestResolver_UnknownCodesRenderIdentity(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	for _, code := range []string{"fr_FR", "xx_YY", "", "pt-BR", "PT_br"} {
		tr := r.For(code)
		assert.Equal(t, translation.MsgSupportPrompt, tr(translation.MsgSupportPrompt), "code %q", code)
		assert.Equal(t, "arbitrary key", tr("arbitrary key"), "code %q", code)
		assert.Equal(t, "Language updated to X", tr(translation.MsgLanguageUpdated, "X"), "code %q", code)
	}
}

func TestResolver_CatalogLanguageWithoutResources(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	de := r.For("de_DE")
	assert.Equal(t, translation.MsgGreeting, de(translation.MsgGreeting))

	en := r.For("en_US")
	assert.Equal(t, "I'm Relay and I came here to help you.", en(translation.MsgIntroduction, "Relay"))
}

func TestResolver_EveryMessageTranslated(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	ids := []string{
		translation.MsgGreeting, translation.MsgIntroduction, translation.MsgAskAction,
		translation.MsgSupportCommand, translation.MsgSettingsCommand, translation.MsgSupportPrompt,
		translation.MsgSupportAck, translation.MsgChooseLanguage, translation.MsgLanguageUpdated,
		translation.MsgUnknownLanguage, translation.MsgUpdateFailed, translation.MsgUnknownCommand,
		translation.DescStart, translation.DescHelp, translation.DescSupport, translation.DescSettings,
	}
	for _, code := range []string{"pt_BR", "es_ES"} {
		tr := r.For(code)
		for _, id := range ids {
			assert.NotEqual(t, id, tr(id), "%s missing translation for %q", code, id)
		}
	}
}

// Translators for different users must not affect each other.
func TestResolver_ConcurrentTranslatorsAreIndependent(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.Equal(t, "Olá!", r.For("pt_BR")(translation.MsgGreeting))
		}()
		go func() {
			defer wg.Done()
			assert.Equal(t, "Hello!", r.For("en_US")(translation.MsgGreeting))
		}()
	}
	wg.Wait()
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	c := translation.NewCatalog(
		translation.Language{Code: "pt_BR", Name: "Português"},
		translation.Language{Code: "en_US", Name: "English"},
		translation.Language{Code: "pt_BR", Name: "Duplicate"},
	)

	langs := c.Languages()
	require.Len(t, langs, 2)
	assert.Equal(t, "pt_BR - Português", langs[0].String())
	assert.Equal(t, "en_US - English", langs[1].String())

	l, ok := c.Lookup("pt_BR")
	assert.True(t, ok)
	assert.Equal(t, "Português", l.Name)

	_, ok = c.Lookup("fr_FR")
	assert.False(t, ok)

	langs[0].Name = "mutated"
	again, _ := c.Lookup("pt_BR")
	assert.Equal(t, "Português", again.Name)
}
