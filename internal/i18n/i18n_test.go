package i18n

import "testing"

func TestTranslation(t *testing.T) {
	if got := T("fr", "refresh"); got != "Actualiser" {
		t.Errorf(`T("fr", "refresh") = %q`, got)
	}
	if got := T("en", "refresh"); got != "Refresh" {
		t.Errorf(`T("en", "refresh") = %q`, got)
	}
}

func TestFallbackToEnglish(t *testing.T) {
	// Unknown language falls back to the English catalog.
	if got := T("de", "refresh"); got != "Refresh" {
		t.Errorf(`T("de", "refresh") = %q`, got)
	}
	// Unknown key falls back to the key itself.
	if got := T("en", "doesNotExist"); got != "doesNotExist" {
		t.Errorf(`T("en", "doesNotExist") = %q`, got)
	}
}

func TestPlaceholderSubstitution(t *testing.T) {
	got := Tf("en", "restartWithName", map[string]string{"name": "PinUP Popper"})
	if got != "Restart PinUP Popper" {
		t.Errorf("Tf() = %q", got)
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	en, fr := messages["en"], messages["fr"]
	for k := range en {
		if _, ok := fr[k]; !ok {
			t.Errorf("fr catalog missing %q", k)
		}
	}
	for k := range fr {
		if _, ok := en[k]; !ok {
			t.Errorf("en catalog missing %q", k)
		}
	}
}
