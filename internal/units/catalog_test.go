package units

import "testing"

func TestForLanguage(t *testing.T) {
	t.Run("resolves known languages", func(t *testing.T) {
		for _, tag := range []string{"en", "en-GB", "en-US"} {
			if _, ok := ForLanguage(tag); !ok {
				t.Errorf("ForLanguage(%q) not found", tag)
			}
		}
	})

	t.Run("matching is case-insensitive and accepts underscores", func(t *testing.T) {
		a, ok := ForLanguage("en_US")
		if !ok {
			t.Fatal("ForLanguage(en_US) not found")
		}
		b, ok := ForLanguage("EN-us")
		if !ok {
			t.Fatal("ForLanguage(EN-us) not found")
		}
		if a != b {
			t.Error("en_US and EN-us should resolve to the same catalog")
		}
	})

	t.Run("en and en-GB share a catalog", func(t *testing.T) {
		en, _ := ForLanguage("en")
		gb, _ := ForLanguage("en-GB")
		if en != gb {
			t.Error("en and en-GB should be the same catalog instance")
		}
	})

	t.Run("unknown language is not found", func(t *testing.T) {
		if _, ok := ForLanguage("fr"); ok {
			t.Error("ForLanguage(fr) should not be found")
		}
	})
}

func TestSupportedLanguages(t *testing.T) {
	tags := SupportedLanguages()
	want := map[string]bool{"en": true, "en-gb": true, "en-us": true}
	if len(tags) != len(want) {
		t.Fatalf("SupportedLanguages() = %v, want %d tags", tags, len(want))
	}
	for _, tag := range tags {
		if !want[tag] {
			t.Errorf("unexpected language tag %q", tag)
		}
	}
}

func TestUnitLookup(t *testing.T) {
	en, _ := ForLanguage("en")

	t.Run("every spelling resolves to one shared detail", func(t *testing.T) {
		g := en.Unit("g")
		if g == nil {
			t.Fatal("Unit(g) = nil")
		}
		for _, spelling := range []string{"gram", "grams", "G", "Grams"} {
			if en.Unit(spelling) != g {
				t.Errorf("Unit(%q) should be the same detail as Unit(g)", spelling)
			}
		}
	})

	t.Run("symbol index matches spelling lookup", func(t *testing.T) {
		if en.UnitBySymbol("tbsp") != en.Unit("tablespoons") {
			t.Error("UnitBySymbol(tbsp) and Unit(tablespoons) should share a detail")
		}
	})

	t.Run("unknown spelling is nil", func(t *testing.T) {
		if en.Unit("fathom") != nil {
			t.Error("Unit(fathom) should be nil")
		}
	})
}

func TestVolumeConvertibility(t *testing.T) {
	en, _ := ForLanguage("en")
	us, _ := ForLanguage("en-US")

	t.Run("volume has no conversion group in en", func(t *testing.T) {
		if group := en.Unit("cup").ConversionGroup; group != "" {
			t.Errorf("en cup ConversionGroup = %q, want empty", group)
		}
	})

	t.Run("volume is convertible in en-US", func(t *testing.T) {
		if group := us.Unit("cup").ConversionGroup; group != GroupVolume {
			t.Errorf("en-US cup ConversionGroup = %q, want %q", group, GroupVolume)
		}
	})

	t.Run("mass details are shared between catalogs", func(t *testing.T) {
		if en.Unit("g") != us.Unit("g") {
			t.Error("g detail should be shared between en and en-US")
		}
	})

	t.Run("en-US keeps its own volume details", func(t *testing.T) {
		if en.Unit("cup") == us.Unit("cup") {
			t.Error("cup detail must not be shared; en-US overrides it")
		}
	})
}

func TestDefaultTemperatureUnit(t *testing.T) {
	en, _ := ForLanguage("en")
	us, _ := ForLanguage("en-US")

	if en.DefaultTemperatureUnit != "" {
		t.Errorf("en DefaultTemperatureUnit = %q, want empty", en.DefaultTemperatureUnit)
	}
	if us.DefaultTemperatureUnit != "fahrenheit" {
		t.Errorf("en-US DefaultTemperatureUnit = %q, want fahrenheit", us.DefaultTemperatureUnit)
	}
}
