package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults() error = %v", err)
	}
	for _, name := range []FontName{Regular, Bold, Title, Small} {
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatal("LoadFont() with invalid data should fail")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Get() on a missing font should panic")
		}
	}()
	FontName("missing").Get()
}
