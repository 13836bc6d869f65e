package i18n

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"", English, false},
		{"en", English, false},
		{"EN", English, false},
		{"primary", English, false},
		{"th", Thai, false},
		{" Thai ", Thai, false},
		{"secondary", Thai, false},
		{"fr", English, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLanguage_CodeRoundTrip(t *testing.T) {
	for _, lang := range []Language{English, Thai} {
		got, err := Parse(lang.Code())
		if err != nil || got != lang {
			t.Errorf("Parse(%q) = %v, %v; want %v", lang.Code(), got, err, lang)
		}
	}
}

func TestLanguage_Toggle(t *testing.T) {
	if English.Toggle() != Thai {
		t.Error("English.Toggle() should be Thai")
	}
	if Thai.Toggle() != English {
		t.Error("Thai.Toggle() should be English")
	}
}

// Every label must be filled in for every language.
func TestLabels_Complete(t *testing.T) {
	for _, lang := range []Language{English, Thai} {
		v := reflect.ValueOf(For(lang))
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				t.Errorf("%s label %s is empty", lang, v.Type().Field(i).Name)
			}
		}
	}
}

func TestFor_DistinctTables(t *testing.T) {
	if For(English).Acknowledgement == For(Thai).Acknowledgement {
		t.Error("expected different acknowledgement text per language")
	}
	if For(Language(99)).Welcome != For(English).Welcome {
		t.Error("unknown language should fall back to English")
	}
}
