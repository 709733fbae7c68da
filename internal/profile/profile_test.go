package profile

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestRunSetupAnswers(t *testing.T) {
	answers := "Mei\ntwd\nics\n./out\nJun, Lan ,\n"
	prof, err := RunSetup(strings.NewReader(answers), io.Discard, nil)
	if err != nil {
		t.Fatalf("RunSetup: %v", err)
	}
	want := &Profile{
		Name:          "Mei",
		HomeCurrency:  "TWD",
		DefaultFormat: "ics",
		OutputDir:     "./out",
		Companions:    []string{"Jun", "Lan"},
	}
	if !reflect.DeepEqual(prof, want) {
		t.Errorf("got %+v, want %+v", prof, want)
	}
}

func TestRunSetupKeepsExistingOnEmptyAnswers(t *testing.T) {
	existing := &Profile{Name: "Mei", HomeCurrency: "JPY", DefaultFormat: "json", OutputDir: "trips", Companions: []string{"Jun"}}
	prof, err := RunSetup(strings.NewReader("\n\n\n\n\n"), io.Discard, existing)
	if err != nil {
		t.Fatalf("RunSetup: %v", err)
	}
	if !reflect.DeepEqual(prof, existing) {
		t.Errorf("got %+v, want %+v", prof, existing)
	}
}

func TestRunSetupUnknownFormatFallsBack(t *testing.T) {
	prof, err := RunSetup(strings.NewReader("A\n\npdf\n\n\n"), io.Discard, nil)
	if err != nil {
		t.Fatalf("RunSetup: %v", err)
	}
	if prof.DefaultFormat != "markdown" {
		t.Errorf("DefaultFormat = %q, want markdown", prof.DefaultFormat)
	}
}

func TestRunSetupEOF(t *testing.T) {
	if _, err := RunSetup(strings.NewReader(""), io.Discard, nil); err == nil {
		t.Fatal("expected error when input ends early")
	}
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if Exists() {
		t.Fatal("profile should not exist yet")
	}
	p := &Profile{Name: "Mei", Companions: []string{"Jun"}}
	if err := Save(p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("profile should exist after Save")
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("got %+v, want %+v", got, p)
	}
}

func TestParty(t *testing.T) {
	p := &Profile{Name: "Mei", Companions: []string{"Jun", "Mei", " ", "Lan"}}
	if got := p.Party(); !reflect.DeepEqual(got, []string{"Mei", "Jun", "Lan"}) {
		t.Errorf("Party() = %v", got)
	}
}
