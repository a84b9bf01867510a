package models

import (
	"testing"
)

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"Ball handling", "Footwork", "Team play"}

	encoded, err := list.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := DecodeStringList(encoded)
	if err != nil {
		t.Fatalf("DecodeStringList failed: %v", err)
	}
	if len(decoded) != len(list) {
		t.Fatalf("expected %d items, got %d", len(list), len(decoded))
	}
	for i := range list {
		if decoded[i] != list[i] {
			t.Errorf("item %d: expected %q, got %q", i, list[i], decoded[i])
		}
	}
}

func TestStringListEncodeNil(t *testing.T) {
	var list StringList
	encoded, err := list.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if encoded != "[]" {
		t.Errorf("expected empty array encoding, got %q", encoded)
	}
}

func TestDecodeStringListEmpty(t *testing.T) {
	decoded, err := DecodeStringList("")
	if err != nil {
		t.Fatalf("DecodeStringList failed: %v", err)
	}
	if decoded == nil || len(decoded) != 0 {
		t.Errorf("expected empty list, got %v", decoded)
	}
}

func TestDecodeStringListRejectsInvalid(t *testing.T) {
	cases := []string{"not json", `{"a":1}`, `[1,2,3]`, `"plain string"`}
	for _, raw := range cases {
		if _, err := DecodeStringList(raw); err == nil {
			t.Errorf("expected error for %q, got none", raw)
		}
	}
}

func TestDecodeStringListNullYieldsEmpty(t *testing.T) {
	decoded, err := DecodeStringList("null")
	if err != nil {
		t.Fatalf("DecodeStringList failed: %v", err)
	}
	if decoded == nil || len(decoded) != 0 {
		t.Errorf("expected empty list for null, got %v", decoded)
	}
}

func TestPreferencesWantsEventsDefaultsToOptIn(t *testing.T) {
	var p Preferences
	if !p.WantsEvents() {
		t.Error("unset events flag should count as opted-in")
	}

	f := false
	p.Events = &f
	if p.WantsEvents() {
		t.Error("explicit false should opt out")
	}

	tr := true
	p.Events = &tr
	if !p.WantsEvents() {
		t.Error("explicit true should opt in")
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	f := false
	p := Preferences{Events: &f}

	encoded, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := DecodePreferences(encoded)
	if err != nil {
		t.Fatalf("DecodePreferences failed: %v", err)
	}
	if decoded.Events == nil || *decoded.Events {
		t.Error("events opt-out lost in round trip")
	}
	if decoded.News != nil {
		t.Error("unset news flag should stay unset")
	}
}

func TestDecodePreferencesEmpty(t *testing.T) {
	p, err := DecodePreferences("")
	if err != nil {
		t.Fatalf("DecodePreferences failed: %v", err)
	}
	if !p.WantsEvents() {
		t.Error("empty preferences should default to opted-in")
	}
}

func TestDefaultPreferencesOptIn(t *testing.T) {
	p := DefaultPreferences()
	if p.Events == nil || !*p.Events {
		t.Error("default preferences should opt into events")
	}
}
