package domain

import (
	"errors"
	"math"
	"testing"
)

// TestAyanamshaDeg_ReferenceEpochs checks the defining values at each
// model's anchor epoch and the well-known Lahiri value at J2000.
func TestAyanamshaDeg_ReferenceEpochs(t *testing.T) {
	got, err := AyanamshaDeg(2433282.5, AyanamshaFaganBradley)
	if err != nil {
		t.Fatalf("AyanamshaDeg error: %v", err)
	}
	if math.Abs(got-24.042044) > 1e-9 {
		t.Errorf("Fagan/Bradley at 1950.0: expected 24.042044, got %.6f", got)
	}

	got, err = AyanamshaDeg(J2000, AyanamshaLahiri)
	if err != nil {
		t.Fatalf("AyanamshaDeg error: %v", err)
	}
	if math.Abs(got-23.85) > 0.05 {
		t.Errorf("Lahiri at J2000: expected ~23.85, got %.6f", got)
	}
}

// TestAyanamshaDeg_Monotonic checks the offset accumulates with precession.
func TestAyanamshaDeg_Monotonic(t *testing.T) {
	for model := range map[AyanamshaModel]struct{}{
		AyanamshaFaganBradley: {}, AyanamshaLahiri: {},
		AyanamshaRaman: {}, AyanamshaKrishnamurti: {},
	} {
		early, err := AyanamshaDeg(J2000, model)
		if err != nil {
			t.Fatalf("AyanamshaDeg(%s) error: %v", model, err)
		}
		late, err := AyanamshaDeg(J2000+20*365.25, model)
		if err != nil {
			t.Fatalf("AyanamshaDeg(%s) error: %v", model, err)
		}
		// ~50.29 arcsec per year over 20 years.
		if d := late - early; d < 0.25 || d > 0.31 {
			t.Errorf("%s: 20-year drift %.4f outside [0.25, 0.31]", model, d)
		}
	}
}

// TestAyanamshaDeg_UnknownModel checks the typed failure replaces the old
// ambiguous 0.0 return.
func TestAyanamshaDeg_UnknownModel(t *testing.T) {
	_, err := AyanamshaDeg(J2000, AyanamshaModel(99))
	if !errors.Is(err, ErrUnknownAyanamsha) {
		t.Errorf("expected ErrUnknownAyanamsha, got %v", err)
	}
}
