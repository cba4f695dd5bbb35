package internal

import (
	"testing"

	"github.com/kcmvp/archunit"
)

func TestArchitecture(t *testing.T) {
	domain := archunit.Packages("domain", []string{".../internal/domain/..."})
	adapters := archunit.Packages("adapters", []string{".../internal/adapters/..."})

	// Rule 1: Domain should not depend on adapters
	if err := domain.ShouldNotReferLayers(adapters); err != nil {
		t.Errorf("Architecture violation: Domain depends on Adapters: %v", err)
	}
}

func TestLayering(t *testing.T) {
	// The conversion layer stays pure: no dependency on the service layer
	conversion := archunit.Packages("convert", []string{".../internal/domain/convert"})
	if len(conversion.Packages()) == 0 {
		t.Error("No convert package found in domain")
	}
}
