package detector_test

import (
	"os"
	"path/filepath"
	"testing"

	"promptwatch-backend/internal/database/models"
	"promptwatch-backend/internal/detector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryContainsRequiredCategories(t *testing.T) {
	registry, err := detector.NewRegistry()
	require.NoError(t, err)

	expected := []string{
		detector.CategoryIdentityNumber,
		detector.CategoryPaymentCard,
		detector.CategoryEmailAddress,
		detector.CategoryPhoneNumber,
		detector.CategoryMedicalRecord,
		detector.CategoryBankAccount,
		detector.CategorySourceCode,
		detector.CategoryCredentialToken,
		detector.CategoryTitledName,
	}

	descriptors := registry.Descriptors()
	require.Len(t, descriptors, len(expected))
	for i, category := range expected {
		assert.Equal(t, category, descriptors[i].Category, "registry order must be fixed")
	}
}

func TestRegistryOverlayMissingFile(t *testing.T) {
	registry, err := detector.NewRegistryWithOverlay(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 9, registry.Len())
}

func TestRegistryOverlayAppendsCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detectors.yaml")
	overlay := `detectors:
  - category: employee-badge
    pattern: '\bEMP-\d{6}\b'
    severity: high
    label: Employee badge number
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o600))

	registry, err := detector.NewRegistryWithOverlay(path)
	require.NoError(t, err)
	require.Equal(t, 10, registry.Len())

	// A new category works without any scanner change.
	scanner := detector.NewScanner(registry)
	findings := scanner.Scan("badge EMP-004211 reported lost")
	require.Len(t, findings, 1)
	assert.Equal(t, "employee-badge", findings[0].Category)
	assert.Equal(t, models.SeverityHigh, findings[0].Severity)
}

func TestRegistryOverlayMalformedPatternIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detectors.yaml")
	overlay := `detectors:
  - category: broken
    pattern: '([unclosed'
    severity: low
    label: Broken rule
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o600))

	_, err := detector.NewRegistryWithOverlay(path)
	assert.Error(t, err)
}

func TestRegistryOverlayInvalidSeverityIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detectors.yaml")
	overlay := `detectors:
  - category: odd
    pattern: 'x'
    severity: catastrophic
    label: Odd rule
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o600))

	_, err := detector.NewRegistryWithOverlay(path)
	assert.Error(t, err)
}
