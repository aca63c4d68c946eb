package status

import "fmt"

// CertificateTier display tier of a certificate grade
type CertificateTier string

// tiers ordered best first; boundaries are inclusive on the lower bound
const (
	TierGold   CertificateTier = "gold"
	TierSilver CertificateTier = "silver"
	TierBronze CertificateTier = "bronze"
	TierBasic  CertificateTier = "basic"
)

// DeriveCertificateTier bucket a certificate score into its tier
func DeriveCertificateTier(score float64) CertificateTier {
	switch {
	case score >= 90:
		return TierGold
	case score >= 80:
		return TierSilver
	case score >= 70:
		return TierBronze
	}
	return TierBasic
}

// FormatPercent render a percentage for display, one decimal place.
// Rounding happens only here, never before a threshold comparison.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
