package app

import "go.trai.ch/emojilens/internal/core/domain"

// DetectorPatterns reports the scanners a session configured with settings runs.
func DetectorPatterns(settings domain.Settings) ([]string, error) {
	d, err := newDetector(settings)
	if err != nil {
		return nil, err
	}
	return d.Patterns(), nil
}
