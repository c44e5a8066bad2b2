package detector

import "go.trai.ch/emojilens/internal/core/domain"

// Offset exposes the inverse of Mapper.Position to the tests.
func (m *Mapper) Offset(p domain.Position) int {
	return m.offset(p)
}
