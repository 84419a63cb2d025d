package project

import (
	"fmt"

	"github.com/edp1096/toy-mininec/pkg/mininec"
)

// Apply sets up session with the antenna: frequency, geometry, ground,
// sources and loads, in that order. The first failure stops it; the
// returned error wraps the session's *mininec.Error.
func Apply(s *mininec.Session, a Antenna) error {
	if err := s.SetFrequency(a.Frequency); err != nil {
		return fmt.Errorf("frequency: %w", err)
	}
	if err := s.SetGeometryText(a.HasGround, a.Wires); err != nil {
		return fmt.Errorf("wires: %w", err)
	}

	var err error
	if a.HasGround && !a.HasIdealGround {
		err = s.SetGroundMedia(a.EpsilonR, a.Conductivity)
	} else {
		err = s.ClearGroundMedia()
	}
	if err != nil {
		return fmt.Errorf("ground: %w", err)
	}

	if err := s.SetSourcesText(a.Sources); err != nil {
		return fmt.Errorf("sources: %w", err)
	}
	if err := s.SetLoadsText(a.Loads); err != nil {
		return fmt.Errorf("loads: %w", err)
	}
	return nil
}
