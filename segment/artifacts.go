// Package segment - artifact persistence.
//
// Artifacts are a small fixed-shape numeric record; JSON keeps them
// inspectable and diff-friendly next to the run that produced them.
package segment

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/rfmseg/scale"
)

// SaveArtifacts writes the artifacts as indented JSON.
func SaveArtifacts(w io.Writer, arts Artifacts) error {
	if err := validateArtifacts(arts); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(arts); err != nil {
		return fmt.Errorf("segment: encode artifacts: %w", err)
	}
	return nil
}

// LoadArtifacts reads artifacts previously written by SaveArtifacts
// and validates their structure before returning them.
func LoadArtifacts(r io.Reader) (Artifacts, error) {
	var arts Artifacts
	if err := json.NewDecoder(r).Decode(&arts); err != nil {
		return Artifacts{}, fmt.Errorf("segment: decode artifacts: %w", err)
	}
	if err := validateArtifacts(arts); err != nil {
		return Artifacts{}, err
	}
	return arts, nil
}

// validateArtifacts enforces the structural invariants of a usable
// artifact set: a non-empty rectangular centroid set in scale feature
// space, matching the recorded k.
func validateArtifacts(arts Artifacts) error {
	if len(arts.Centroids) == 0 {
		return fmt.Errorf("%w: empty centroid set", ErrBadArtifacts)
	}
	if arts.K != 0 && arts.K != len(arts.Centroids) {
		return fmt.Errorf("%w: k=%d but %d centroids", ErrBadArtifacts, arts.K, len(arts.Centroids))
	}
	for i, c := range arts.Centroids {
		if len(c) != scale.Dims {
			return fmt.Errorf("%w: centroid %d has dim %d, want %d",
				ErrBadArtifacts, i, len(c), scale.Dims)
		}
	}
	return nil
}
