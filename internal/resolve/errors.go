package resolve

import (
	"errors"
	"fmt"
)

// ErrNoMatchingAsset is the category sentinel for NoMatchingAssetError.
// Match with errors.Is when the requested target is not needed.
var ErrNoMatchingAsset = errors.New("no matching asset in manifest")

// NoMatchingAssetError reports that no asset in the manifest matched the
// requested target triple. Target is the triple that was requested, after
// any override substitution.
type NoMatchingAssetError struct {
	Target string
}

func (e *NoMatchingAssetError) Error() string {
	return fmt.Sprintf("no asset found for target %s", e.Target)
}

// Is makes errors.Is(err, ErrNoMatchingAsset) match.
func (e *NoMatchingAssetError) Is(target error) bool {
	return target == ErrNoMatchingAsset
}
