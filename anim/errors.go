package anim

import "fmt"

// AssetNotFoundError reports a lookup the asset collaborator could not satisfy.
type AssetNotFoundError struct {
	Kind string
	Key  string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("asset not found: %s %q", e.Kind, e.Key)
}

func clipNotFound(clip ClipID) error {
	return &AssetNotFoundError{Kind: "clip", Key: fmt.Sprint(clip)}
}
