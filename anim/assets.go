package anim

// AssetTag names a family of clips, such as every animation of one character.
type AssetTag string

// ClipID identifies a clip within an asset collaborator.
type ClipID int

// Assets is the read-only asset lookup animations depend on.
type Assets interface {
	ClipForState(tag AssetTag, state string) (ClipID, error)
	ClipLength(clip ClipID) (int, error)
	ClipFPS(clip ClipID) (int, error)
}

// FrameSource resolves the image of a single frame. Renderers use it; the
// simulation never does.
type FrameSource interface {
	Frame(clip ClipID, index int) (string, error)
}
