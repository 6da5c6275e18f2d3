package anim

import (
	"fmt"
	"io"

	"github.com/TheBitDrifter/shelf"
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

var (
	_ Assets      = &Catalog{}
	_ FrameSource = &Catalog{}
)

// Clip is one named animation: an ordered list of frame images and a rate.
type Clip struct {
	Name   string   `json:"name"`
	FPS    int      `json:"fps"`
	Frames []string `json:"frames"`
}

// CatalogFile is the JSON layout read by LoadCatalog. Machines maps an asset tag
// to its state table, each state naming a clip.
type CatalogFile struct {
	Clips    []Clip                       `json:"clips"`
	Machines map[string]map[string]string `json:"machines"`
}

// Catalog is an in-memory, read-only asset collaborator.
type Catalog struct {
	clips    shelf.Cache[Clip]
	machines map[AssetTag]map[string]ClipID
}

// LoadCatalog decodes and validates a catalog.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var file CatalogFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, eris.Wrap(err, "decoding asset catalog")
	}
	return NewCatalog(file)
}

// NewCatalog builds a catalog, assigning clip ids in declaration order.
func NewCatalog(file CatalogFile) (*Catalog, error) {
	c := &Catalog{
		clips:    shelf.FactoryNewCache[Clip](len(file.Clips)),
		machines: make(map[AssetTag]map[string]ClipID, len(file.Machines)),
	}
	for _, clip := range file.Clips {
		if clip.FPS <= 0 {
			return nil, eris.Errorf("clip %q: fps must be positive, got %d", clip.Name, clip.FPS)
		}
		if len(clip.Frames) == 0 {
			return nil, eris.Errorf("clip %q has no frames", clip.Name)
		}
		if _, err := c.clips.Register(clip.Name, clip); err != nil {
			return nil, eris.Wrapf(err, "registering clip %q", clip.Name)
		}
	}
	for tag, states := range file.Machines {
		table := make(map[string]ClipID, len(states))
		for state, clipName := range states {
			id, err := c.ClipID(clipName)
			if err != nil {
				return nil, eris.Wrapf(err, "machine %q state %q", tag, state)
			}
			table[state] = id
		}
		c.machines[AssetTag(tag)] = table
	}
	return c, nil
}

// ClipID returns the id of the clip registered under name.
func (c *Catalog) ClipID(name string) (ClipID, error) {
	index, ok := c.clips.GetIndex(name)
	if !ok {
		return 0, &AssetNotFoundError{Kind: "clip", Key: name}
	}
	return ClipID(index), nil
}

func (c *Catalog) ClipForState(tag AssetTag, state string) (ClipID, error) {
	states, ok := c.machines[tag]
	if !ok {
		return 0, &AssetNotFoundError{Kind: "machine", Key: string(tag)}
	}
	clip, ok := states[state]
	if !ok {
		return 0, &AssetNotFoundError{Kind: "state", Key: fmt.Sprintf("%s/%s", tag, state)}
	}
	return clip, nil
}

func (c *Catalog) ClipLength(clip ClipID) (int, error) {
	found, err := c.clip(clip)
	if err != nil {
		return 0, err
	}
	return len(found.Frames), nil
}

func (c *Catalog) ClipFPS(clip ClipID) (int, error) {
	found, err := c.clip(clip)
	if err != nil {
		return 0, err
	}
	return found.FPS, nil
}

func (c *Catalog) Frame(clip ClipID, index int) (string, error) {
	found, err := c.clip(clip)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(found.Frames) {
		return "", &AssetNotFoundError{Kind: "frame", Key: fmt.Sprintf("%s#%d", found.Name, index)}
	}
	return found.Frames[index], nil
}

// Name returns the name a clip was registered under.
func (c *Catalog) Name(clip ClipID) (string, error) {
	found, err := c.clip(clip)
	if err != nil {
		return "", err
	}
	return found.Name, nil
}

func (c *Catalog) clip(clip ClipID) (*Clip, error) {
	if clip < 0 || int(clip) >= c.clips.Len() {
		return nil, clipNotFound(clip)
	}
	return c.clips.GetItem(int(clip)), nil
}
