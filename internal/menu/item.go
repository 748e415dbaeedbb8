package menu

import "fmt"

// MaxItems is the largest number of entries a ring can hold.
const MaxItems = 7

// IconKind identifies the variant held by an IconRef.
type IconKind int

const (
	IconVector IconKind = iota
	IconResource
	IconURL
)

func (k IconKind) String() string {
	switch k {
	case IconVector:
		return "vector"
	case IconResource:
		return "resource"
	case IconURL:
		return "url"
	default:
		return fmt.Sprintf("IconKind(%d)", int(k))
	}
}

// IconRef is a closed set of icon references. Only VectorIcon, ResourceIcon
// and URLIcon satisfy it.
type IconRef interface {
	Kind() IconKind
	isIcon()
}

// VectorIcon is a glyph drawn directly by the renderer.
type VectorIcon struct {
	Glyph string
}

// ResourceIcon points at a bundled bitmap. Not rendered yet.
type ResourceIcon struct {
	ID int
}

// URLIcon points at a remote image. Not rendered yet.
type URLIcon struct {
	URL string
}

func (VectorIcon) Kind() IconKind   { return IconVector }
func (ResourceIcon) Kind() IconKind { return IconResource }
func (URLIcon) Kind() IconKind      { return IconURL }

func (VectorIcon) isIcon()   {}
func (ResourceIcon) isIcon() {}
func (URLIcon) isIcon()      {}

// MenuItem is a single ring entry.
type MenuItem struct {
	Title string
	Icon  IconRef
}

// NewVectorItem is shorthand for an item with a glyph icon.
func NewVectorItem(title, glyph string) MenuItem {
	return MenuItem{Title: title, Icon: VectorIcon{Glyph: glyph}}
}
