package navigation

// Environment is the hosting window the controller reads and writes.
// Fragments are exchanged without their leading '#'.
type Environment interface {
	// Fragment returns the current location fragment. ok is false when
	// the host exposes no location at all.
	Fragment() (fragment string, ok bool)
	// SetFragment writes fragment to the location.
	SetFragment(fragment string)
	// OnFragmentChange registers fn for fragment changes reported by the
	// host and returns a func that removes it.
	OnFragmentChange(fn func()) (remove func())
	// RequestFrame runs fn on the next paint opportunity.
	RequestFrame(fn func())
	// ElementByID looks up a rendered element.
	ElementByID(id string) (Element, bool)
}

// Element is a rendered node that can be scrolled to.
type Element interface {
	ScrollIntoView(opts ScrollOptions)
}

// ScrollBehavior mirrors the browser's scroll behavior option.
type ScrollBehavior string

// ScrollBlock mirrors the browser's vertical alignment option.
type ScrollBlock string

const (
	Smooth ScrollBehavior = "smooth"
	Start  ScrollBlock    = "start"
)

// ScrollOptions are passed to Element.ScrollIntoView.
type ScrollOptions struct {
	Behavior ScrollBehavior
	Block    ScrollBlock
}

// anchorScroll is the alignment used for every in-page jump.
var anchorScroll = ScrollOptions{Behavior: Smooth, Block: Start}
