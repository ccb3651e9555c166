package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the resolv collider of a shape. It lives in the space only
// while the shape's collider is enabled.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// InSpace reports whether the collider is currently registered in a space.
func (o *ObjectData) InSpace() bool {
	return o.Object != nil && o.Object.Space != nil
}
