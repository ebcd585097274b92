// This file is part of moderngl.
//
// moderngl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// moderngl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with moderngl.  If not, see <https://www.gnu.org/licenses/>.

package affine

import (
	"strings"

	"github.com/glsketch/moderngl/curated"
)

// Order names the left-to-right product used by Model() to combine a
// translation, a rotation and a scale.
type Order int

// List of valid Order values. The name of each value is the left-to-right
// order of the product. The right-most transform is applied to a point first.
const (
	TRS Order = iota
	TSR
	RTS
	RST
	STR
	SRT
)

// DefaultOrder scales, then rotates, then translates.
const DefaultOrder = TRS

var orderNames = [...]string{"TRS", "TSR", "RTS", "RST", "STR", "SRT"}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return "unknown"
	}
	return orderNames[o]
}

// UnknownOrder is returned by ParseOrder() for names that are not one of the
// Order values.
const UnknownOrder = "affine: unknown composition order: %s"

// ParseOrder converts an order name (eg. "TRS") to an Order value. The
// comparison is case insensitive.
func ParseOrder(name string) (Order, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, s := range orderNames {
		if s == n {
			return Order(i), nil
		}
	}
	return DefaultOrder, curated.Errorf(UnknownOrder, name)
}

// Model composes the translation t, rotation r and scale s in the specified
// order. An unknown Order is treated as DefaultOrder.
func Model(order Order, t, r, s Matrix) Matrix {
	switch order {
	case TSR:
		return ComposeAll(t, s, r)
	case RTS:
		return ComposeAll(r, t, s)
	case RST:
		return ComposeAll(r, s, t)
	case STR:
		return ComposeAll(s, t, r)
	case SRT:
		return ComposeAll(s, r, t)
	}
	return ComposeAll(t, r, s)
}
