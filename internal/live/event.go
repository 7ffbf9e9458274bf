// Package live keeps a catalog view consistent with activations that happen
// out-of-band, by merging a standing event subscription with authoritative
// re-fetches.
package live

import (
	"encoding/json"

	"github.com/example/shop-console/internal/model"
)

// EventProductActivated is the event name the push channel emits when a
// product becomes publicly visible.
const EventProductActivated = "newProductActivated"

// Envelope is the wire frame for both event sources: a named event plus its
// payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ActivationEvent is the activation payload. The emitter is inconsistent
// about which fields it sets: the title may live at title, name, or
// detail.title, and the product id at productId or detail.productId.
type ActivationEvent struct {
	Title     string       `json:"title"`
	Name      string       `json:"name"`
	ProductID model.FlexID `json:"productId"`
	Detail    struct {
		Title     string       `json:"title"`
		ProductID model.FlexID `json:"productId"`
	} `json:"detail"`
}

// ParseActivation decodes an activation payload.
func ParseActivation(data []byte) (ActivationEvent, error) {
	var event ActivationEvent
	err := json.Unmarshal(data, &event)
	return event, err
}

// DisplayTitle returns the human-readable title, checking every known
// location, or empty when none is set.
func (e ActivationEvent) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	if e.Name != "" {
		return e.Name
	}
	return e.Detail.Title
}

// ID returns the product id, or zero when none is set.
func (e ActivationEvent) ID() int64 {
	if id := e.ProductID.Int64(); id != 0 {
		return id
	}
	return e.Detail.ProductID.Int64()
}
