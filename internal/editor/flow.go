// Package editor implements the two-phase product creation flow: first a
// shell with just a category, then the descriptive details.
package editor

import (
	"context"
	"errors"

	"github.com/example/shop-console/internal/model"
)

var (
	ErrCategoryRequired = errors.New("a category must be selected")
	ErrWrongStep        = errors.New("operation not valid at this step")
)

// Step is the editor's position in the creation flow.
type Step int

const (
	StepAwaitingCategory Step = iota
	StepAwaitingDetails
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepAwaitingCategory:
		return "awaiting-category"
	case StepAwaitingDetails:
		return "awaiting-details"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// API is the slice of the remote API the flow needs.
type API interface {
	CreateProduct(ctx context.Context, categoryID int64) (int64, error)
	AddProductDetails(ctx context.Context, id int64, payload model.ProductDetailsPayload) (*model.Product, error)
}

// Details is the raw step-2 input. About is multi-line text, one entry per
// line.
type Details struct {
	Title         string
	Code          string
	VariationType model.VariationType
	Description   string
	About         string
	Specs         map[string]any
}

// Flow drives product creation. A failed step keeps the flow where it is
// with the error surfaced to the caller; an already-created shell is never
// rolled back.
type Flow struct {
	api       API
	step      Step
	productID int64
}

// NewFlow starts a flow at the category step.
func NewFlow(api API) *Flow {
	return &Flow{api: api, step: StepAwaitingCategory}
}

func (f *Flow) Step() Step {
	return f.step
}

// ProductID returns the shell's id, zero before the shell exists.
func (f *Flow) ProductID() int64 {
	return f.productID
}

// SubmitCategory creates the shell and advances to the details step. The
// remote create must yield a numeric id or the flow stays put.
func (f *Flow) SubmitCategory(ctx context.Context, categoryID int64) error {
	if f.step != StepAwaitingCategory {
		return ErrWrongStep
	}
	if categoryID == 0 {
		return ErrCategoryRequired
	}

	id, err := f.api.CreateProduct(ctx, categoryID)
	if err != nil {
		return err
	}
	f.productID = id
	f.step = StepAwaitingDetails
	return nil
}

// SubmitDetails attaches the details and completes the flow.
func (f *Flow) SubmitDetails(ctx context.Context, details Details) error {
	if f.step != StepAwaitingDetails {
		return ErrWrongStep
	}

	payload := model.ProductDetailsPayload{
		Title:         details.Title,
		Code:          details.Code,
		VariationType: details.VariationType,
		Description:   details.Description,
		About:         SplitAbout(details.About),
		Details:       details.Specs,
	}
	if payload.VariationType == "" {
		payload.VariationType = model.VariationNone
	}

	if _, err := f.api.AddProductDetails(ctx, f.productID, payload); err != nil {
		return err
	}
	f.step = StepComplete
	return nil
}
