package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/example/shop-console/internal/model"
)

// ListProducts fetches the full catalog. Visibility filtering is the
// caller's concern.
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	body, err := c.do(ctx, http.MethodGet, "/product", nil)
	if err != nil {
		return nil, err
	}
	var products []model.Product
	if err := json.Unmarshal(unwrapList(body), &products); err != nil {
		return nil, fmt.Errorf("decode product list: %w", err)
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/product/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var product model.Product
	if err := json.Unmarshal(unwrapData(body), &product); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &product, nil
}

// CreateProduct creates a shell product in the given category and returns
// its id. The response shape varies between {id} and {product: {id}}, and
// the id itself is sometimes a string; only a strictly numeric id counts.
func (c *Client) CreateProduct(ctx context.Context, categoryID int64) (int64, error) {
	body, err := c.do(ctx, http.MethodPost, "/product/create", map[string]int64{
		"categoryId": categoryID,
	})
	if err != nil {
		return 0, err
	}

	var shape struct {
		ID      model.FlexID `json:"id"`
		Product struct {
			ID model.FlexID `json:"id"`
		} `json:"product"`
	}
	if err := json.Unmarshal(unwrapData(body), &shape); err != nil {
		return 0, ErrNoProductID
	}
	if id := shape.ID.Int64(); id != 0 {
		return id, nil
	}
	if id := shape.Product.ID.Int64(); id != 0 {
		return id, nil
	}
	return 0, ErrNoProductID
}

// AddProductDetails attaches descriptive details to a shell product.
func (c *Client) AddProductDetails(ctx context.Context, id int64, payload model.ProductDetailsPayload) (*model.Product, error) {
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/product/%d/details", id), payload)
	if err != nil {
		return nil, err
	}
	var product model.Product
	if err := json.Unmarshal(unwrapData(body), &product); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &product, nil
}

// ActivateProduct makes a product publicly visible. There is no
// deactivation path.
func (c *Client) ActivateProduct(ctx context.Context, id int64) (*model.Product, error) {
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/product/%d/activate", id), nil)
	if err != nil {
		return nil, err
	}
	var product model.Product
	if err := json.Unmarshal(unwrapData(body), &product); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &product, nil
}

// DeleteProduct removes a product permanently.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/product/%d", id), nil)
	return err
}
