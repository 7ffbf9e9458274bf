package apiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapData_Nested(t *testing.T) {
	body := []byte(`{"data":{"id":1,"email":"a@b.com"}}`)
	assert.JSONEq(t, `{"id":1,"email":"a@b.com"}`, string(unwrapData(body)))
}

func TestUnwrapData_Flat(t *testing.T) {
	body := []byte(`{"id":1,"email":"a@b.com"}`)
	assert.JSONEq(t, `{"id":1,"email":"a@b.com"}`, string(unwrapData(body)))
}

func TestUnwrapData_PrefersNested(t *testing.T) {
	body := []byte(`{"id":99,"data":{"id":1}}`)
	assert.JSONEq(t, `{"id":1}`, string(unwrapData(body)))
}

func TestUnwrapList_Flat(t *testing.T) {
	body := []byte(`[{"id":1},{"id":2}]`)
	assert.JSONEq(t, `[{"id":1},{"id":2}]`, string(unwrapList(body)))
}

func TestUnwrapList_Nested(t *testing.T) {
	body := []byte(`{"data":[{"id":1}]}`)
	assert.JSONEq(t, `[{"id":1}]`, string(unwrapList(body)))
}

func TestUnwrapList_DoublyNested(t *testing.T) {
	body := []byte(`{"data":{"data":[{"id":1}]}}`)
	assert.JSONEq(t, `[{"id":1}]`, string(unwrapList(body)))
}
