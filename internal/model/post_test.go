package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPost_SecretNeverMarshaled(t *testing.T) {
	post := Post{
		ID:         1,
		Type:       PostTypeLost,
		Title:      "Blue backpack",
		ImageURLs:  ImageURLList{"https://cdn.example.com/bucket/lostfound/a.jpg"},
		Secret:     "pass1234",
		IsResolved: false,
		CreatedAt:  time.Now(),
	}

	data, err := json.Marshal(post)
	assert.NoError(t, err)

	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &out))
	_, hasSecret := out["secret"]
	assert.False(t, hasSecret)
	assert.NotContains(t, string(data), "pass1234")
	assert.Equal(t, "Blue backpack", out["title"])
}

func TestImageURLList_Scan(t *testing.T) {
	var l ImageURLList

	// NULL column reads as an empty list, not nil.
	assert.NoError(t, l.Scan(nil))
	assert.Equal(t, ImageURLList{}, l)

	assert.NoError(t, l.Scan([]byte(`["https://a.example/1.jpg","https://a.example/2.jpg"]`)))
	assert.Equal(t, ImageURLList{"https://a.example/1.jpg", "https://a.example/2.jpg"}, l)

	assert.Error(t, l.Scan(42))
}

func TestImageURLList_Value(t *testing.T) {
	v, err := ImageURLList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = ImageURLList{"https://a.example/1.jpg"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["https://a.example/1.jpg"]`, v)
}
