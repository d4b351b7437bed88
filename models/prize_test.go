package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrizeImageURL(t *testing.T) {
	t.Setenv("APP_URL", "https://wheel.example.com/")

	assert.Equal(t, "", (&Prize{}).ImageURL())
	assert.Equal(t, "https://cdn.example.com/gold.png",
		(&Prize{Image: "https://cdn.example.com/gold.png"}).ImageURL())
	assert.Equal(t, "https://wheel.example.com/storage/gold.png",
		(&Prize{Image: "/storage/gold.png"}).ImageURL())
}

func TestPrizePublicViewHidesProbability(t *testing.T) {
	p := Prize{Name: "Gold Ring", Price: 500, Color: "#ffd700", Probability: 0.05}

	public := p.PublicView()
	_, exposed := public["probability"]
	assert.False(t, exposed)
	assert.Equal(t, "Gold Ring", public["name"])

	admin := p.AdminView()
	assert.Equal(t, 0.05, admin["probability"])
}
